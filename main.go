package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"sensorlog.klederson.com/internal/app"
	"sensorlog.klederson.com/internal/config"
)

var (
	flagDemo     bool
	flagAdapter  string
	flagCapacity int
	flagInterval time.Duration
	flagDrain    time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sensorlog",
		Short: "Sensor-Log - Terminal sensor-data logger with a fixed-capacity ring buffer",
		Long: `Sensor-Log records timestamped sensor readings into a fixed-capacity
ring buffer and drains them at a configurable rate, visualizing the
buffer's slots, indices and overflow behaviour as it happens. A full
buffer rejects new readings instead of overwriting unread data.

Real readings are sampled from BLE advertisement RSSI, which requires
sudo or CAP_NET_ADMIN. Use --demo for synthesized sensors without
Bluetooth hardware.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with synthesized sensors (no Bluetooth required)")
	rootCmd.Flags().StringVar(&flagAdapter, "adapter", "hci0", "Bluetooth adapter to use")
	rootCmd.Flags().IntVar(&flagCapacity, "capacity", config.DefaultCapacity, "Ring buffer capacity in readings")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", config.DefaultProduceInterval, "Demo producer interval")
	rootCmd.Flags().DurationVar(&flagDrain, "drain", config.DefaultDrainInterval, "Consumer drain interval")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	model, err := app.New(app.Options{
		Demo:            flagDemo,
		Adapter:         flagAdapter,
		Capacity:        flagCapacity,
		ProduceInterval: flagInterval,
		DrainInterval:   flagDrain,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start the sensor source with a reference to the tea program
	if err := model.StartSources(p, flagInterval); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "BLE sampling requires elevated permissions.")
		fmt.Fprintln(os.Stderr, "Try one of:")
		fmt.Fprintln(os.Stderr, "  sudo ./sensorlog")
		fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./sensorlog")
		fmt.Fprintln(os.Stderr, "  ./sensorlog --demo    (synthesized sensors, no hardware needed)")
		return err
	}

	_, err = p.Run()
	return err
}
