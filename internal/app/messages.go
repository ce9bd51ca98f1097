package app

import "time"

// TickMsg triggers a frame update.
type TickMsg time.Time

// DrainMsg triggers one consumer read from the buffer.
type DrainMsg time.Time
