package services

import (
	"time"

	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

type systemClock struct{}

// SystemClock returns a clock backed by time.Now.
func SystemClock() ports.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
