package transport

import (
	"math"
	"time"
)

// Backoff is the reconnect schedule: InitialDelay * Multiplier^(attempt-1),
// capped at MaxDelay. MaxAttempts < 0 retries forever.
type Backoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	MaxAttempts  int
}

func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	delay := float64(b.InitialDelay) * math.Pow(multiplier, float64(attempt-1))
	if b.MaxDelay > 0 && delay > float64(b.MaxDelay) {
		return b.MaxDelay
	}
	return time.Duration(delay)
}

// Allows reports whether attempt (1-based) may still be made.
func (b Backoff) Allows(attempt int) bool {
	return b.MaxAttempts < 0 || attempt <= b.MaxAttempts
}
