package mindbody

import (
	"sync"
	"time"
)

// rateLimiter enforces the upstream request budgets locally: a rolling
// per-minute window and a per-day window. Counters reset when the elapsed
// time since the window start exceeds the window size, matching the budget
// accounting of the upstream plan.
type rateLimiter struct {
	mu sync.Mutex

	perMinute int
	perDay    int

	minuteStart time.Time
	minuteCount int
	dayStart    time.Time
	dayCount    int
}

func newRateLimiter(perMinute, perDay int) *rateLimiter {
	return &rateLimiter{perMinute: perMinute, perDay: perDay}
}

// allow consumes one unit from both windows, or returns ErrRateLimited
// without consuming anything when either budget is exhausted.
func (l *rateLimiter) allow(now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.minuteStart.IsZero() || now.Sub(l.minuteStart) >= time.Minute {
		l.minuteStart = now
		l.minuteCount = 0
	}
	if l.dayStart.IsZero() || now.Sub(l.dayStart) >= 24*time.Hour {
		l.dayStart = now
		l.dayCount = 0
	}

	if l.minuteCount >= l.perMinute || l.dayCount >= l.perDay {
		return ErrRateLimited
	}

	l.minuteCount++
	l.dayCount++

	return nil
}
