package game

import "time"

// Scheduler fires on a fixed cadence until stopped. The game loop only reads
// from C, so tests can drive ticks by hand.
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

type TickerScheduler struct {
	ticker *time.Ticker
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{ticker: time.NewTicker(interval)}
}

func (s *TickerScheduler) C() <-chan time.Time {
	return s.ticker.C
}

func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}
