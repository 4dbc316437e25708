package clock

import (
	"time"

	fbclock "github.com/facebookgo/clock"
)

// Clock is the time source shared by the engines. Ticker lets the countdown
// engine run against a mock in tests.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) *fbclock.Ticker
}

func NewRealClock() Clock {
	return fbclock.New()
}

type MockClock = fbclock.Mock

// NewMockClock returns a mock clock positioned at t. The mock only moves
// through Add.
func NewMockClock(t time.Time) *MockClock {
	m := fbclock.NewMock()
	m.Add(t.Sub(m.Now()))
	return m
}
