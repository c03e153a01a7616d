package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today is the calendar date of c.Now() as midnight UTC, the form stay dates are stored in.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
