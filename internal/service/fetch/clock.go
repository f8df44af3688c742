package fetch

import "time"

// Clock - абстракция времени, чтобы тесты были детерминированны
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewRealClock - текущее время в UTC
func NewRealClock() Clock {
	return realClock{}
}
