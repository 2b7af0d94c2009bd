package rental

import "time"

// Clock supplies the current time. The system clock is used in the
// binaries; tests inject fixed dates so rental durations are
// deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
