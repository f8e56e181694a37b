package service

import "time"

// Clock provides the current time so tests can pin "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// SystemClock reports wall time in loc (time.Local when nil).
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
