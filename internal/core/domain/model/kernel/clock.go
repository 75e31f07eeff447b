package kernel

import (
	"errors"
	"time"
)

// ErrTimezoneUnavailable is returned by NowInZone when the business zone could not be loaded.
var ErrTimezoneUnavailable = errors.New("business timezone is unavailable")

// BusinessClock answers "what time is it" for business rules.
//
// The cutoff rule needs a clock that always answers, so Now falls back to the
// process-local zone when no business zone is configured. The auto-dispatch
// rule must not guess, so NowInZone fails instead.
type BusinessClock struct {
	now      func() time.Time
	location *time.Location
}

// NewBusinessClock builds a clock over now in location. A nil location means the zone is unavailable.
func NewBusinessClock(now func() time.Time, location *time.Location) BusinessClock {
	if now == nil {
		now = time.Now
	}
	return BusinessClock{now: now, location: location}
}

// LoadBusinessClock loads the named IANA zone. On failure it still returns a
// usable clock (local fallback) together with the load error.
func LoadBusinessClock(zone string) (BusinessClock, error) {
	location, err := time.LoadLocation(zone)
	if err != nil {
		return NewBusinessClock(time.Now, nil), err
	}
	return NewBusinessClock(time.Now, location), nil
}

// Now returns the current instant in the business zone, or in the process-local zone.
func (c BusinessClock) Now() time.Time {
	now := c.currentTime()
	if c.location == nil {
		return now.Local()
	}
	return now.In(c.location)
}

// NowInZone returns the current instant in the business zone.
func (c BusinessClock) NowInZone() (time.Time, error) {
	if c.location == nil {
		return time.Time{}, ErrTimezoneUnavailable
	}
	return c.currentTime().In(c.location), nil
}

// Location returns the business zone, nil when unavailable.
func (c BusinessClock) Location() *time.Location {
	return c.location
}

func (c BusinessClock) currentTime() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}
