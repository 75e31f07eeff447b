package kernel

import (
	"fmt"
	"strings"
	"time"

	"bakery/internal/pkg/errs"
)

const timeOfDayLayout = "15:04"

// TimeOfDay is the requested delivery time, kept as "HH:MM" text.
type TimeOfDay struct {
	value string
}

// ParseTimeOfDay accepts 24h "HH:MM" and normalizes single-digit hours ("7:30" -> "07:30").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, errs.NewValueIsRequiredError("delivery time")
	}
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery time",
			fmt.Errorf("%q is not HH:MM", s),
		)
	}
	return TimeOfDay{value: t.Format(timeOfDayLayout)}, nil
}

// MustParseTimeOfDay is ParseTimeOfDay for constants and tests.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) IsZero() bool {
	return t.value == ""
}

func (t TimeOfDay) String() string {
	return t.value
}
