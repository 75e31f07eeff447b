package kernel

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Weekday names a recurrence day of a standing order.
type Weekday string

const (
	Monday    Weekday = "lunes"
	Tuesday   Weekday = "martes"
	Wednesday Weekday = "miercoles"
	Thursday  Weekday = "jueves"
	Friday    Weekday = "viernes"
	Saturday  Weekday = "sabado"
	Sunday    Weekday = "domingo"
)

var weekdays = map[Weekday]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {}, Friday: {}, Saturday: {}, Sunday: {},
}

// ParseWeekday lower-cases and strips accents commonly typed by users ("Miércoles").
func ParseWeekday(s string) (Weekday, error) {
	normalized := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").
		Replace(strings.ToLower(strings.TrimSpace(s)))
	day := Weekday(normalized)
	if _, ok := weekdays[day]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("recurrence day", fmt.Errorf("%q is not a weekday", s))
	}
	return day, nil
}

// ParseWeekdays parses every entry and drops duplicates, keeping first-seen order.
func ParseWeekdays(values []string) ([]Weekday, error) {
	days := make([]Weekday, 0, len(values))
	seen := make(map[Weekday]bool, len(values))
	for _, v := range values {
		day, err := ParseWeekday(v)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}

// WeekdayStrings converts days back to their string form.
func WeekdayStrings(days []Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}
