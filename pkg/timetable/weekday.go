package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weekday is a day of the week, ordered Monday first as timetables are.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ErrInvalidDay is returned when a string is not a recognized weekday name.
var ErrInvalidDay = errors.New("invalid weekday name")

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Weekdays returns all seven days in Monday-first order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday resolves a weekday name in any casing ("monday", "MONDAY")
// into its Weekday value.
func ParseWeekday(s string) (Weekday, error) {
	normalized := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(s)))

	for i, name := range weekdayNames {
		if name == normalized {
			return Weekday(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// TimeWeekday maps onto the stdlib time.Weekday (which starts at Sunday).
func (d Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}

// MarshalJSON serializes the weekday as its English name.
func (d Weekday) MarshalJSON() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, int(d))
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON parses the weekday name form.
func (d *Weekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
