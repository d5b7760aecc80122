package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Minutes is a time of day expressed as minutes since midnight (0-1439).
type Minutes int

// ErrInvalidTime is returned when a time string is not a valid zero-padded HH:MM.
var ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

// ParseClock parses a strict zero-padded "HH:MM" string into Minutes.
// Hours must be 00-23 and minutes 00-59; anything else (including "9:05"
// or "09:5") is rejected.
func ParseClock(s string) (Minutes, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')

	if hour > 23 || min > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return Minutes(hour*60 + min), nil
}

// String renders the time back in zero-padded HH:MM form.
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// MarshalJSON serializes the time as its "HH:MM" string so the on-disk
// layout stays human-editable. The minute count is an internal form only.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON parses the "HH:MM" string form.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
