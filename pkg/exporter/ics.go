package exporter

import (
	"fmt"
	"io"
	"time"

	"planctl/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes the timetable as an ICS calendar. Each entry becomes a
// weekly recurring event anchored to the first occurrence of its weekday on
// or after the given reference time.
func GenerateICS(entries []timetable.Entry, from time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, e := range entries {
		startTime := nextOccurrence(from, e.Day, e.Start)
		endTime := startTime.Add(time.Duration(e.Duration()) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(e.Name)
		event.AddRrule("FREQ=WEEKLY")

		event.SetDescription(fmt.Sprintf("Weekly class, %s %s-%s", e.Day, e.Start, e.End))
	}

	return cal.SerializeTo(w)
}

// nextOccurrence finds the first date on or after `from` falling on the
// given weekday, at the given time of day, in from's location.
func nextOccurrence(from time.Time, day timetable.Weekday, at timetable.Minutes) time.Time {
	daysAhead := (int(day.TimeWeekday()) - int(from.Weekday()) + 7) % 7

	date := from.AddDate(0, 0, daysAhead)
	return time.Date(date.Year(), date.Month(), date.Day(), int(at)/60, int(at)%60, 0, 0, from.Location())
}
