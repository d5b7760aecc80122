// Package importer reads timetable entries out of HTML tables, such as the
// schedule pages school portals let students download.
package importer

import (
	"io"
	"strings"

	"planctl/pkg/timetable"

	"github.com/PuerkitoBio/goquery"
)

// ParseTable extracts timetable entries from the first four cells of every
// table row: class name, weekday, start time, end time. Header rows and
// rows that fail validation are skipped; the skip count is returned so the
// caller can warn the user.
func ParseTable(r io.Reader) ([]timetable.Entry, int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, 0, err
	}

	var entries []timetable.Entry
	skipped := 0

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			// Header rows use <th>, so they land here and are ignored
			return
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		dayStr := strings.TrimSpace(cells.Eq(1).Text())
		startStr := strings.TrimSpace(cells.Eq(2).Text())
		endStr := strings.TrimSpace(cells.Eq(3).Text())

		day, err := timetable.ParseWeekday(dayStr)
		if err != nil {
			skipped++
			return
		}

		start, err := timetable.ParseClock(startStr)
		if err != nil {
			skipped++
			return
		}

		end, err := timetable.ParseClock(endStr)
		if err != nil {
			skipped++
			return
		}

		entry := timetable.Entry{Name: name, Day: day, Start: start, End: end}
		if entry.Validate() != nil {
			skipped++
			return
		}

		entries = append(entries, entry)
	})

	return entries, skipped, nil
}
