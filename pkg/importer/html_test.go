package importer

import (
	"strings"
	"testing"

	"planctl/pkg/timetable"
)

const fixtureHTML = `
<html><body>
<table>
  <tr><th>Class</th><th>Day</th><th>Start</th><th>End</th></tr>
  <tr><td>Mathematics</td><td>Monday</td><td>14:30</td><td>16:00</td></tr>
  <tr><td>History</td><td>wednesday</td><td>09:00</td><td>10:30</td></tr>
  <tr><td>Broken</td><td>Monday</td><td>25:00</td><td>26:00</td></tr>
  <tr><td>NoSuchDay</td><td>Someday</td><td>09:00</td><td>10:00</td></tr>
  <tr><td>Inverted</td><td>Friday</td><td>12:00</td><td>11:00</td></tr>
</table>
</body></html>`

func TestParseTable(t *testing.T) {
	entries, skipped, err := ParseTable(strings.NewReader(fixtureHTML))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	if skipped != 3 {
		t.Errorf("expected 3 skipped rows, got %d", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Document order is preserved
	first := entries[0]
	if first.Name != "Mathematics" || first.Day != timetable.Monday {
		t.Errorf("unexpected first entry: %s", first)
	}
	if first.Start.String() != "14:30" || first.End.String() != "16:00" {
		t.Errorf("expected 14:30-16:00, got %s-%s", first.Start, first.End)
	}

	// Weekday casing is normalized
	if entries[1].Day != timetable.Wednesday {
		t.Errorf("expected lowercase weekday to parse, got %s", entries[1].Day)
	}
}

func TestParseTableNoTable(t *testing.T) {
	entries, skipped, err := ParseTable(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	if len(entries) != 0 || skipped != 0 {
		t.Errorf("expected empty result for table-less document, got %d entries, %d skipped", len(entries), skipped)
	}
}
