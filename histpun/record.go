// Package histpun aggregates decoded intake records into the year-by-year
// statistical table consumed by the historical punishment dataset. One
// input row becomes one Record; the aggregator partitions records by
// reception year and counts them along several breakdown dimensions.
package histpun

import (
	"strings"
	"time"
)

// A Record is the aggregation view of one decoded intake record. Label
// fields keep the casing of the decoded file; lowercasing happens when
// rows are emitted.
type Record struct {
	Received    time.Time
	Birth       time.Time
	HasBirth    bool
	Race        string
	Gender      string
	Religion    string
	Crime       string
	Institution string
	County      string
}

// ParseRecord builds a Record from a decoded CSV row. The second return is
// false when the row has no parseable reception date; such records cannot
// be assigned to a year and are excluded from aggregation entirely.
func ParseRecord(row map[string]string) (Record, bool) {
	received, err := time.Parse("2006-01-02", row["DateReceived"])
	if err != nil {
		return Record{}, false
	}

	rec := Record{
		Received:    received,
		Race:        row["RaceName"],
		Gender:      row["SexName"],
		Religion:    row["ReligionName"],
		Crime:       row["Crime"],
		Institution: row["Institution"],
		County:      row["County"],
	}

	if birth, err := time.Parse("2006-01-02", row["DateOfBirth"]); err == nil {
		rec.Birth = birth
		rec.HasBirth = true
	}

	return rec, true
}

// Year is the extraction year the record is counted under.
func (r Record) Year() int {
	return r.Received.Year()
}

// Age is the age at reception in whole years, using the dataset's 365-day
// approximation. The floor of the division is taken, so a birth date
// recorded after the reception date yields a negative age rather than
// rounding up to zero.
func (r Record) Age() (int, bool) {
	if !r.HasBirth {
		return 0, false
	}
	days := int(r.Received.Sub(r.Birth) / (24 * time.Hour))
	return floorDiv(days, 365), true
}

// AgeCategory classifies the record as "juvenile" (under 18) or "adult".
// Records with no resolved birth date have no age category and are
// excluded from the age breakdown, though they still count everywhere
// else.
func (r Record) AgeCategory() string {
	age, ok := r.Age()
	if !ok {
		return ""
	}
	if age < 18 {
		return "juvenile"
	}
	return "adult"
}

// CrimeCategory is the decoded crime label up to its first comma,
// lowercased, which strips the degree qualifier.
func (r Record) CrimeCategory() string {
	c, _, _ := strings.Cut(r.Crime, ",")
	return strings.ToLower(strings.TrimSpace(c))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
