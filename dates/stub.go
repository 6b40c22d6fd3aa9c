// Package dates converts the compact numeric date codes used by the intake
// instrument into full calendar dates. Parsing happens in two steps: a raw
// code is first reduced to a century-ambiguous stub, then the stub is
// resolved to a full year by one of two century rules.
package dates

import (
	"fmt"
	"strconv"
	"strings"
)

// A StubLayout names the digit layout of a raw date code.
type StubLayout int

const (
	// DayLevel codes are month, day and two-digit year (MDDYY), with a
	// one or two digit month.
	DayLevel StubLayout = iota
	// MonthLevel codes are month and two-digit year (MYY), with a one or
	// two digit month.
	MonthLevel
)

// ParseStub reduces a raw date code to a "yy-MM-DD" or "yy-MM" stub. All
// non-digit characters are stripped first; if the remaining digit count
// does not exactly match the layout the code is unparseable and the empty
// string is returned.
func ParseStub(raw string, layout StubLayout) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()

	switch layout {
	case DayLevel:
		var mm, dd, yy string
		switch len(s) {
		case 5:
			mm, dd, yy = s[0:1], s[1:3], s[3:5]
		case 6:
			mm, dd, yy = s[0:2], s[2:4], s[4:6]
		default:
			return ""
		}
		return fmt.Sprintf("%02d-%02d-%02d", atoi(yy), atoi(mm), atoi(dd))
	case MonthLevel:
		var mm, yy string
		switch len(s) {
		case 3:
			mm, yy = s[0:1], s[1:3]
		case 4:
			mm, yy = s[0:2], s[2:4]
		default:
			return ""
		}
		return fmt.Sprintf("%02d-%02d", atoi(yy), atoi(mm))
	}

	return ""
}

// atoi converts a string known to contain only digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
