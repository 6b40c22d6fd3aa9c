package dates

import (
	"strconv"

	"github.com/iand/gdate"
)

// ResolveFixed resolves a day-level "yy-MM-DD" stub assuming the twentieth
// century. Every reception, return and release in the dataset occurred in
// the 1900s. A malformed or empty stub resolves to an unknown date.
func ResolveFixed(stub string) gdate.Date {
	yy, mm, dd, ok := splitDayStub(stub)
	if !ok {
		return &gdate.Unknown{}
	}
	return &gdate.Precise{Y: 1900 + yy, M: mm, D: dd}
}

// ResolveFixedMonth resolves a month-level "yy-MM" stub assuming the
// twentieth century.
func ResolveFixedMonth(stub string) gdate.Date {
	if len(stub) != 5 || stub[2] != '-' {
		return &gdate.Unknown{}
	}
	yy, err1 := strconv.Atoi(stub[0:2])
	mm, err2 := strconv.Atoi(stub[3:5])
	if err1 != nil || err2 != nil {
		return &gdate.Unknown{}
	}
	return &gdate.MonthYear{Y: 1900 + yy, M: mm}
}

// ResolveRelative resolves a day-level stub by comparing its two-digit year
// to the two-digit year of an already-resolved reference date in
// "YYYY-MM-DD" form. A stub year greater than the reference year cannot
// belong to the same century, so it wraps back to the 1800s. Used for
// birth dates, with the record's reception date as the reference: a
// prisoner received in 1952 with a birth year code of 87 was born in 1887.
func ResolveRelative(stub string, reference string) gdate.Date {
	yy, mm, dd, ok := splitDayStub(stub)
	if !ok {
		return &gdate.Unknown{}
	}

	if len(reference) < 4 {
		return &gdate.Unknown{}
	}
	refYear, err := strconv.Atoi(reference[0:4])
	if err != nil {
		return &gdate.Unknown{}
	}

	year := 1900 + yy
	if yy > refYear%100 {
		year = 1800 + yy
	}
	return &gdate.Precise{Y: year, M: mm, D: dd}
}

// ISO formats a resolved date as "YYYY-MM-DD" for precise dates or
// "YYYY-MM" for month-level dates. Unknown dates format as the empty
// string, which downstream stages treat as unresolved.
func ISO(d gdate.Date) string {
	switch dt := d.(type) {
	case *gdate.Precise:
		return pad4(dt.Y) + "-" + pad2(dt.M) + "-" + pad2(dt.D)
	case *gdate.MonthYear:
		return pad4(dt.Y) + "-" + pad2(dt.M)
	}
	return ""
}

func splitDayStub(stub string) (yy, mm, dd int, ok bool) {
	if len(stub) != 8 || stub[2] != '-' || stub[5] != '-' {
		return 0, 0, 0, false
	}
	var err error
	if yy, err = strconv.Atoi(stub[0:2]); err != nil {
		return 0, 0, 0, false
	}
	if mm, err = strconv.Atoi(stub[3:5]); err != nil {
		return 0, 0, 0, false
	}
	if dd, err = strconv.Atoi(stub[6:8]); err != nil {
		return 0, 0, 0, false
	}
	return yy, mm, dd, true
}

func pad4(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

func pad2(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
