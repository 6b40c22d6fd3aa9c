package codebook

import (
	"strconv"
	"strings"
)

// Sentence sentinel codes. The checks in DecodeSentence must run before
// any numeric parsing: none of these are valid integers.
const (
	sentenceDeath    = "&&&" // months component: death or wholly indeterminate sentence
	sentenceMax      = "999" // years component: sentence of a century or more
	transferPrefixA  = "92"  // years prefix: transferred, term indeterminate
	transferPrefixB  = "95"
	monthsCodeTen    = "T"
	monthsCodeEleven = "E"
)

// DecodeSentence turns a years code and a months code into a readable
// duration. The months code may be empty when the source field carried
// only years. An unparseable years code yields the empty string; an
// unparseable months code counts as zero months.
func DecodeSentence(years string, months string) string {
	if months == sentenceDeath {
		return "Death/Indeterminate"
	}
	if years == sentenceMax {
		return "100+ years"
	}
	if strings.HasPrefix(years, transferPrefixA) || strings.HasPrefix(years, transferPrefixB) {
		return "Transfer/Indeterminate"
	}

	yy, err := strconv.Atoi(years)
	if err != nil {
		return ""
	}

	var mm int
	switch months {
	case monthsCodeTen:
		mm = 10
	case monthsCodeEleven:
		mm = 11
	default:
		mm, _ = strconv.Atoi(months)
	}

	var parts []string
	if yy > 0 {
		parts = append(parts, strconv.Itoa(yy)+" yr"+plural(yy))
	}
	if mm > 0 {
		parts = append(parts, strconv.Itoa(mm)+" mo"+plural(mm))
	}
	if len(parts) == 0 {
		return "0 months"
	}
	return strings.Join(parts, ", ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
