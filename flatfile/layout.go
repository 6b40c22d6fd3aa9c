// Package flatfile reads the fixed-width flat files produced by the original
// card-to-tape transcription of the intake records. Fields are addressed
// purely by column position; nothing in this package interprets values.
package flatfile

import "strings"

// A Field names a column range within a fixed-width line. Start is
// inclusive and End exclusive, both zero-based.
type Field struct {
	Name  string
	Start int
	End   int
}

// A Layout is an ordered list of fields. The declared order is the order
// fields are written to the raw-formatted output.
type Layout []Field

// A Record maps field names to the raw string sliced from one line. Every
// field of the layout is present, even when the line was too short to
// cover it.
type Record map[string]string

// InmateLayout is the column-position table for the intake record
// instrument, exactly as documented in the codebook. Offsets cover
// columns 1-80 of the original card image.
var InmateLayout = Layout{
	{"ReceivingInstitutionCode", 0, 2},
	{"InmateNumber", 2, 8},
	{"DateReceived", 8, 13},
	{"CrimeCategory", 13, 14},
	{"SentenceType", 14, 15},
	{"DateOfBirth", 15, 20},
	{"CrimeDetails", 20, 24},
	{"MinSentence", 24, 27},
	{"MaxSentence", 27, 30},
	{"CountyCommittedFrom", 30, 32},
	{"CourtCommittedBy", 32, 33},
	{"Race", 33, 34},
	{"AgeAtCommitment", 34, 36},
	{"Religion", 36, 37},
	{"Sex", 37, 38},
	{"IdentifierNumber", 38, 44},
	{"CheckDigit", 44, 45},
	{"YearsResidenceNY", 45, 47},
	{"MilitaryService", 47, 48},
	{"Education", 48, 49},
	{"Occupation", 49, 50},
	{"NarcoticsUse", 50, 51},
	{"MaritalStatus", 51, 52},
	{"PrevCriminalRecord", 52, 54},
	{"CommitmentsProbation", 54, 55},
	{"FinesSuspensions", 55, 56},
	{"TimeSpanEarliestAdultRecord", 56, 57},
	{"MinorPoliceContacts", 57, 58},
	{"SeriousPoliceContacts", 58, 59},
	{"CountryOfBirth", 59, 61},
	{"YearEnteredUS", 61, 63},
	{"NaturalizationStatus", 63, 64},
	{"PsychiatricClassification", 64, 66},
	{"InstitutionOriginal", 66, 68},
	{"OriginalMonthYear", 68, 70},
	{"MentalHygieneID", 70, 71},
	{"ReturnType", 71, 72},
	{"LatestReleaseDate", 72, 75},
	{"LatestReturnDate", 75, 78},
	{"CurrentInstitution", 78, 80},
}

// Names returns the field names in declared order.
func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// Extract slices one line into a record. Lines shorter than a field's range
// yield a truncated or empty value for that field; no error is ever
// raised. Values are trimmed of surrounding whitespace, matching the
// whitespace-padded card format.
func (l Layout) Extract(line string) Record {
	runes := []rune(line)
	rec := make(Record, len(l))
	for _, f := range l {
		start := f.Start
		end := f.End
		if start > len(runes) {
			start = len(runes)
		}
		if end > len(runes) {
			end = len(runes)
		}
		rec[f.Name] = strings.TrimSpace(string(runes[start:end]))
	}
	return rec
}
