// Package decode implements the decoding stage: raw-formatted CSV rows in,
// rows of human-readable fields out. Every categorical code is resolved to
// a label, every date code to a full calendar date, and sentence codes to
// readable durations. A column that is absent from an input file degrades
// the fields derived from it to empty strings rather than failing the run.
package decode

import (
	"github.com/iand/punster/codebook"
	"github.com/iand/punster/dates"
)

// A Row is one raw-formatted record keyed by column name. Absence of a key
// means the input file did not carry the column at all, which is distinct
// from a present-but-blank value: a blank code decodes to Unknown while an
// absent column decodes to empty.
type Row map[string]string

// A Decoder decodes raw-formatted rows using one immutable set of external
// code books.
type Decoder struct {
	Books *codebook.Set
}

func NewDecoder(books *codebook.Set) *Decoder {
	return &Decoder{Books: books}
}

// Decode produces the values of one decoded record, in Columns order.
func (d *Decoder) Decode(row Row) []string {
	received := d.day(row, "DateReceived")
	birth := d.birth(row, received)

	return []string{
		d.book(row, "ReceivingInstitutionCode", d.Books.Institution),
		d.book(row, "CountyCommittedFrom", d.Books.County),
		d.book(row, "CourtCommittedBy", codebook.Court),
		d.crime(row),
		d.book(row, "CrimeAttempted", codebook.Attempt),
		birth,
		received,
		d.sentence(row, "MinSentence", "MinSentenceYears", "MinSentenceMonths"),
		d.sentence(row, "MaxSentence", "MaxSentenceYears", "MaxSentenceMonths"),
		d.pass(row, "AgeAtCommitment"),
		d.book(row, "Race", codebook.Race),
		d.book(row, "Religion", d.Books.Religion),
		d.book(row, "Sex", d.Books.Sex),
		d.pass(row, "IdentifierNumber"),
		d.pass(row, "CheckDigit"),
		d.pass(row, "YearsResidenceNY"),
		d.book(row, "MilitaryService", codebook.Military),
		d.book(row, "Education", codebook.Education),
		d.book(row, "Occupation", codebook.Occupation),
		d.book(row, "NarcoticsUse", codebook.Narcotics),
		d.book(row, "MaritalStatus", codebook.Marital),
		d.book(row, "PrevCriminalRecord", codebook.PrevRecord),
		d.book(row, "CountryOfBirth", d.Books.Country),
		d.pass(row, "YearEnteredUS"),
		d.book(row, "NaturalizationStatus", codebook.Naturalization),
		d.book(row, "PsychiatricClassification", d.Books.Psych),
		d.book(row, "InstitutionOriginal", d.Books.Institution),
		d.month(row, "OriginalMonthYear"),
		d.pass(row, "MentalHygieneID"),
		d.book(row, "ReturnType", d.Books.ReturnType),
		d.month(row, "LatestReleaseDate"),
		d.day(row, "LatestReturnDate"),
		d.book(row, "CurrentInstitution", d.Books.Institution),
	}
}

// book decodes a categorical column through a code book, or empty if the
// column is absent.
func (d *Decoder) book(row Row, col string, cb codebook.Codebook) string {
	v, ok := row[col]
	if !ok {
		return ""
	}
	return cb.Decode(v)
}

// pass copies a column through unchanged, or empty if absent.
func (d *Decoder) pass(row Row, col string) string {
	return row[col]
}

// day resolves a day-level date column assuming the twentieth century.
func (d *Decoder) day(row Row, col string) string {
	v, ok := row[col]
	if !ok {
		return ""
	}
	return dates.ISO(dates.ResolveFixed(dates.ParseStub(v, dates.DayLevel)))
}

// month resolves a month-level date column assuming the twentieth century.
func (d *Decoder) month(row Row, col string) string {
	v, ok := row[col]
	if !ok {
		return ""
	}
	return dates.ISO(dates.ResolveFixedMonth(dates.ParseStub(v, dates.MonthLevel)))
}

// birth resolves the date of birth relative to the already-resolved
// reception date. Both columns must be present; an unresolved reception
// date leaves the birth date unresolved too.
func (d *Decoder) birth(row Row, received string) string {
	v, ok := row["DateOfBirth"]
	if !ok {
		return ""
	}
	if _, ok := row["DateReceived"]; !ok {
		return ""
	}
	return dates.ISO(dates.ResolveRelative(dates.ParseStub(v, dates.DayLevel), received))
}

func (d *Decoder) crime(row Row) string {
	v, ok := row["CrimeDetails"]
	if !ok {
		return ""
	}
	return codebook.DecodeCrime(v, d.Books.Crime)
}

// sentence decodes a sentence field. Files that carry separate years and
// months columns use both; files with a single combined column treat the
// months component as absent.
func (d *Decoder) sentence(row Row, col, yearsCol, monthsCol string) string {
	y, hasYears := row[yearsCol]
	m, hasMonths := row[monthsCol]
	if hasYears && hasMonths {
		return codebook.DecodeSentence(y, m)
	}
	if v, ok := row[col]; ok {
		return codebook.DecodeSentence(v, "")
	}
	return ""
}
