package decode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iand/punster/codebook"
)

func testBooks() *codebook.Set {
	return &codebook.Set{
		Institution: codebook.Codebook{"02": "Sing Sing", "05": "Attica"},
		County:      codebook.Codebook{"60": "Westchester", "31": "New York"},
		Crime:       codebook.Codebook{"10": "Larceny", "20": "Burglary"},
		Country:     codebook.Codebook{"01": "United States"},
		Psych:       codebook.Codebook{"04": "No psychosis"},
		Religion:    codebook.Codebook{"1": "Catholic", "2": "Protestant"},
		Sex:         codebook.Codebook{"1": "Male", "2": "Female"},
		ReturnType:  codebook.Codebook{"1": "Parole violation"},
	}
}

func TestDecodeFullRow(t *testing.T) {
	d := NewDecoder(testBooks())

	row := Row{
		"ReceivingInstitutionCode":  "02",
		"InmateNumber":              "123456",
		"DateReceived":              "61252",
		"CrimeCategory":             "1",
		"SentenceType":              "2",
		"DateOfBirth":               "11530",
		"CrimeDetails":              "1010",
		"MinSentence":               "005",
		"MaxSentence":               "010",
		"CountyCommittedFrom":       "60",
		"CourtCommittedBy":          "2",
		"Race":                      "1",
		"AgeAtCommitment":           "22",
		"Religion":                  "1",
		"Sex":                       "1",
		"IdentifierNumber":          "654321",
		"CheckDigit":                "7",
		"YearsResidenceNY":          "22",
		"MilitaryService":           "1",
		"Education":                 "H",
		"Occupation":                "8",
		"NarcoticsUse":              "2",
		"MaritalStatus":             "0",
		"PrevCriminalRecord":        "0",
		"CountryOfBirth":            "01",
		"YearEnteredUS":             "",
		"NaturalizationStatus":      "8",
		"PsychiatricClassification": "04",
		"InstitutionOriginal":       "05",
		"OriginalMonthYear":         "48",
		"MentalHygieneID":           "0",
		"ReturnType":                "1",
		"LatestReleaseDate":         "651",
		"LatestReturnDate":          "&&&",
		"CurrentInstitution":        "02",
	}

	got := d.Decode(row)

	want := []string{
		"Sing Sing",                     // Institution
		"Westchester",                   // County
		"County/Supreme Court – General Sessions", // CourtCommittedByName
		"Larceny, degree 2nd",           // Crime
		"",                              // CrimeAttemptedLabel: column not in the card layout
		"1930-01-15",                    // DateOfBirth, relative to reception
		"1952-06-12",                    // DateReceived
		"5 yrs",                         // MinSentenceLabel
		"10 yrs",                        // MaxSentenceLabel
		"22",                            // AgeAtCommitment
		"White",                         // RaceName
		"Catholic",                      // ReligionName
		"Male",                          // SexName
		"654321",                        // IdentifierNumber
		"7",                             // CheckDigit
		"22",                            // YearsResidenceNY
		"Military – honorable/general discharge", // MilitaryServiceLabel
		"High school graduate",          // EducationLevel
		"Laborer",                       // OccupationName
		"Does not use narcotics",        // NarcoticsUseLabel
		"Single",                        // MaritalStatusName
		"No prior adult record",         // PrevCriminalRecordLabel
		"United States",                 // CountryOfBirthName
		"",                              // YearEnteredUSNum
		"Foreign-born U.S. citizen",     // NaturalizationStatusLabel
		"No psychosis",                  // PsychiatricClassificationLabel
		"Attica",                        // InstitutionOriginalName
		"",                              // OriginalMonthYear: two digits cannot form a month code
		"0",                             // MentalHygieneIDNum
		"Parole violation",              // ReturnTypeLabel
		"1951-06",                       // LatestReleaseDate
		"",                              // LatestReturnDate: sentinel has no digits
		"Sing Sing",                     // CurrentInstitutionName
	}

	if len(got) != len(Columns) {
		t.Fatalf("got %d values, want %d", len(got), len(Columns))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAbsentColumnsDegradeToEmpty(t *testing.T) {
	d := NewDecoder(testBooks())

	got := d.Decode(Row{})

	if len(got) != len(Columns) {
		t.Fatalf("got %d values, want %d", len(got), len(Columns))
	}
	for i, v := range got {
		if v != "" {
			t.Errorf("column %s = %q, want empty", Columns[i], v)
		}
	}
}

// A column that is present but blank is a recorded-as-missing code and
// decodes to Unknown; a column that is absent from the file decodes to
// empty. The two must not collapse into each other.
func TestDecodeBlankVersusAbsent(t *testing.T) {
	d := NewDecoder(testBooks())

	blank := d.Decode(Row{"Race": ""})
	if got := value(blank, "RaceName"); got != "Unknown" {
		t.Errorf("blank Race decoded to %q, want Unknown", got)
	}

	absent := d.Decode(Row{})
	if got := value(absent, "RaceName"); got != "" {
		t.Errorf("absent Race decoded to %q, want empty", got)
	}
}

func TestDecodeBirthWithoutReception(t *testing.T) {
	d := NewDecoder(testBooks())

	// Birth dates can only be resolved against a reception date.
	got := d.Decode(Row{"DateOfBirth": "11530"})
	if v := value(got, "DateOfBirth"); v != "" {
		t.Errorf("DateOfBirth = %q, want empty", v)
	}

	// An unparseable reception date leaves the birth date unresolved too.
	got = d.Decode(Row{"DateOfBirth": "11530", "DateReceived": "&&"})
	if v := value(got, "DateOfBirth"); v != "" {
		t.Errorf("DateOfBirth = %q, want empty", v)
	}
}

func TestDecodeBirthCenturyWrap(t *testing.T) {
	d := NewDecoder(testBooks())

	got := d.Decode(Row{"DateOfBirth": "10187", "DateReceived": "61252"})
	if v := value(got, "DateOfBirth"); v != "1887-01-01" {
		t.Errorf("DateOfBirth = %q, want 1887-01-01", v)
	}
}

func TestDecodeSentenceColumnVariants(t *testing.T) {
	d := NewDecoder(testBooks())

	// Separate years and months columns are preferred when both exist.
	got := d.Decode(Row{"MinSentenceYears": "2", "MinSentenceMonths": "6", "MinSentence": "999"})
	if v := value(got, "MinSentenceLabel"); v != "2 yrs, 6 mos" {
		t.Errorf("MinSentenceLabel = %q, want 2 yrs, 6 mos", v)
	}

	// The combined column is used alone otherwise.
	got = d.Decode(Row{"MinSentence": "999"})
	if v := value(got, "MinSentenceLabel"); v != "100+ years" {
		t.Errorf("MinSentenceLabel = %q, want 100+ years", v)
	}
}

// value looks up a decoded value by column name.
func value(vals []string, col string) string {
	for i, name := range Columns {
		if name == col {
			return vals[i]
		}
	}
	return ""
}
