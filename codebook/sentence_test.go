package codebook

import "testing"

func TestDecodeSentence(t *testing.T) {
	testCases := []struct {
		name   string
		years  string
		months string
		want   string
	}{
		{name: "death sentinel dominates years", years: "010", months: "&&&", want: "Death/Indeterminate"},
		{name: "death sentinel dominates max years", years: "999", months: "&&&", want: "Death/Indeterminate"},
		{name: "max years sentinel", years: "999", months: "6", want: "100+ years"},
		{name: "max years sentinel with unparseable months", years: "999", months: "xx", want: "100+ years"},
		{name: "transfer prefix 92", years: "920", months: "0", want: "Transfer/Indeterminate"},
		{name: "transfer prefix 95", years: "951", months: "", want: "Transfer/Indeterminate"},
		{name: "years and months", years: "5", months: "6", want: "5 yrs, 6 mos"},
		{name: "single year", years: "1", months: "0", want: "1 yr"},
		{name: "single month", years: "0", months: "1", want: "1 mo"},
		{name: "months letter T", years: "0", months: "T", want: "10 mos"},
		{name: "months letter E", years: "2", months: "E", want: "2 yrs, 11 mos"},
		{name: "zero sentence", years: "0", months: "0", want: "0 months"},
		{name: "zero years empty months", years: "000", months: "", want: "0 months"},
		{name: "leading zeros", years: "030", months: "", want: "30 yrs"},
		{name: "unparseable years", years: "O30", months: "5", want: ""},
		{name: "unparseable months counts as zero", years: "3", months: "x", want: "3 yrs"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeSentence(tc.years, tc.months)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeCrime(t *testing.T) {
	crimes := Codebook{
		"10": "Larceny",
		"20": "Burglary",
	}

	testCases := []struct {
		name    string
		details string
		want    string
	}{
		{name: "third degree", details: "1000", want: "Larceny, degree 3rd"},
		{name: "second degree", details: "1010", want: "Larceny, degree 2nd"},
		{name: "first degree", details: "2020", want: "Burglary, degree 1st"},
		{name: "degree three is also first", details: "2030", want: "Burglary, degree 1st"},
		{name: "unmapped degree keeps base label", details: "1070", want: "Larceny"},
		{name: "unknown offence code", details: "9900", want: Unknown},
		{name: "ampersand in code", details: "&000", want: Unknown},
		{name: "ampersand in degree", details: "10&0", want: Unknown},
		{name: "blank details", details: "", want: Unknown},
		{name: "short details", details: "10", want: Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeCrime(tc.details, crimes)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
