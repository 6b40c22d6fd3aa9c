package codebook

// degrees maps the degree digit of a crime code to its ordinal label.
// Both 2 and 3 denote first degree in the instrument.
var degrees = map[string]string{
	"0": "3rd",
	"1": "2nd",
	"2": "1st",
	"3": "1st",
}

// DecodeCrime resolves the combined crime details code. The first two
// characters are the offence code, the third is the degree digit. An
// ampersand or blank in either part means the offence was not recorded.
func DecodeCrime(details string, crimes Codebook) string {
	code := sliceString(details, 0, 2)
	degree := sliceString(details, 2, 3)

	if code == "" || degree == "" || containsAmp(code) || containsAmp(degree) {
		return Unknown
	}

	base, ok := crimes[code]
	if !ok {
		return Unknown
	}

	label, ok := degrees[degree]
	if !ok {
		return base
	}
	return base + ", degree " + label
}

func containsAmp(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '&' {
			return true
		}
	}
	return false
}

// sliceString takes s[start:end], tolerating strings shorter than end.
func sliceString(s string, start, end int) string {
	if start > len(s) {
		start = len(s)
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
