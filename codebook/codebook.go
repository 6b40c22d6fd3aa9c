// Package codebook resolves the categorical codes of the intake instrument
// to human-readable labels. Codes that the instrument reserved for "not
// recorded", and codes absent from a book, both decode to "Unknown": every
// lookup produces a label.
package codebook

// Unknown is the label given to every code that cannot be resolved.
const Unknown = "Unknown"

// Normalize reports whether a raw value carries a recorded code. The
// instrument used an ampersand, the digit 9 and a blank interchangeably
// for "not recorded"; none of them may reach a book lookup as if they
// were categories of their own.
func Normalize(v string) (string, bool) {
	switch v {
	case "&", "9", "":
		return "", false
	}
	return v, true
}

// A Codebook maps raw codes to labels. Books are immutable once loaded.
type Codebook map[string]string

// Decode resolves a raw value to its label. Sentinel values and
// unrecognized codes resolve to Unknown.
func (c Codebook) Decode(raw string) string {
	v, ok := Normalize(raw)
	if !ok {
		return Unknown
	}
	label, ok := c[v]
	if !ok {
		return Unknown
	}
	return label
}
