// Package matching implements the text normalization and deterministic ranking
// used to resolve free-text or code-form port and carrier queries.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// portNoisePrefixes are removed from the start of a normalized port name.
// Order matters: the first match wins and stripping happens at most once.
var portNoisePrefixes = []string{
	"port of ",
	"porto di ",
	"puerto de ",
	"puerto del ",
	"port ",
	"harbor of ",
	"harbour of ",
}

// NormalizeText strips diacritics, casefolds, and collapses whitespace runs
// to a single space. Empty input yields an empty string.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	// Transformers and casers carry state, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// AlnumOnly removes every character that is not an ASCII letter or digit.
func AlnumOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Tokenize splits the normalized text on runs of non-alphanumeric characters.
func Tokenize(s string) []string {
	return strings.FieldsFunc(NormalizeText(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// StripPortNoise removes one leading noise prefix such as "port of " from a port name.
// The result is normalized.
func StripPortNoise(name string) string {
	n := NormalizeText(name)
	for _, prefix := range portNoisePrefixes {
		if strings.HasPrefix(n, prefix) {
			return n[len(prefix):]
		}
	}
	return n
}

// CodeForm returns the alnum-only uppercase form of a code-like string.
func CodeForm(s string) string {
	return strings.ToUpper(AlnumOnly(s))
}
