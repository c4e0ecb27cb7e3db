package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s, strips diacritics, and trims surrounding
// whitespace. It is applied identically to catalog text and query tokens so
// that accented and unaccented spellings compare equal ("Médecin" and
// "medecin" normalize to the same string). Idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if isASCII(s) {
		return s
	}
	return stripMarks(s)
}

// stripMarks decomposes accented characters (NFD) and removes the combining
// marks, then recomposes to NFC.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Transform failures leave the lowered input as-is; matching
		// degrades, it never errors.
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
