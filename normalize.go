package measure

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var combiningMarks = regexp.MustCompile(`[\x{0300}-\x{036f}]`)

// normalize folds s for token comparison: text mis-decoded as Windows-1252
// is repaired, then s is decomposed, lowercased and stripped of combining
// marks.
// "Â°C", "°c" and "°C" all normalize to "°c", "Métre" to "metre".
func normalize(s string) string {
	s = decompose(s)
	t, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), s)
	if err != nil {
		return stripMarks(s)
	}
	return t
}

// decompose repairs, decomposes and lowercases s, leaving combining marks
// in place.
func decompose(s string) string {
	return strings.ToLower(norm.NFD.String(repairMojibake(s)))
}

// stripMarks removes the combining diacritical marks block.
// It covers fewer characters than the Mn category and is used only when the
// transformer fails.
func stripMarks(s string) string {
	return combiningMarks.ReplaceAllString(s, "")
}

// repairMojibake reverses UTF-8 text that was decoded as Windows-1252, such
// as "Â°C" for "°C".
// A string is repaired only if it encodes to Windows-1252 and the resulting
// bytes form valid UTF-8 that differs from the input.
func repairMojibake(s string) string {
	if isASCII(s) {
		return s
	}
	b, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil || !utf8.ValidString(b) {
		return s
	}
	return b
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
