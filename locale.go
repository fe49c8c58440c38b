package measure

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var errLocaleData = errors.New("unexpected locale data")

// Probe values are rendered by the locale printer and their digits are
// compared against these strings to recover separators and group sizes.
const (
	probeLong      = 1234567890.5
	probeLongDigs  = "12345678905"
	probeShort     = 1234.5
	probeShortDigs = "12345"
)

// localeSymbols describes how a locale writes a fixed-point number.
type localeSymbols struct {
	zero      rune   // digit zero
	decimal   string // decimal separator
	group     string // group separator
	primary   int    // size of the rightmost group
	secondary int    // size of the other groups
	minGroup  int    // minimum digits in front of the first separator
}

var englishSymbols = localeSymbols{
	zero:      '0',
	decimal:   ".",
	group:     ",",
	primary:   3,
	secondary: 3,
	minGroup:  1,
}

// localeCache holds symbols derived by [lookupLocale].
// Entries are pure functions of the tag, so evictions never change results.
var localeCache = mustLocaleCache(64)

func mustLocaleCache(size int) *lru.Cache[string, localeSymbols] {
	c, err := lru.New[string, localeSymbols](size)
	if err != nil {
		panic(fmt.Sprintf("lru.New(%v) failed: %v", size, err))
	}
	return c
}

// lookupLocale returns the symbols of a BCP 47 tag.
// The empty tag means English.
func lookupLocale(tag string) (localeSymbols, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return englishSymbols, nil
	}
	if sym, ok := localeCache.Get(tag); ok {
		return sym, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return localeSymbols{}, fmt.Errorf("parsing locale %q: %w", tag, err)
	}
	p := message.NewPrinter(t)
	long := p.Sprintf("%v", number.Decimal(probeLong, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	short := p.Sprintf("%v", number.Decimal(probeShort, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	sym, err := parseSymbols(long, short)
	if err != nil {
		return localeSymbols{}, fmt.Errorf("deriving symbols of %q: %w", tag, err)
	}
	localeCache.Add(tag, sym)
	return sym, nil
}

// probeParts splits a rendered probe into its digits and the separators
// between digit runs.
// Characters in front of the first digit and after the last digit are
// ignored, such as directional marks.
func probeParts(s string) (digs []rune, runs []int, seps []string) {
	var sep strings.Builder
	n := 0
	for _, r := range s {
		if !unicode.IsDigit(r) {
			if len(digs) > 0 {
				sep.WriteRune(r)
			}
			continue
		}
		if sep.Len() > 0 {
			runs = append(runs, n)
			seps = append(seps, sep.String())
			sep.Reset()
			n = 0
		}
		digs = append(digs, r)
		n++
	}
	if len(digs) > 0 {
		runs = append(runs, n)
	}
	return digs, runs, seps
}

// parseSymbols derives locale symbols from the renderings of [probeLong]
// and [probeShort].
func parseSymbols(long, short string) (localeSymbols, error) {
	digs, runs, seps := probeParts(long)
	if len(digs) != len(probeLongDigs) || len(seps) == 0 {
		return localeSymbols{}, fmt.Errorf("%w: %q", errLocaleData, long)
	}
	zero := digs[0] - 1
	for i, r := range digs {
		if r-zero != rune(probeLongDigs[i]-'0') {
			return localeSymbols{}, fmt.Errorf("%w: %q", errLocaleData, long)
		}
	}
	// The last run is the single fraction digit.
	if runs[len(runs)-1] != 1 {
		return localeSymbols{}, fmt.Errorf("%w: %q", errLocaleData, long)
	}
	sym := localeSymbols{
		zero:     zero,
		decimal:  seps[len(seps)-1],
		minGroup: 1,
	}
	groups := runs[:len(runs)-1]
	if len(groups) == 1 {
		// Locale without grouping.
		return sym, nil
	}
	sym.group = seps[0]
	for _, s := range seps[:len(seps)-1] {
		if s != sym.group {
			return localeSymbols{}, fmt.Errorf("%w: %q", errLocaleData, long)
		}
	}
	sym.primary = groups[len(groups)-1]
	sym.secondary = sym.primary
	if len(groups) > 2 {
		sym.secondary = groups[len(groups)-2]
	}
	if sym.primary <= 0 || sym.secondary <= 0 {
		return localeSymbols{}, fmt.Errorf("%w: %q", errLocaleData, long)
	}
	// A four-digit integer left ungrouped means at least two digits must
	// precede the first separator.
	if _, shortRuns, _ := probeParts(short); len(shortRuns) == 2 && sym.primary < len(probeShortDigs)-1 {
		sym.minGroup = 2
	}
	return sym, nil
}

// apply rewrites a fixed-point string produced by [Decimal.FixedString] with
// the locale's digits and separators.
func (sym localeSymbols) apply(s string, grouping bool) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(2 * len(s))
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(sym.group3(intPart, grouping))
	if hasFrac {
		b.WriteString(sym.decimal)
		b.WriteString(sym.digits(frac))
	}
	return b.String()
}

// group3 inserts group separators into the integer digits.
func (sym localeSymbols) group3(digs string, grouping bool) string {
	if !grouping || sym.group == "" || len(digs) < sym.primary+sym.minGroup {
		return sym.digits(digs)
	}
	var sizes []int
	n := len(digs)
	size := sym.primary
	for n > size {
		sizes = append(sizes, size)
		n -= size
		size = sym.secondary
	}
	var b strings.Builder
	b.Grow(2 * len(digs))
	b.WriteString(sym.digits(digs[:n]))
	pos := n
	for i := len(sizes) - 1; i >= 0; i-- {
		b.WriteString(sym.group)
		b.WriteString(sym.digits(digs[pos : pos+sizes[i]]))
		pos += sizes[i]
	}
	return b.String()
}

// digits maps ASCII digits to the locale's digits.
func (sym localeSymbols) digits(s string) string {
	if sym.zero == '0' || sym.zero == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * utf8.UTFMax)
	for i := 0; i < len(s); i++ {
		b.WriteRune(sym.zero + rune(s[i]-'0'))
	}
	return b.String()
}
