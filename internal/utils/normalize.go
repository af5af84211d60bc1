package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var wsRe = regexp.MustCompile(`\s+`)
var nonSlug = regexp.MustCompile(`[^a-z0-9\-]+`)
var multiDash = regexp.MustCompile(`\-+`)

var ErrInvalidTimeFormat = errors.New("invalid time format")

// NormalizeNameLower collapses whitespace and lowercases, giving the
// form menu item and customer names are matched on.
func NormalizeNameLower(s string) string {
	s = strings.TrimSpace(s)
	s = wsRe.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// Slugify folds accents and punctuation down to a-z0-9 dashes, so
// "Crème Brûlée" searches as "creme-brulee".
func Slugify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	t := norm.NFKD.String(name)
	b := make([]rune, 0, len(t))
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b = append(b, unicode.ToLower(r))
			continue
		}
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			b = append(b, '-')
			continue
		}
	}
	out := string(b)
	out = nonSlug.ReplaceAllString(out, "-")
	out = multiDash.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	return out
}

// KeywordsFromName builds the keyword set stored alongside searchable
// entities: individual words, the full lowered name, and slug forms.
func KeywordsFromName(nameLower, slug string) []string {
	if nameLower == "" {
		return nil
	}
	parts := strings.Fields(nameLower)
	kw := make([]string, 0, len(parts)+2)
	seen := map[string]bool{}
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		kw = append(kw, s)
	}
	for _, p := range parts {
		add(p)
	}
	add(nameLower)
	if slug != "" {
		add(strings.ReplaceAll(slug, "-", " "))
		add(slug)
	}
	return kw
}

// ParseClock validates an "HH:MM" wall-clock value (bookings, opening
// hours) and returns its components.
func ParseClock(s string) (hour, minute int, err error) {
	t, perr := time.Parse("15:04", strings.TrimSpace(s))
	if perr != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	return t.Hour(), t.Minute(), nil
}
