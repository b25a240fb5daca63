// Package timesince renders the elapsed time between two timestamps as a
// localized phrase, e.g. "3 years and 9 months" or "2 Wochen". It is built
// to serve as a template-function callback for photo cataloging tools: the
// host hands over the photo's timestamp and a reference timestamp plus a
// language code, and gets back a formatted string.
//
// At most two adjacent units are reported, chosen by the magnitude of the
// gap. Month and year counts come from calendar-field arithmetic, so
// crossing one calendar month reads as "1 month" no matter how many days
// that month has.
package timesince

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/timesince/internal/span"
	"github.com/javiermolinar/timesince/lang"
)

// ErrUnsupportedLanguage reports a language code with no pack in the table.
// It is never silently defaulted.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Formatter renders elapsed-time phrases from a fixed language table.
// The zero value is not usable; construct with NewFormatter.
type Formatter struct {
	packs lang.Table
}

// NewFormatter returns a Formatter over the given table. The table is read
// but never modified, so one Formatter is safe for concurrent use.
func NewFormatter(packs lang.Table) *Formatter {
	return &Formatter{packs: packs}
}

// Format renders the gap between earlier and later in the given language.
// Argument order does not matter. A zero gap renders as the plural-zero
// minute phrase ("0 minutes").
func (f *Formatter) Format(earlier, later time.Time, language string) (string, error) {
	pack, ok := f.packs[language]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	parts := span.Breakdown(earlier, later)
	phrases := make([]string, len(parts))
	for i, p := range parts {
		phrases[i] = phrase(pack, p)
	}
	return strings.Join(phrases, " "+pack.And+" "), nil
}

// builtin serves the package-level Format. Built once, never mutated.
var builtin = NewFormatter(lang.Builtin())

// Format renders the gap between earlier and later using the built-in
// language table.
func Format(earlier, later time.Time, language string) (string, error) {
	return builtin.Format(earlier, later, language)
}

// phrase renders one unit count, pluralized. Only a count of exactly one
// takes the singular form.
func phrase(pack lang.Pack, p span.Part) string {
	nouns := unitNouns(pack, p.Unit)
	if p.Count == 1 {
		return fmt.Sprintf("1 %s", nouns.Singular)
	}
	return fmt.Sprintf("%d %s", p.Count, nouns.Plural)
}

func unitNouns(pack lang.Pack, u span.Unit) lang.Nouns {
	switch u {
	case span.Hour:
		return pack.Hour
	case span.Day:
		return pack.Day
	case span.Week:
		return pack.Week
	case span.Month:
		return pack.Month
	case span.Year:
		return pack.Year
	default:
		return pack.Minute
	}
}
