// Package lang holds the per-language unit labels used to render elapsed-time
// phrases. The built-in table covers English and German; hosts can register
// further languages from TOML pack files.
package lang

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidPack reports a language pack with missing labels.
var ErrInvalidPack = errors.New("invalid language pack")

// Nouns holds the singular and plural form of one time unit.
type Nouns struct {
	Singular string `toml:"singular"`
	Plural   string `toml:"plural"`
}

// Pack holds all labels for one language: a noun pair per unit plus the
// conjunction word joining two phrases.
type Pack struct {
	And    string `toml:"and"`
	Minute Nouns  `toml:"minute"`
	Hour   Nouns  `toml:"hour"`
	Day    Nouns  `toml:"day"`
	Week   Nouns  `toml:"week"`
	Month  Nouns  `toml:"month"`
	Year   Nouns  `toml:"year"`
}

// Table maps a language code (e.g. "en", "de") to its pack.
type Table map[string]Pack

// Builtin returns a fresh table with the built-in languages.
func Builtin() Table {
	return Table{
		"en": {
			And:    "and",
			Minute: Nouns{"minute", "minutes"},
			Hour:   Nouns{"hour", "hours"},
			Day:    Nouns{"day", "days"},
			Week:   Nouns{"week", "weeks"},
			Month:  Nouns{"month", "months"},
			Year:   Nouns{"year", "years"},
		},
		"de": {
			And:    "und",
			Minute: Nouns{"Minute", "Minuten"},
			Hour:   Nouns{"Stunde", "Stunden"},
			Day:    Nouns{"Tag", "Tage"},
			Week:   Nouns{"Woche", "Wochen"},
			Month:  Nouns{"Monat", "Monate"},
			Year:   Nouns{"Jahr", "Jahre"},
		},
	}
}

// Validate checks that every label in the pack is set.
func (p Pack) Validate() error {
	if p.And == "" {
		return fmt.Errorf("%w: conjunction must be set", ErrInvalidPack)
	}
	units := []struct {
		name  string
		nouns Nouns
	}{
		{"minute", p.Minute},
		{"hour", p.Hour},
		{"day", p.Day},
		{"week", p.Week},
		{"month", p.Month},
		{"year", p.Year},
	}
	for _, u := range units {
		if u.nouns.Singular == "" || u.nouns.Plural == "" {
			return fmt.Errorf("%w: %s needs both singular and plural forms", ErrInvalidPack, u.name)
		}
	}
	return nil
}

// Merge returns a new table containing the receiver's packs overlaid with
// other's. Neither input is modified.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for code, p := range t {
		merged[code] = p
	}
	for code, p := range other {
		merged[code] = p
	}
	return merged
}

// Parse reads language packs from TOML data keyed by language code.
// Every pack must validate.
func Parse(data []byte) (Table, error) {
	var packs Table
	if err := toml.Unmarshal(data, &packs); err != nil {
		return nil, fmt.Errorf("parsing language packs: %w", err)
	}
	for code, p := range packs {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
	}
	return packs, nil
}

// LoadFrom reads language packs from a TOML file. Unlike app config there is
// no default to fall back to, so a missing file is an error.
func LoadFrom(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading language pack file: %w", err)
	}
	return Parse(data)
}
