package lang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const frenchTOML = `
[fr]
and = "et"

[fr.minute]
singular = "minute"
plural = "minutes"

[fr.hour]
singular = "heure"
plural = "heures"

[fr.day]
singular = "jour"
plural = "jours"

[fr.week]
singular = "semaine"
plural = "semaines"

[fr.month]
singular = "mois"
plural = "mois"

[fr.year]
singular = "an"
plural = "ans"
`

func TestBuiltin(t *testing.T) {
	table := Builtin()

	for _, code := range []string{"en", "de"} {
		pack, ok := table[code]
		if !ok {
			t.Fatalf("Builtin() missing language %q", code)
		}
		if err := pack.Validate(); err != nil {
			t.Errorf("Builtin() pack %q fails validation: %v", code, err)
		}
	}

	if got := table["en"].Week.Plural; got != "weeks" {
		t.Errorf("en week plural = %q, want %q", got, "weeks")
	}
	if got := table["de"].And; got != "und" {
		t.Errorf("de conjunction = %q, want %q", got, "und")
	}
	if got := table["de"].Week.Singular; got != "Woche" {
		t.Errorf("de week singular = %q, want %q", got, "Woche")
	}
}

func TestPackValidate(t *testing.T) {
	valid := Builtin()["en"]

	tests := []struct {
		name   string
		mutate func(*Pack)
		wantOK bool
	}{
		{name: "complete pack", mutate: func(*Pack) {}, wantOK: true},
		{name: "missing conjunction", mutate: func(p *Pack) { p.And = "" }},
		{name: "missing singular", mutate: func(p *Pack) { p.Month.Singular = "" }},
		{name: "missing plural", mutate: func(p *Pack) { p.Minute.Plural = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := valid
			tt.mutate(&pack)
			err := pack.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidPack) {
					t.Errorf("Validate() = %v, want ErrInvalidPack", err)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	table, err := Parse([]byte(frenchTOML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	fr, ok := table["fr"]
	if !ok {
		t.Fatal("Parse() missing language \"fr\"")
	}
	if fr.And != "et" {
		t.Errorf("fr conjunction = %q, want %q", fr.And, "et")
	}
	if fr.Week.Plural != "semaines" {
		t.Errorf("fr week plural = %q, want %q", fr.Week.Plural, "semaines")
	}
}

func TestParseIncompletePack(t *testing.T) {
	incomplete := `
[fr]
and = "et"

[fr.minute]
singular = "minute"
plural = "minutes"
`
	if _, err := Parse([]byte(incomplete)); !errors.Is(err, ErrInvalidPack) {
		t.Errorf("Parse() = %v, want ErrInvalidPack", err)
	}
}

func TestParseMalformedTOML(t *testing.T) {
	if _, err := Parse([]byte("[fr\nand =")); err == nil {
		t.Error("Parse() = nil, want error for malformed TOML")
	}
}

func TestMerge(t *testing.T) {
	extra, err := Parse([]byte(frenchTOML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	base := Builtin()
	merged := base.Merge(extra)

	for _, code := range []string{"en", "de", "fr"} {
		if _, ok := merged[code]; !ok {
			t.Errorf("merged table missing language %q", code)
		}
	}
	if _, ok := base["fr"]; ok {
		t.Error("Merge() modified the receiver")
	}
}

func TestMergeOverridesExisting(t *testing.T) {
	override := Builtin()["en"]
	override.And = "plus"

	merged := Builtin().Merge(Table{"en": override})
	if got := merged["en"].And; got != "plus" {
		t.Errorf("merged en conjunction = %q, want %q", got, "plus")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packs.toml")
	if err := os.WriteFile(path, []byte(frenchTOML), 0o644); err != nil {
		t.Fatalf("writing pack file: %v", err)
	}

	table, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if _, ok := table["fr"]; !ok {
		t.Error("LoadFrom() missing language \"fr\"")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFrom() = nil, want error for missing file")
	}
}
