// Package countryname provides the static country-name table used to
// reconcile climate rows with geometry features.
package countryname

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table maps normalised spellings to canonical short names. It implements
// domain.NameLookup and is immutable once built.
type Table struct {
	keys      map[string]domain.CanonicalName
	canonical map[domain.CanonicalName]struct{}
}

// New returns the built-in table.
func New() *Table {
	t := &Table{
		keys:      make(map[string]domain.CanonicalName, len(countries)*5),
		canonical: make(map[domain.CanonicalName]struct{}, len(countries)),
	}
	// Names are registered before codes and aliases so a short code can
	// never shadow a real country name.
	for _, c := range countries {
		name := domain.CanonicalName(c.name)
		t.canonical[name] = struct{}{}
		t.add(c.name, name)
	}
	for _, c := range countries {
		name := domain.CanonicalName(c.name)
		t.add(c.official, name)
		t.add(c.alpha3, name)
		t.add(c.alpha2, name)
	}
	for _, c := range countries {
		for _, a := range c.aliases {
			t.add(a, domain.CanonicalName(c.name))
		}
	}
	return t
}

func (t *Table) add(spelling string, name domain.CanonicalName) {
	key := Normalize(spelling)
	if key == "" {
		return
	}
	if _, exists := t.keys[key]; exists {
		return
	}
	t.keys[key] = name
}

// Lookup implements domain.NameLookup.
func (t *Table) Lookup(name string) (domain.CanonicalName, bool) {
	c, ok := t.keys[Normalize(name)]
	return c, ok
}

// Len returns the number of canonical countries.
func (t *Table) Len() int { return len(t.canonical) }

// Canonical reports whether name is itself a canonical country name.
func (t *Table) Canonical(name domain.CanonicalName) bool {
	_, ok := t.canonical[name]
	return ok
}

// WithAliases returns a copy of t extended with the two-column
// "alias,canonical" CSV read from r. A header row is skipped when its second
// column is literally "canonical". Aliases pointing at a name that is not a
// canonical country are rejected, and aliases override built-in spellings.
func (t *Table) WithAliases(r io.Reader) (*Table, error) {
	out := &Table{
		keys:      make(map[string]domain.CanonicalName, len(t.keys)),
		canonical: t.canonical,
	}
	for k, v := range t.keys {
		out.keys[k] = v
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read aliases: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[1]), "canonical") {
			continue
		}
		alias, target := strings.TrimSpace(rec[0]), domain.CanonicalName(strings.TrimSpace(rec[1]))
		if !out.Canonical(target) {
			return nil, fmt.Errorf("alias %q on line %d: %w: %q", alias, line, domain.ErrUnknownCountry, target)
		}
		key := Normalize(alias)
		if key == "" {
			return nil, fmt.Errorf("empty alias on line %d", line)
		}
		out.keys[key] = target
	}
	return out, nil
}

// Normalize folds a country spelling to its lookup key: accents stripped,
// case folded, "&" read as "and", a leading "the" dropped, and every run of
// punctuation or whitespace collapsed to a single space.
func Normalize(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)
	folded = strings.ReplaceAll(folded, "&", " and ")

	var b strings.Builder
	space := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		if r == '\'' || r == '’' {
			continue
		}
		space = true
	}
	return strings.TrimPrefix(b.String(), "the ")
}
