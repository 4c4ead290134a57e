package countryname

import (
	"strings"
	"testing"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brazil", "brazil"},
		{"  BRAZIL ", "brazil"},
		{"Côte d'Ivoire", "cote divoire"},
		{"Cote d’Ivoire", "cote divoire"},
		{"Bosnia & Herzegovina", "bosnia and herzegovina"},
		{"Korea, Rep.", "korea rep"},
		{"The Gambia", "gambia"},
		{"São Tomé and Príncipe", "sao tome and principe"},
		{"Guinea-Bissau", "guinea bissau"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestTable_Lookup(t *testing.T) {
	table := New()

	tests := []struct {
		in   string
		want domain.CanonicalName
	}{
		{"United States of America", "United States"},
		{"USA", "United States"},
		{"us", "United States"},
		{"Federative Republic of Brazil", "Brazil"},
		{"BRA", "Brazil"},
		{"Dem. Rep. Congo", "DR Congo"},
		{"Congo", "Congo Republic"},
		{"Ivory Coast", "Cote d'Ivoire"},
		{"Côte d'Ivoire", "Cote d'Ivoire"},
		{"Russian Federation", "Russia"},
		{"Korea, Rep.", "South Korea"},
		{"Viet Nam", "Vietnam"},
		{"Czechia", "Czech Republic"},
		{"Bosnia and Herz.", "Bosnia and Herzegovina"},
		{"eSwatini", "Eswatini"},
		{"Türkiye", "Turkey"},
		{"United Kingdom", "United Kingdom"},
	}
	for _, tt := range tests {
		got, ok := table.Lookup(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, ok := table.Lookup("Atlantis")
	assert.False(t, ok)
}

func TestTable_CanonicalNamesResolveToThemselves(t *testing.T) {
	table := New()
	for _, c := range countries {
		got, ok := table.Lookup(c.name)
		require.True(t, ok, c.name)
		assert.Equal(t, domain.CanonicalName(c.name), got)
	}
	assert.Equal(t, len(countries), table.Len())
}

func TestTable_WorksWithReconciler(t *testing.T) {
	rec := domain.NewReconciler(New())

	assert.True(t, rec.SameCountry("United States", "United States of America"))
	assert.True(t, rec.SameCountry("Czech Republic", "Czechia"))
	assert.False(t, rec.SameCountry("Niger", "Nigeria"))
}

func TestTable_WithAliases(t *testing.T) {
	base := New()
	csvData := `alias,canonical
# dataset quirks
Brasil do Sul,Brazil
Holland,Netherlands
`
	table, err := base.WithAliases(strings.NewReader(csvData))
	require.NoError(t, err)

	got, ok := table.Lookup("brasil do sul")
	require.True(t, ok)
	assert.Equal(t, domain.CanonicalName("Brazil"), got)

	_, ok = base.Lookup("Brasil do Sul")
	assert.False(t, ok, "base table is not modified")
}

func TestTable_WithAliasesRejectsUnknownCanonical(t *testing.T) {
	_, err := New().WithAliases(strings.NewReader("Mu,Lemuria\n"))
	require.ErrorIs(t, err, domain.ErrUnknownCountry)
}

func TestTable_WithAliasesRejectsMalformedRows(t *testing.T) {
	_, err := New().WithAliases(strings.NewReader("only-one-column\n"))
	require.Error(t, err)
}
