package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciler_Canonicalize(t *testing.T) {
	rec := testReconciler()

	got, err := rec.Canonicalize("United States of America")
	require.NoError(t, err)
	assert.Equal(t, CanonicalName("United States"), got)

	got, err = rec.Canonicalize("  Germany ")
	require.NoError(t, err)
	assert.Equal(t, CanonicalName("Germany"), got)

	_, err = rec.Canonicalize("Atlantis")
	require.ErrorIs(t, err, ErrUnknownCountry)

	_, err = rec.Canonicalize("")
	require.ErrorIs(t, err, ErrUnknownCountry)
}

func TestReconciler_NilLookupFailsClosed(t *testing.T) {
	_, err := NewReconciler(nil).Canonicalize("Germany")
	require.ErrorIs(t, err, ErrUnknownCountry)
}

func TestReconciler_SameCountry(t *testing.T) {
	rec := testReconciler()

	assert.True(t, rec.SameCountry("United States", "United States of America"))
	assert.False(t, rec.SameCountry("Brazil", "Germany"))
	assert.False(t, rec.SameCountry("Atlantis", "Atlantis"), "unknown names never match")
}

func TestChainLookup(t *testing.T) {
	first := mapLookup(map[string]CanonicalName{"UK": "United Kingdom"})
	second := mapLookup(map[string]CanonicalName{"UK": "Ukraine", "Deutschland": "Germany"})
	chain := ChainLookup{nil, first, second}

	got, ok := chain.Lookup("UK")
	require.True(t, ok)
	assert.Equal(t, CanonicalName("United Kingdom"), got, "first lookup wins")

	got, ok = chain.Lookup("Deutschland")
	require.True(t, ok)
	assert.Equal(t, CanonicalName("Germany"), got)

	_, ok = chain.Lookup("Atlantis")
	assert.False(t, ok)
}
