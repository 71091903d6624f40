package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup(t *testing.T) *Lookup {
	t.Helper()
	reg := &Registry{Registry: []AccountType{
		entry(42, "substrate"),
		entry(0, "polkadot"),
		entry(2, "kusama"),
		entry(10041, "basilisk"),
	}}
	v, err := Validate(reg)
	require.NoError(t, err)
	return NewLookup(v)
}

func TestLookupByPrefix(t *testing.T) {
	l := testLookup(t)

	for _, tt := range []struct {
		prefix  uint16
		network string
	}{
		{0, "polkadot"},
		{2, "kusama"},
		{42, "substrate"},
		{10041, "basilisk"},
	} {
		at, ok := l.ByPrefix(tt.prefix)
		require.True(t, ok, tt.network)
		assert.Equal(t, tt.network, at.Network)
	}

	_, ok := l.ByPrefix(7)
	assert.False(t, ok)
}

func TestLookupByNetwork(t *testing.T) {
	l := testLookup(t)

	at, ok := l.ByNetwork("kusama")
	require.True(t, ok)
	assert.Equal(t, uint16(2), at.Prefix)

	_, ok = l.ByNetwork("acala")
	assert.False(t, ok)
}

func TestLookupOrder(t *testing.T) {
	l := testLookup(t)
	// All and Names keep registry order, not prefix order.
	assert.Equal(t, []string{"substrate", "polkadot", "kusama", "basilisk"}, l.Names())
	assert.Equal(t, uint16(42), l.All()[0].Prefix)
}

func TestLookupFormat(t *testing.T) {
	l := testLookup(t)

	f, err := l.Format("polkadot")
	require.NoError(t, err)
	assert.Equal(t, uint16(0), f.Prefix())
	assert.Equal(t, "polkadot", l.Name(f))

	// Bare numeric prefixes are accepted as custom formats.
	f, err = l.Format("255")
	require.NoError(t, err)
	assert.Equal(t, uint16(255), f.Prefix())
	assert.Equal(t, "255", l.Name(f))

	_, err = l.Format("no-such-network")
	assert.Error(t, err)

	assert.Equal(t, uint16(7), CustomFormat(7).Prefix())
}
