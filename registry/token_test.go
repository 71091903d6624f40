package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Token{Name: "DOT", Decimals: 10, Amount: 100_000_000}, "0,010 DOT"},
		{Token{Name: "KSM", Decimals: 12, Amount: 1_000_000_000_000}, "1,000 KSM"},
		{Token{Name: "XTX", Decimals: 0, Amount: 12345}, "12_345,000 XTX"},
		{Token{Name: "ACA", Decimals: 12, Amount: 1_234_567_890_123_456}, "1_234,567 ACA"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.String())
		})
	}
}

func TestTokenOversizedDecimals(t *testing.T) {
	// Precision beyond what uint64 can carry is clamped instead of
	// dividing by a wrapped-around multiplier.
	assert.NotPanics(t, func() {
		tk := Token{Name: "X", Decimals: 64, Amount: 1}
		assert.Equal(t, "0,000 X", tk.String())
	})

	tk := Token{Name: "Y", Decimals: MaxDecimals, Amount: 10_000_000_000_000_000_000}
	assert.Equal(t, "1,000 Y", tk.String())
}

func TestTokenDetail(t *testing.T) {
	tk := Token{Name: "DOT", Decimals: 10, Amount: 100_000_000}
	assert.Equal(t, "0,010 DOT (100_000_000)", tk.Detail())
}

func TestAccountTypeToken(t *testing.T) {
	at := entry(0, "polkadot")
	at.Symbols = []string{"DOT"}
	at.Decimals = []uint16{10}

	tk, ok := at.Token(0, 100_000_000)
	require.True(t, ok)
	assert.Equal(t, "0,010 DOT", tk.String())

	_, ok = at.Token(1, 1)
	assert.False(t, ok)
	_, ok = at.Token(-1, 1)
	assert.False(t, ok)
}
