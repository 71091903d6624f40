package registry

import (
	"fmt"
	"strings"
)

// Token is an amount in a network's smallest denomination, together with
// the ticker and precision needed to print it for humans.
type Token struct {
	Name     string
	Decimals uint16
	Amount   uint64
}

// Token builds a token amount for the i-th ticker of the entry. The second
// return is false when the entry has no ticker at that position.
func (a *AccountType) Token(i int, amount uint64) (Token, bool) {
	if i < 0 || i >= len(a.Symbols) || i >= len(a.Decimals) {
		return Token{}, false
	}
	return Token{
		Name:     a.Symbols[i],
		Decimals: a.Decimals[i],
		Amount:   amount,
	}, true
}

// String renders the amount with `_` grouping on the integer part and a
// comma before the three most significant fractional digits, e.g.
// "1_000,000 DOT".
func (t Token) String() string {
	whole, frac := t.split()
	return fmt.Sprintf("%s,%03d %s", groupDigits(whole), frac, t.Name)
}

// Detail includes the raw amount: "1_000,000 DOT (10_000_000_000_000)".
func (t Token) Detail() string {
	whole, frac := t.split()
	return fmt.Sprintf("%d,%03d %s (%s)", whole, frac, t.Name, groupDigits(t.Amount))
}

func (t Token) split() (whole uint64, frac uint64) {
	multiplier := pow10(t.Decimals)
	whole = t.Amount / multiplier
	if multiplier >= 1000 {
		frac = t.Amount % multiplier / (multiplier / 1000)
	}
	return whole, frac
}

// MaxDecimals is the largest precision a token amount can carry: uint64
// holds at most 10^19.
const MaxDecimals = 19

func pow10(n uint16) uint64 {
	if n > MaxDecimals {
		n = MaxDecimals
	}
	m := uint64(1)
	for i := uint16(0); i < n; i++ {
		m *= 10
	}
	return m
}

func groupDigits(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, "_")
}
