package registry

import (
	"sort"
	"strconv"

	"github.com/ss58-project/ss58gen/common/errors"
)

// AddressFormat is a bare SS58 prefix. It may name a registered network or
// a custom, unregistered one.
type AddressFormat struct {
	prefix uint16
}

func CustomFormat(prefix uint16) AddressFormat {
	return AddressFormat{prefix: prefix}
}

func (f AddressFormat) Prefix() uint16 {
	return f.prefix
}

// Lookup provides prefix and name resolution over a validated registry.
// The index tables are built once and never mutated, so a Lookup may be
// shared freely.
type Lookup struct {
	entries  []AccountType
	byPrefix []int // indexes into entries, ordered by prefix
	byName   map[string]int
}

func NewLookup(v Validated) *Lookup {
	entries := v.Entries()
	l := &Lookup{
		entries:  entries,
		byPrefix: make([]int, len(entries)),
		byName:   make(map[string]int, len(entries)),
	}
	for i := range entries {
		l.byPrefix[i] = i
		l.byName[entries[i].Network] = i
	}
	sort.Slice(l.byPrefix, func(i, j int) bool {
		return entries[l.byPrefix[i]].Prefix < entries[l.byPrefix[j]].Prefix
	})
	return l
}

// All returns the entries in registry order.
func (l *Lookup) All() []AccountType {
	return l.entries
}

// Names returns every network name in registry order.
func (l *Lookup) Names() []string {
	names := make([]string, len(l.entries))
	for i := range l.entries {
		names[i] = l.entries[i].Network
	}
	return names
}

// ByPrefix resolves a prefix through binary search over the sorted index.
func (l *Lookup) ByPrefix(prefix uint16) (*AccountType, bool) {
	n := len(l.byPrefix)
	i := sort.Search(n, func(i int) bool {
		return l.entries[l.byPrefix[i]].Prefix >= prefix
	})
	if i < n && l.entries[l.byPrefix[i]].Prefix == prefix {
		return &l.entries[l.byPrefix[i]], true
	}
	return nil, false
}

func (l *Lookup) ByNetwork(network string) (*AccountType, bool) {
	if i, ok := l.byName[network]; ok {
		return &l.entries[i], true
	}
	return nil, false
}

// Format resolves an address format against the registry, accepting either
// a registered network name or a bare numeric prefix.
func (l *Lookup) Format(s string) (AddressFormat, error) {
	if at, ok := l.ByNetwork(s); ok {
		return AddressFormat{prefix: at.Prefix}, nil
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return AddressFormat{prefix: uint16(n)}, nil
	}
	return AddressFormat{}, errors.NotFoundError.Errorf(
		"fail to parse %q as network or prefix", s)
}

// Name returns the network name of the format, or the decimal prefix when
// it is not registered.
func (l *Lookup) Name(f AddressFormat) string {
	if at, ok := l.ByPrefix(f.prefix); ok {
		return at.Network
	}
	return strconv.FormatUint(uint64(f.prefix), 10)
}
