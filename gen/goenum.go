package gen

import (
	"bytes"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/ss58-project/ss58gen/common/errors"
	"github.com/ss58-project/ss58gen/registry"
)

const GoEnumFileName = "registry_gen.go"

type enumEntry struct {
	Ident           string
	Network         string
	Desc            string
	DisplayName     string
	StandardAccount string
	Prefix          uint16
	Symbols         []string
	Decimals        []uint16
	Reserved        bool
}

type prefixIndex struct {
	Prefix uint16
	Index  int
}

type enumContext struct {
	Package  string
	Source   string
	Entries  []enumEntry
	ByPrefix []prefixIndex
}

// generateGoEnum emits the Go constant table. Declaration order equals
// registry order; only the reverse table is sorted, by prefix, so that the
// generated lookup can binary-search it.
func generateGoEnum(v registry.Validated, opts *Options) ([]File, error) {
	all := v.Entries()
	entries := make([]enumEntry, 0, len(all))
	for i := range all {
		at := &all[i]
		if opts != nil && opts.SkipReserved && at.Reserved() {
			continue
		}
		entries = append(entries, enumEntry{
			Ident:           at.Ident(),
			Network:         at.Network,
			Desc:            at.Description(),
			DisplayName:     at.DisplayName,
			StandardAccount: at.StandardAccount,
			Prefix:          at.Prefix,
			Symbols:         at.Symbols,
			Decimals:        at.Decimals,
			Reserved:        at.Reserved(),
		})
	}

	byPrefix := make([]prefixIndex, len(entries))
	for i := range entries {
		byPrefix[i] = prefixIndex{Prefix: entries[i].Prefix, Index: i}
	}
	sort.Slice(byPrefix, func(i, j int) bool {
		return byPrefix[i].Prefix < byPrefix[j].Prefix
	})

	ctx := &enumContext{
		Package:  opts.packageName(),
		Source:   opts.source(),
		Entries:  entries,
		ByPrefix: byPrefix,
	}

	buf := new(bytes.Buffer)
	if err := goEnumTemplate.Execute(buf, ctx); err != nil {
		return nil, errors.EmitFailError.Wrapf(err, "fail to render go-enum template")
	}
	src, err := imports.Process(GoEnumFileName, buf.Bytes(), nil)
	if err != nil {
		return nil, errors.EmitFailError.Wrapf(err, "generated go-enum source is invalid")
	}
	return []File{{Name: GoEnumFileName, Content: src}}, nil
}

var goEnumTemplate = template.Must(template.New("goenum").Parse(`// Code generated by ss58gen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

// NetworkID is a known SS58 address network prefix.
type NetworkID uint16

const (
{{- range .Entries}}
	// {{.Desc}}
	{{.Ident}}Account NetworkID = {{.Prefix}}
{{- end}}
)

// AllNetworks lists every known network in registry order.
var AllNetworks = []NetworkID{
{{- range .Entries}}
	{{.Ident}}Account,
{{- end}}
}

// networkNames is parallel to AllNetworks.
var networkNames = []string{
{{- range .Entries}}
	{{printf "%q" .Network}},
{{- end}}
}

type networkInfo struct {
	network         string
	displayName     string
	symbols         []string
	decimals        []uint16
	standardAccount string
	reserved        bool
}

// networkDetails is parallel to AllNetworks.
var networkDetails = []networkInfo{
{{- range .Entries}}
	{
		network:     {{printf "%q" .Network}},
		displayName: {{printf "%q" .DisplayName}},
		symbols:     []string{ {{- range .Symbols}}{{printf "%q" .}}, {{end -}} },
		decimals:    []uint16{ {{- range .Decimals}}{{.}}, {{end -}} },
		standardAccount: {{printf "%q" .StandardAccount}},
		reserved:        {{.Reserved}},
	},
{{- end}}
}

// prefixToIndex is ordered by prefix for binary search.
var prefixToIndex = []struct {
	prefix uint16
	index  int
}{
{{- range .ByPrefix}}
	{ {{- .Prefix}}, {{.Index -}} },
{{- end}}
}

func indexOfPrefix(prefix uint16) (int, bool) {
	n := len(prefixToIndex)
	i := sort.Search(n, func(i int) bool {
		return prefixToIndex[i].prefix >= prefix
	})
	if i < n && prefixToIndex[i].prefix == prefix {
		return prefixToIndex[i].index, true
	}
	return 0, false
}

// ByPrefix resolves a numeric prefix to its NetworkID.
func ByPrefix(prefix uint16) (NetworkID, bool) {
	if i, ok := indexOfPrefix(prefix); ok {
		return AllNetworks[i], true
	}
	return 0, false
}

// ByNetwork resolves a network name to its NetworkID.
func ByNetwork(network string) (NetworkID, bool) {
	for i, name := range networkNames {
		if name == network {
			return AllNetworks[i], true
		}
	}
	return 0, false
}

func (n NetworkID) details() (*networkInfo, bool) {
	if i, ok := indexOfPrefix(uint16(n)); ok {
		return &networkDetails[i], true
	}
	return nil, false
}

// String returns the network name, or the decimal prefix for unknown IDs.
func (n NetworkID) String() string {
	if d, ok := n.details(); ok {
		return d.network
	}
	return strconv.FormatUint(uint64(n), 10)
}

// DisplayName returns the human-readable network name.
func (n NetworkID) DisplayName() string {
	if d, ok := n.details(); ok {
		return d.displayName
	}
	return ""
}

// Symbols returns the network's token tickers.
func (n NetworkID) Symbols() []string {
	if d, ok := n.details(); ok {
		return d.symbols
	}
	return nil
}

// Decimals returns the decimal precision for each ticker.
func (n NetworkID) Decimals() []uint16 {
	if d, ok := n.details(); ok {
		return d.decimals
	}
	return nil
}

// StandardAccount returns the default key scheme of the network.
func (n NetworkID) StandardAccount() string {
	if d, ok := n.details(); ok {
		return d.standardAccount
	}
	return ""
}

// IsReserved reports whether the prefix is reserved for future use.
func (n NetworkID) IsReserved() bool {
	if d, ok := n.details(); ok {
		return d.reserved
	}
	return false
}
`))
