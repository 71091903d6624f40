// Package registry holds the data model for the SS58 account-type registry
// and the loader for its canonical JSON document.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/ss58-project/ss58gen/common/errors"
)

// SS58 reserves the two top bits of the prefix, so the largest value that
// can be carried by the address encoding is 0x3fff.
const MaxPrefix = 0x3fff

// Standard account schemes accepted in the standardAccount field.
const (
	SchemeSr25519   = "Sr25519"
	SchemeEd25519   = "Ed25519"
	SchemeSecp256k1 = "secp256k1"
	SchemeAny25519  = "*25519"
)

// AccountType is one row of the registry. Field names follow the upstream
// document verbatim; a prefix, once published, is never reassigned.
type AccountType struct {
	Prefix          uint16   `json:"prefix" validate:"max=16383"`
	Network         string   `json:"network" validate:"required,identifier"`
	DisplayName     string   `json:"displayName" validate:"required"`
	Symbols         []string `json:"symbols"`
	Decimals        []uint16 `json:"decimals" validate:"dive,max=19"`
	StandardAccount string   `json:"standardAccount,omitempty" validate:"omitempty,scheme"`
	Website         string   `json:"website,omitempty" validate:"omitempty,url"`
	IsReserved      bool     `json:"isReserved,omitempty"`
	IsTestnet       bool     `json:"isTestnet,omitempty"`
}

// Reserved reports whether the entry is a reserved/withheld prefix. A
// missing standardAccount marks the entry reserved even without the flag.
func (a *AccountType) Reserved() bool {
	return a.IsReserved || a.StandardAccount == ""
}

// Ident returns the name the entry gets in generated code: the network
// identifier in PascalCase with everything outside [0-9A-Za-z] dropped.
func (a *AccountType) Ident() string {
	var b strings.Builder
	upper := true
	for _, r := range a.Network {
		if !isAlnum(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Description renders the doc string attached to the generated constant.
func (a *AccountType) Description() string {
	if a.Website != "" {
		return fmt.Sprintf("%s - <%s>", a.DisplayName, a.Website)
	}
	return a.DisplayName
}

func (a *AccountType) String() string {
	return fmt.Sprintf("AccountType(network=%s,prefix=%d)", a.Network, a.Prefix)
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// Registry is the ordered sequence of account types as stored in the
// document. Order is load-bearing: it becomes declaration order in every
// generated artifact.
type Registry struct {
	Registry []AccountType `json:"registry"`
}

func (r *Registry) Entries() []AccountType {
	return r.Registry
}

func (r *Registry) Len() int {
	return len(r.Registry)
}

// Decode parses the registry document from r. Only the document shape is
// checked here; cross-record invariants are deferred to Validate so that a
// single run can report every violation at once.
func Decode(rd io.Reader) (*Registry, error) {
	reg := new(Registry)
	dec := json.NewDecoder(rd)
	if err := dec.Decode(reg); err != nil {
		return nil, errors.MalformedRegistryError.Wrapf(err, "fail to decode registry document")
	}
	// Trailing garbage after the closing brace is as malformed as a bad
	// document.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, errors.MalformedRegistryError.New("unexpected content after registry document")
	}
	if reg.Registry == nil {
		return nil, errors.MalformedRegistryError.New("document has no \"registry\" sequence")
	}
	return reg, nil
}

// Load reads and decodes the registry file. The file handle is held only
// for the duration of the call.
func Load(path string) (*Registry, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IOError.Wrapf(err, "fail to read registry path=%s", path)
	}
	return Decode(bytes.NewReader(bs))
}
