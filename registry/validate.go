package registry

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/go-playground/validator.v9"

	"github.com/ss58-project/ss58gen/common/errors"
)

// Violation is one broken invariant, naming every record involved so that
// the report is actionable without opening the document.
type Violation struct {
	Invariant string
	Networks  []string
	Message   string
}

func (v *Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Invariant, v.Message)
}

// ValidationError carries every violation found in a single pass.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations)+1)
	lines = append(lines, fmt.Sprintf("registry has %d violation(s)", len(e.Violations)))
	for i := range e.Violations {
		lines = append(lines, "  - "+e.Violations[i].String())
	}
	return strings.Join(lines, "\n")
}

func (e *ValidationError) ErrorCode() errors.Code {
	return errors.ValidationFailError
}

const (
	InvariantUniquePrefix    = "unique-prefix"
	InvariantUniqueNetwork   = "unique-network"
	InvariantUniqueIdent     = "unique-ident"
	InvariantSymbolDecimals  = "symbols-decimals"
	InvariantPrefixRange     = "prefix-range"
	InvariantRecordShape     = "record-shape"
	InvariantReservedAccount = "reserved-account"
)

var shapeValidator = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("identifier", isEmittableIdentifier)
	v.RegisterValidation("scheme", isStandardScheme)
	return v
}

// isEmittableIdentifier rejects networks with whitespace and networks whose
// normalized form would not be a legal identifier in generated code.
func isEmittableIdentifier(fl validator.FieldLevel) bool {
	network := fl.Field().String()
	if strings.IndexFunc(network, unicode.IsSpace) >= 0 {
		return false
	}
	a := AccountType{Network: network}
	id := a.Ident()
	if id == "" {
		return false
	}
	return !unicode.IsDigit(rune(id[0]))
}

func isStandardScheme(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case SchemeSr25519, SchemeEd25519, SchemeSecp256k1, SchemeAny25519:
		return true
	}
	return false
}

// Validated is the proof-of-validation token: it can only be produced by
// Validate, so a generator requiring one cannot be fed an unchecked
// registry.
type Validated struct {
	reg *Registry
}

func (v Validated) Registry() *Registry {
	return v.reg
}

func (v Validated) Entries() []AccountType {
	return v.reg.Registry
}

// Validate checks every cross-record invariant of the registry, collecting
// all violations instead of stopping at the first one.
func Validate(reg *Registry) (Validated, error) {
	var vs []Violation

	for i := range reg.Registry {
		at := &reg.Registry[i]
		vs = append(vs, checkShape(at)...)

		if len(at.Symbols) != len(at.Decimals) {
			vs = append(vs, Violation{
				Invariant: InvariantSymbolDecimals,
				Networks:  []string{at.Network},
				Message: fmt.Sprintf("%s has %d symbols but %d decimals",
					at, len(at.Symbols), len(at.Decimals)),
			})
		}
		if at.StandardAccount == "" && !at.IsReserved &&
			!strings.HasPrefix(at.Network, "reserved") {
			vs = append(vs, Violation{
				Invariant: InvariantReservedAccount,
				Networks:  []string{at.Network},
				Message:   fmt.Sprintf("%s omits standardAccount but is not reserved", at),
			})
		}
	}

	vs = append(vs, checkUniquePrefixes(reg)...)
	vs = append(vs, checkUniqueNetworks(reg)...)
	vs = append(vs, checkUniqueIdents(reg)...)

	if len(vs) > 0 {
		return Validated{}, &ValidationError{Violations: vs}
	}
	return Validated{reg: reg}, nil
}

func checkShape(at *AccountType) []Violation {
	err := shapeValidator.Struct(at)
	if err == nil {
		return nil
	}
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{
			Invariant: InvariantRecordShape,
			Networks:  []string{at.Network},
			Message:   fmt.Sprintf("%s: %v", at, err),
		}}
	}
	vs := make([]Violation, 0, len(ferrs))
	for _, fe := range ferrs {
		inv := InvariantRecordShape
		if fe.Field() == "Prefix" {
			inv = InvariantPrefixRange
		}
		vs = append(vs, Violation{
			Invariant: inv,
			Networks:  []string{at.Network},
			Message: fmt.Sprintf("%s field %s fails %q constraint",
				at, fe.Field(), fe.Tag()),
		})
	}
	return vs
}

func checkUniquePrefixes(reg *Registry) []Violation {
	byPrefix := make(map[uint16][]string, len(reg.Registry))
	order := make([]uint16, 0, len(reg.Registry))
	for i := range reg.Registry {
		at := &reg.Registry[i]
		if len(byPrefix[at.Prefix]) == 0 {
			order = append(order, at.Prefix)
		}
		byPrefix[at.Prefix] = append(byPrefix[at.Prefix], at.Network)
	}
	var vs []Violation
	for _, prefix := range order {
		networks := byPrefix[prefix]
		if len(networks) > 1 {
			vs = append(vs, Violation{
				Invariant: InvariantUniquePrefix,
				Networks:  networks,
				Message: fmt.Sprintf("prefix %d is claimed by %s",
					prefix, strings.Join(networks, ", ")),
			})
		}
	}
	return vs
}

// checkUniqueIdents rejects distinct networks whose normalized identifiers
// collide, since those would become duplicate declarations in generated
// code. Identical raw networks are already caught by checkUniqueNetworks.
func checkUniqueIdents(reg *Registry) []Violation {
	byIdent := make(map[string][]string, len(reg.Registry))
	order := make([]string, 0, len(reg.Registry))
	for i := range reg.Registry {
		at := &reg.Registry[i]
		id := at.Ident()
		if id == "" {
			// already a record-shape violation
			continue
		}
		networks := byIdent[id]
		if len(networks) == 0 {
			order = append(order, id)
		}
		if !containsString(networks, at.Network) {
			byIdent[id] = append(networks, at.Network)
		}
	}
	var vs []Violation
	for _, id := range order {
		networks := byIdent[id]
		if len(networks) > 1 {
			vs = append(vs, Violation{
				Invariant: InvariantUniqueIdent,
				Networks:  networks,
				Message: fmt.Sprintf("networks %s normalize to the same identifier %s",
					strings.Join(networks, ", "), id),
			})
		}
	}
	return vs
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func checkUniqueNetworks(reg *Registry) []Violation {
	byNetwork := make(map[string]int, len(reg.Registry))
	order := make([]string, 0, len(reg.Registry))
	for i := range reg.Registry {
		at := &reg.Registry[i]
		if byNetwork[at.Network] == 0 {
			order = append(order, at.Network)
		}
		byNetwork[at.Network]++
	}
	var vs []Violation
	for _, network := range order {
		if n := byNetwork[network]; n > 1 {
			vs = append(vs, Violation{
				Invariant: InvariantUniqueNetwork,
				Networks:  []string{network},
				Message:   fmt.Sprintf("network %q appears %d times", network, n),
			})
		}
	}
	return vs
}
