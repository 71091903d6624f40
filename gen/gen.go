// Package gen turns a validated registry into derived artifacts. Every
// target is a pure function from the registry value to file contents;
// writing the files is the caller's job.
package gen

import (
	"github.com/ss58-project/ss58gen/common/errors"
	"github.com/ss58-project/ss58gen/registry"
)

type Target string

const (
	TargetGoEnum        Target = "go-enum"
	TargetJSONBundle    Target = "json-bundle"
	TargetTypeDecl      Target = "type-declaration"
	TargetManifestPatch Target = "manifest-patch"
)

// Targets lists every supported target in emission order.
var Targets = []Target{
	TargetGoEnum,
	TargetJSONBundle,
	TargetTypeDecl,
	TargetManifestPatch,
}

// File is an emitted artifact: a name relative to the output directory and
// its full content.
type File struct {
	Name    string
	Content []byte
}

// Override is one manifest patch rule: either replace the key's value or
// remove the key entirely.
type Override struct {
	Remove bool
	Value  interface{}
}

type Options struct {
	// Package is the package name of the go-enum artifact.
	Package string
	// Source names the registry document in generated headers.
	Source string
	// SkipReserved drops reserved entries from the go-enum artifact.
	// Reserved entries always survive the json-bundle, which must
	// round-trip the document exactly.
	SkipReserved bool
	// Manifest is the input document for the manifest-patch target.
	Manifest []byte
	// Overrides are the manifest patch rules. Nil means DefaultOverrides.
	Overrides map[string]Override
	// TypeTemplate overrides the built-in type-declaration template.
	TypeTemplate string
}

func (o *Options) packageName() string {
	if o == nil || o.Package == "" {
		return "ss58"
	}
	return o.Package
}

func (o *Options) source() string {
	if o == nil || o.Source == "" {
		return "ss58-registry.json"
	}
	return o.Source
}

// Generate emits the artifact files for one target. It accepts only a
// Validated registry, so an invalid document cannot reach an emitter.
func Generate(v registry.Validated, target Target, opts *Options) ([]File, error) {
	switch target {
	case TargetGoEnum:
		return generateGoEnum(v, opts)
	case TargetJSONBundle:
		return generateBundle(v)
	case TargetTypeDecl:
		return generateTypeDecl(opts)
	case TargetManifestPatch:
		return generateManifestPatch(opts)
	default:
		return nil, errors.UnknownTargetError.Errorf("unknown target %q", target)
	}
}
