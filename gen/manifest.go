package gen

import (
	"encoding/json"

	"github.com/ss58-project/ss58gen/common/errors"
)

const ManifestFileName = "package.json"

// DefaultOverrides rewrites the repository's working package manifest into
// the published one: entry points swapped to the emitted bundle, build-time
// keys stripped.
var DefaultOverrides = map[string]Override{
	"main":            {Value: "index.js"},
	"types":           {Value: "index.d.ts"},
	"private":         {Remove: true},
	"scripts":         {Remove: true},
	"devDependencies": {Remove: true},
}

// generateManifestPatch applies the override rules to the input manifest.
// Pure in (manifest, rules): keys mapped to Remove are dropped (a no-op
// when absent), keys mapped to a value are set, everything else passes
// through untouched. Output key order is lexicographic, so the patched
// manifest is byte-stable.
func generateManifestPatch(opts *Options) ([]File, error) {
	if opts == nil || opts.Manifest == nil {
		return nil, errors.IllegalArgumentError.New(
			"manifest-patch requires an input manifest")
	}
	rules := opts.Overrides
	if rules == nil {
		rules = DefaultOverrides
	}

	patched, err := PatchManifest(opts.Manifest, rules)
	if err != nil {
		return nil, err
	}
	return []File{{Name: ManifestFileName, Content: patched}}, nil
}

// PatchManifest is the patch primitive, exported for reuse by the build
// driver. Unknown value shapes in the input are carried through as raw
// JSON, untouched.
func PatchManifest(manifest []byte, rules map[string]Override) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(manifest, &doc); err != nil {
		return nil, errors.IllegalArgumentError.Wrapf(err,
			"manifest is not a JSON object")
	}

	for key, rule := range rules {
		if rule.Remove {
			delete(doc, key)
			continue
		}
		bs, err := json.Marshal(rule.Value)
		if err != nil {
			return nil, errors.EmitFailError.Wrapf(err,
				"fail to encode override for key %q", key)
		}
		doc[key] = bs
	}

	bs, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.EmitFailError.Wrapf(err, "fail to marshal manifest")
	}
	return append(bs, '\n'), nil
}
