package gen

import (
	"encoding/json"

	"github.com/ss58-project/ss58gen/common/errors"
	"github.com/ss58-project/ss58gen/registry"
)

const BundleFileName = "ss58-registry.json"

// generateBundle re-serializes the registry as the canonical JSON bundle.
// Field names and entry order are preserved verbatim, so decoding the
// output yields the input registry again, byte-stable across runs.
func generateBundle(v registry.Validated) ([]File, error) {
	bs, err := json.MarshalIndent(v.Registry(), "", "  ")
	if err != nil {
		return nil, errors.EmitFailError.Wrapf(err, "fail to marshal registry bundle")
	}
	return []File{{Name: BundleFileName, Content: append(bs, '\n')}}, nil
}
