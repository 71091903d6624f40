package gen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ss58-project/ss58gen/common/errors"
)

const testManifest = `{
  "name": "@substrate/ss58-registry",
  "version": "1.51.0",
  "private": true,
  "main": "src/index.js",
  "scripts": { "build": "node build.js" },
  "license": "Apache-2.0"
}`

func TestManifestPatch(t *testing.T) {
	patched, err := PatchManifest([]byte(testManifest), DefaultOverrides)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(patched, &doc))

	assert.Equal(t, "index.js", doc["main"])
	assert.Equal(t, "index.d.ts", doc["types"])
	assert.NotContains(t, doc, "private")
	assert.NotContains(t, doc, "scripts")
	// untouched keys pass through
	assert.Equal(t, "@substrate/ss58-registry", doc["name"])
	assert.Equal(t, "1.51.0", doc["version"])
	assert.Equal(t, "Apache-2.0", doc["license"])
}

func TestManifestPatchPure(t *testing.T) {
	a, err := PatchManifest([]byte(testManifest), DefaultOverrides)
	require.NoError(t, err)
	b, err := PatchManifest([]byte(testManifest), DefaultOverrides)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestManifestPatchRemoveMissingKey(t *testing.T) {
	rules := map[string]Override{
		"no-such-key": {Remove: true},
	}
	patched, err := PatchManifest([]byte(`{"name":"x"}`), rules)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(patched, &doc))
	assert.Equal(t, map[string]interface{}{"name": "x"}, doc)
}

func TestManifestPatchBadInput(t *testing.T) {
	_, err := PatchManifest([]byte(`[1,2,3]`), DefaultOverrides)
	require.Error(t, err)
	assert.Equal(t, errors.IllegalArgumentError, errors.CodeOf(err))
}

func TestManifestTargetNeedsInput(t *testing.T) {
	v := validated(t, entry(0, "polkadot", "DOT", 10))

	_, err := Generate(v, TargetManifestPatch, nil)
	require.Error(t, err)
	assert.Equal(t, errors.IllegalArgumentError, errors.CodeOf(err))

	files, err := Generate(v, TargetManifestPatch, &Options{Manifest: []byte(testManifest)})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, ManifestFileName, files[0].Name)
}

func TestManifestPatchCustomRules(t *testing.T) {
	rules := map[string]Override{
		"version": {Value: "2.0.0"},
		"files":   {Value: []string{"index.js", "index.d.ts"}},
	}
	patched, err := PatchManifest([]byte(`{"version":"1.0.0"}`), rules)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(patched, &doc))
	assert.Equal(t, "2.0.0", doc["version"])
	assert.Equal(t, []interface{}{"index.js", "index.d.ts"}, doc["files"])
}
