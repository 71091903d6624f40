package gen

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ss58-project/ss58gen/common/errors"
	"github.com/ss58-project/ss58gen/registry"
)

func entry(prefix uint16, network, symbol string, decimals uint16) registry.AccountType {
	return registry.AccountType{
		Prefix:          prefix,
		Network:         network,
		DisplayName:     network,
		Symbols:         []string{symbol},
		Decimals:        []uint16{decimals},
		StandardAccount: registry.SchemeSr25519,
	}
}

func validated(t *testing.T, entries ...registry.AccountType) registry.Validated {
	t.Helper()
	v, err := registry.Validate(&registry.Registry{Registry: entries})
	require.NoError(t, err)
	return v
}

func TestGenerateUnknownTarget(t *testing.T) {
	v := validated(t, entry(0, "polkadot", "DOT", 10))
	_, err := Generate(v, Target("rust-enum"), nil)
	require.Error(t, err)
	assert.Equal(t, errors.UnknownTargetError, errors.CodeOf(err))
}

// gofmt may align the const block, so allow any spacing around the type.
var enumConstRe = regexp.MustCompile(`(?m)^\t(\w+)Account\s+NetworkID = (\d+)$`)

func enumOrder(t *testing.T, content []byte) []string {
	t.Helper()
	var idents []string
	for _, m := range enumConstRe.FindAllSubmatch(content, -1) {
		idents = append(idents, string(m[1]))
	}
	return idents
}

func TestGoEnumDeclarationOrder(t *testing.T) {
	// The same record set in different orders must emit in exactly the
	// given order, not sorted by prefix or name.
	perms := [][]registry.AccountType{
		{entry(0, "polkadot", "DOT", 10), entry(2, "kusama", "KSM", 12), entry(42, "substrate", "UNIT", 12)},
		{entry(42, "substrate", "UNIT", 12), entry(0, "polkadot", "DOT", 10), entry(2, "kusama", "KSM", 12)},
		{entry(2, "kusama", "KSM", 12), entry(42, "substrate", "UNIT", 12), entry(0, "polkadot", "DOT", 10)},
	}
	for _, perm := range perms {
		v := validated(t, perm...)
		files, err := Generate(v, TargetGoEnum, nil)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, GoEnumFileName, files[0].Name)

		want := make([]string, len(perm))
		for i := range perm {
			want[i] = perm[i].Ident()
		}
		assert.Equal(t, want, enumOrder(t, files[0].Content))
	}
}

func TestGoEnumContent(t *testing.T) {
	at := entry(0, "polkadot", "DOT", 10)
	at.Website = "https://polkadot.network"
	v := validated(t, at, entry(2, "kusama", "KSM", 12))

	files, err := Generate(v, TargetGoEnum, &Options{Package: "networks", Source: "test.json"})
	require.NoError(t, err)
	content := string(files[0].Content)

	assert.Contains(t, content, "package networks")
	assert.Contains(t, content, "PolkadotAccount NetworkID = 0")
	assert.Equal(t, []string{"Polkadot", "Kusama"}, enumOrder(t, files[0].Content))
	assert.Contains(t, content, "polkadot - <https://polkadot.network>")
	assert.Contains(t, content, `"DOT"`)
	assert.Contains(t, content, "DO NOT EDIT")
	assert.Contains(t, content, "test.json")
	// imports rewritten by goimports
	assert.Contains(t, content, `"sort"`)
	assert.Contains(t, content, `"strconv"`)
}

func TestGoEnumDeterministic(t *testing.T) {
	v := validated(t, entry(0, "polkadot", "DOT", 10), entry(2, "kusama", "KSM", 12))

	a, err := Generate(v, TargetGoEnum, nil)
	require.NoError(t, err)
	b, err := Generate(v, TargetGoEnum, nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a[0].Content, b[0].Content))
}

func TestGoEnumSkipReserved(t *testing.T) {
	reserved := registry.AccountType{
		Prefix:      46,
		Network:     "reserved46",
		DisplayName: "This prefix is reserved.",
		IsReserved:  true,
	}
	v := validated(t, entry(0, "polkadot", "DOT", 10), reserved)

	files, err := Generate(v, TargetGoEnum, &Options{SkipReserved: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Polkadot"}, enumOrder(t, files[0].Content))

	files, err = Generate(v, TargetGoEnum, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Polkadot", "Reserved46"}, enumOrder(t, files[0].Content))
}

func TestBundleRoundTrip(t *testing.T) {
	v := validated(t,
		entry(0, "polkadot", "DOT", 10),
		entry(2, "kusama", "KSM", 12),
	)

	files, err := Generate(v, TargetJSONBundle, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, BundleFileName, files[0].Name)

	reg2, err := registry.Decode(bytes.NewReader(files[0].Content))
	require.NoError(t, err)
	assert.Equal(t, v.Registry(), reg2)

	// Byte-stable across runs.
	again, err := Generate(v, TargetJSONBundle, nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(files[0].Content, again[0].Content))
}

func TestTypeDeclSchemaOnly(t *testing.T) {
	a := validated(t, entry(0, "polkadot", "DOT", 10))
	b := validated(t, entry(2, "kusama", "KSM", 12), entry(42, "substrate", "UNIT", 12))

	fa, err := Generate(a, TargetTypeDecl, nil)
	require.NoError(t, err)
	fb, err := Generate(b, TargetTypeDecl, nil)
	require.NoError(t, err)

	// The declaration describes the schema, not the data.
	assert.Equal(t, fa[0].Content, fb[0].Content)
	assert.Equal(t, TypeDeclFileName, fa[0].Name)
	assert.Contains(t, string(fa[0].Content), "RegistryEntry")
	assert.Contains(t, string(fa[0].Content), "standardAccount")
}

func TestTypeDeclOverrideTemplate(t *testing.T) {
	v := validated(t, entry(0, "polkadot", "DOT", 10))
	files, err := Generate(v, TargetTypeDecl, &Options{
		Source:       "my.json",
		TypeTemplate: "// from {{.Source}}\nexport type Prefix = number;\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "// from my.json\nexport type Prefix = number;\n", string(files[0].Content))

	_, err = Generate(v, TargetTypeDecl, &Options{TypeTemplate: "{{.Broken"})
	require.Error(t, err)
	assert.Equal(t, errors.EmitFailError, errors.CodeOf(err))
}
