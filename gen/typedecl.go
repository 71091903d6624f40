package gen

import (
	"bytes"
	"text/template"

	"github.com/ss58-project/ss58gen/common/errors"
)

const TypeDeclFileName = "index.d.ts"

// The declaration describes the entry schema, not the data: its output is
// identical for any valid registry.
const defaultTypeTemplate = `// Generated by ss58gen from {{.Source}}.

/** One row of the SS58 registry. */
export interface RegistryEntry {
	/** Unique address-format prefix of the network. Stable once published. */
	prefix: number;
	/** Unique short identifier, used as the generated symbol name. */
	network: string;
	/** Human readable name of the network. */
	displayName: string;
	/** Token tickers, parallel to decimals. */
	symbols: string[];
	/** Decimal precision per ticker, parallel to symbols. */
	decimals: number[];
	/** Default key scheme; absent for reserved prefixes. */
	standardAccount?: "Sr25519" | "Ed25519" | "secp256k1" | "*25519";
	website?: string;
	isReserved?: boolean;
	isTestnet?: boolean;
}

export interface Registry {
	registry: RegistryEntry[];
}

declare const registry: Registry;
export default registry;
`

func generateTypeDecl(opts *Options) ([]File, error) {
	text := defaultTypeTemplate
	if opts != nil && opts.TypeTemplate != "" {
		text = opts.TypeTemplate
	}
	tmpl, err := template.New("typedecl").Parse(text)
	if err != nil {
		return nil, errors.EmitFailError.Wrapf(err, "fail to parse type-declaration template")
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, struct{ Source string }{Source: opts.source()}); err != nil {
		return nil, errors.EmitFailError.Wrapf(err, "fail to render type-declaration")
	}
	return []File{{Name: TypeDeclFileName, Content: buf.Bytes()}}, nil
}
