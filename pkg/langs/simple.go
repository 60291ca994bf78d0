package langs

// JSONSchema re-emits the merged schema through quicktype's "schema" renderer.
type JSONSchema struct{}

func (JSONSchema) Name() string             { return "schema" }
func (JSONSchema) appendArgs(b *argBuilder) {}

// Crystal has no renderer options.
type Crystal struct{}

func (Crystal) Name() string             { return "crystal" }
func (Crystal) appendArgs(b *argBuilder) {}

// Smithy configures the "smithy4a" renderer.
type Smithy struct {
	Package string `json:"package,omitempty"`
}

func (Smithy) Name() string { return "smithy4a" }

func (o Smithy) appendArgs(b *argBuilder) {
	b.str("--package", o.Package)
}

// Elm configures the "elm" renderer.
type Elm struct {
	JustTypes bool      `json:"just-types,omitempty"`
	Module    string    `json:"module,omitempty"`
	ArrayType ArrayType `json:"array-type,omitempty"`
}

func DefaultElm() Elm {
	return Elm{ArrayType: ArrayTypeArray}
}

func (Elm) Name() string { return "elm" }

func (o Elm) appendArgs(b *argBuilder) {
	b.flag("--just-types", o.JustTypes)
	b.str("--module", o.Module)
	b.enum("--array-type", o.ArrayType, DefaultElm().ArrayType)
}

// Haskell configures the "haskell" renderer.
type Haskell struct {
	JustTypes bool      `json:"just-types,omitempty"`
	Module    string    `json:"module,omitempty"`
	ArrayType ArrayType `json:"array-type,omitempty"`
}

func DefaultHaskell() Haskell {
	return Haskell{ArrayType: ArrayTypeArray}
}

func (Haskell) Name() string { return "haskell" }

func (o Haskell) appendArgs(b *argBuilder) {
	b.flag("--just-types", o.JustTypes)
	b.str("--module", o.Module)
	b.enum("--array-type", o.ArrayType, DefaultHaskell().ArrayType)
}

// Ruby configures the "ruby" renderer.
type Ruby struct {
	JustTypes  bool       `json:"just-types,omitempty"`
	Strictness Strictness `json:"strictness,omitempty"`
	Namespace  string     `json:"namespace,omitempty"`
}

func DefaultRuby() Ruby {
	return Ruby{Strictness: StrictnessStrict}
}

func (Ruby) Name() string { return "ruby" }

func (o Ruby) appendArgs(b *argBuilder) {
	b.flag("--just-types", o.JustTypes)
	b.enum("--strictness", o.Strictness, DefaultRuby().Strictness)
	b.str("--namespace", o.Namespace)
}
