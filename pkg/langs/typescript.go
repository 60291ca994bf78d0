package langs

// TypeScript configures the "typescript" renderer.
type TypeScript struct {
	JustTypes                               bool         `json:"just-types,omitempty"`
	NicePropertyNames                       bool         `json:"nice-property-names,omitempty"`
	ExplicitUnions                          bool         `json:"explicit-unions,omitempty"`
	RuntimeTypecheckIgnoreUnknownProperties bool         `json:"runtime-typecheck-ignore-unknown-properties,omitempty"`
	AcronymStyle                            AcronymStyle `json:"acronym-style,omitempty"`
	Converters                              Converters   `json:"converters,omitempty"`
	RawType                                 RawType      `json:"raw-type,omitempty"`
	PreferUnions                            bool         `json:"prefer-unions,omitempty"`
	PreferTypes                             bool         `json:"prefer-types,omitempty"`
	PreferConstValues                       bool         `json:"prefer-const-values,omitempty"`
	Readonly                                bool         `json:"readonly,omitempty"`
}

// DefaultTypeScript returns quicktype's TypeScript defaults. Each call returns
// a fresh value, so callers may modify it freely.
func DefaultTypeScript() TypeScript {
	return TypeScript{
		AcronymStyle: AcronymPascal,
		Converters:   ConvertersTopLevel,
		RawType:      RawTypeJSON,
	}
}

func (TypeScript) Name() string { return "typescript" }

func (o TypeScript) appendArgs(b *argBuilder) {
	def := DefaultTypeScript()
	b.flag("--just-types", o.JustTypes)
	b.flag("--nice-property-names", o.NicePropertyNames)
	b.flag("--explicit-unions", o.ExplicitUnions)
	b.flag("--runtime-typecheck-ignore-unknown-properties", o.RuntimeTypecheckIgnoreUnknownProperties)
	b.enum("--acronym-style", o.AcronymStyle, def.AcronymStyle)
	b.enum("--converters", o.Converters, def.Converters)
	b.enum("--raw-type", o.RawType, def.RawType)
	b.flag("--prefer-unions", o.PreferUnions)
	b.flag("--prefer-types", o.PreferTypes)
	b.flag("--prefer-const-values", o.PreferConstValues)
	b.flag("--readonly", o.Readonly)
}
