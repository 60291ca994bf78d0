package langs

// Swift configures the "swift" renderer.
type Swift struct {
	JustTypes         bool          `json:"just-types,omitempty"`
	StructOrClass     StructOrClass `json:"struct-or-class,omitempty"`
	Density           SwiftDensity  `json:"density,omitempty"`
	AccessLevel       AccessLevel   `json:"access-level,omitempty"`
	Protocol          Protocol      `json:"protocol,omitempty"`
	AcronymStyle      AcronymStyle  `json:"acronym-style,omitempty"`
	TypePrefix        string        `json:"type-prefix,omitempty"`
	Sendable          bool          `json:"sendable,omitempty"`
	Swift5Support     bool          `json:"swift-5-support,omitempty"`
	ObjectiveCSupport bool          `json:"objective-c-support,omitempty"`
	MutableProperties bool          `json:"mutable-properties,omitempty"`
}

func DefaultSwift() Swift {
	return Swift{
		StructOrClass: Struct,
		Density:       SwiftDensityDense,
		AccessLevel:   AccessInternal,
		Protocol:      ProtocolNone,
		AcronymStyle:  AcronymPascal,
	}
}

func (Swift) Name() string { return "swift" }

func (o Swift) appendArgs(b *argBuilder) {
	def := DefaultSwift()
	b.flag("--just-types", o.JustTypes)
	b.enum("--struct-or-class", o.StructOrClass, def.StructOrClass)
	b.enum("--density", o.Density, def.Density)
	b.enum("--access-level", o.AccessLevel, def.AccessLevel)
	b.enum("--protocol", o.Protocol, def.Protocol)
	b.enum("--acronym-style", o.AcronymStyle, def.AcronymStyle)
	b.str("--type-prefix", o.TypePrefix)
	b.flag("--sendable", o.Sendable)
	b.flag("--swift-5-support", o.Swift5Support)
	b.flag("--objective-c-support", o.ObjectiveCSupport)
	b.flag("--mutable-properties", o.MutableProperties)
}
