package langs

// Rust configures the "rust" renderer.
type Rust struct {
	Density             Density    `json:"density,omitempty"`
	Visibility          Visibility `json:"visibility,omitempty"`
	DeriveDebug         bool       `json:"derive-debug,omitempty"`
	DeriveClone         bool       `json:"derive-clone,omitempty"`
	DerivePartialEq     bool       `json:"derive-partial-eq,omitempty"`
	SkipSerializingNone bool       `json:"skip-serializing-none,omitempty"`
}

func DefaultRust() Rust {
	return Rust{
		Density:    DensityNormal,
		Visibility: VisibilityPrivate,
	}
}

func (Rust) Name() string { return "rust" }

func (o Rust) appendArgs(b *argBuilder) {
	def := DefaultRust()
	b.enum("--density", o.Density, def.Density)
	b.enum("--visibility", o.Visibility, def.Visibility)
	b.flag("--derive-debug", o.DeriveDebug)
	b.flag("--derive-clone", o.DeriveClone)
	b.flag("--derive-partial-eq", o.DerivePartialEq)
	b.flag("--skip-serializing-none", o.SkipSerializingNone)
}
