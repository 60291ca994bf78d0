package langs

// CSharp configures the "csharp" renderer.
type CSharp struct {
	Namespace         string        `json:"namespace,omitempty"`
	Framework         Framework     `json:"framework,omitempty"`
	Version           CSharpVersion `json:"csharp-version,omitempty"`
	Density           Density       `json:"density,omitempty"`
	ArrayType         ArrayType     `json:"array-type,omitempty"`
	NumberType        NumberType    `json:"number-type,omitempty"`
	AnyType           AnyType       `json:"any-type,omitempty"`
	VirtualProperties bool          `json:"virtual,omitempty"`
	Features          Features      `json:"features,omitempty"`
	BaseClass         BaseClass     `json:"base-class,omitempty"`
	CheckRequired     bool          `json:"check-required,omitempty"`
	KeepPropertyName  bool          `json:"keep-property-name,omitempty"`
}

func DefaultCSharp() CSharp {
	return CSharp{
		Framework:  FrameworkNewtonSoft,
		Version:    CSharp6,
		Density:    DensityNormal,
		ArrayType:  ArrayTypeArray,
		NumberType: NumberTypeDouble,
		AnyType:    AnyTypeObject,
		Features:   FeaturesComplete,
		BaseClass:  BaseClassObject,
	}
}

func (CSharp) Name() string { return "csharp" }

func (o CSharp) appendArgs(b *argBuilder) {
	def := DefaultCSharp()
	b.str("--namespace", o.Namespace)
	b.enum("--framework", o.Framework, def.Framework)
	b.enum("--csharp-version", o.Version, def.Version)
	b.enum("--density", o.Density, def.Density)
	b.enum("--array-type", o.ArrayType, def.ArrayType)
	b.enum("--number-type", o.NumberType, def.NumberType)
	b.enum("--any-type", o.AnyType, def.AnyType)
	b.flag("--virtual", o.VirtualProperties)
	b.enum("--features", o.Features, def.Features)
	b.enum("--base-class", o.BaseClass, def.BaseClass)
	b.flag("--check-required", o.CheckRequired)
	b.flag("--keep-property-name", o.KeepPropertyName)
}
