package langs

// Dart configures the "dart" renderer.
//
// UseFreezed is the one option with distinct on and off flags; exactly one of
// --use-freezed or --no-use-freezed is always emitted.
type Dart struct {
	JustTypes         bool   `json:"just-types,omitempty"`
	CodersInClass     bool   `json:"coders-in-class,omitempty"`
	FromMap           bool   `json:"from-map,omitempty"`
	RequiredProps     bool   `json:"required-props,omitempty"`
	FinalProps        bool   `json:"final-props,omitempty"`
	CopyWith          bool   `json:"copy-with,omitempty"`
	UseFreezed        bool   `json:"use-freezed,omitempty"`
	UseHive           bool   `json:"use-hive,omitempty"`
	UseJSONAnnotation bool   `json:"use-json-annotation,omitempty"`
	PartName          string `json:"part-name,omitempty"`
}

func DefaultDart() Dart {
	return Dart{}
}

func (Dart) Name() string { return "dart" }

func (o Dart) appendArgs(b *argBuilder) {
	b.flag("--just-types", o.JustTypes)
	b.flag("--coders-in-class", o.CodersInClass)
	b.flag("--from-map", o.FromMap)
	b.flag("--required-props", o.RequiredProps)
	b.flag("--final-props", o.FinalProps)
	b.flag("--copy-with", o.CopyWith)
	b.toggle("--use-freezed", "--no-use-freezed", o.UseFreezed)
	b.flag("--use-hive", o.UseHive)
	b.flag("--use-json-annotation", o.UseJSONAnnotation)
	b.str("--part-name", o.PartName)
}
