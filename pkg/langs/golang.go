package langs

// Go configures the "go" renderer.
type Go struct {
	JustTypes           bool   `json:"just-types,omitempty"`
	JustTypesAndPackage bool   `json:"just-types-and-package,omitempty"`
	Package             string `json:"package,omitempty"`
	MultiFileOutput     bool   `json:"multi-file-output,omitempty"`
	FieldTags           string `json:"field-tags,omitempty"`
	OmitEmpty           bool   `json:"omit-empty,omitempty"`
}

func DefaultGo() Go {
	return Go{}
}

func (Go) Name() string { return "go" }

func (o Go) appendArgs(b *argBuilder) {
	b.flag("--just-types", o.JustTypes)
	b.flag("--just-types-and-package", o.JustTypesAndPackage)
	b.str("--package", o.Package)
	b.flag("--multi-file-output", o.MultiFileOutput)
	b.str("--field-tags", o.FieldTags)
	b.flag("--omit-empty", o.OmitEmpty)
}
