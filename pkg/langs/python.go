package langs

// Python configures the "python" renderer. The version selector has no
// meaningful default and is always passed.
type Python struct {
	Version           PythonVersion `json:"python-version,omitempty"`
	JustTypes         bool          `json:"just-types,omitempty"`
	NicePropertyNames bool          `json:"nice-property-names,omitempty"`
	PydanticBaseModel bool          `json:"pydantic-base-model,omitempty"`
}

func DefaultPython() Python {
	return Python{Version: Python36}
}

func (Python) Name() string { return "python" }

func (o Python) appendArgs(b *argBuilder) {
	b.always("--python-version", o.Version)
	b.flag("--just-types", o.JustTypes)
	b.flag("--nice-property-names", o.NicePropertyNames)
	b.flag("--pydantic-base-model", o.PydanticBaseModel)
}
