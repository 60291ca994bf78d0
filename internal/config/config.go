package config

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

// Project is the qtschema project file, qtschema.yml or qtschema.toml.
type Project struct {
	// BaseName names the top-level generated type.
	BaseName string `yaml:"base_name" toml:"base_name" json:"base_name"`
	// Schemas lists fragment files, relative to the project file. JSON and
	// YAML fragments are accepted.
	Schemas []string `yaml:"schemas" toml:"schemas" json:"schemas"`
	// TempPrefix overrides the temporary file name prefix.
	TempPrefix string `yaml:"temp_prefix,omitempty" toml:"temp_prefix" json:"temp_prefix,omitempty"`
	// Validate compiles the merged schema before running quicktype.
	Validate bool `yaml:"validate,omitempty" toml:"validate" json:"validate,omitempty"`
	// OverrideArgs replaces the language flags of every target.
	OverrideArgs []string `yaml:"override_args,omitempty" toml:"override_args" json:"override_args,omitempty"`
	Targets      []Target `yaml:"targets" toml:"targets" json:"targets"`
}

// Target is one language to generate.
type Target struct {
	Language string `yaml:"language" toml:"language" json:"language"`
	// Output is where the generated code is written; empty means stdout.
	Output string `yaml:"output,omitempty" toml:"output" json:"output,omitempty"`
	// Options are keyed by quicktype flag name without dashes, e.g. just-types.
	Options map[string]any `yaml:"options,omitempty" toml:"options" json:"options,omitempty"`
}

// Env holds settings that come from the environment rather than the project file.
type Env struct {
	Executable string `env:"EXECUTABLE" envDefault:"quicktype"`
	Fallback   string `env:"FALLBACK" envDefault:"npx"`
	TempDir    string `env:"TEMP_DIR" envDefault:""`
	TempPrefix string `env:"TEMP_PREFIX" envDefault:""`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	UUIDNames  bool   `env:"UUID_NAMES" envDefault:"false"`
}
