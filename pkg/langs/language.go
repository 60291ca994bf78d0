package langs

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// Language is a quicktype target together with its options. The set of
// implementations is closed; use one of the option structs in this package.
//
// The zero value of every option struct is that language's default
// configuration, so TypeScript{} and DefaultTypeScript() are the same selection.
type Language interface {
	// Name is the identifier passed to quicktype's -l flag. It is also embedded
	// in temporary output file names.
	Name() string

	appendArgs(b *argBuilder)
}

// BuildArgs translates a language selection into quicktype's command-line
// flags: "-l <name>" followed by every option that differs from the default,
// in the order fixed for that language. It never fails and is deterministic.
func BuildArgs(lang Language) []string {
	b := newArgBuilder(lang.Name())
	lang.appendArgs(b)
	return b.build()
}

type entry struct {
	description string
	decode      func(data []byte) (Language, error)
}

var registry = map[string]entry{
	"typescript": {"TypeScript interfaces and converters", decodeInto[TypeScript]},
	"schema":     {"JSON Schema", decodeInto[JSONSchema]},
	"csharp":     {"C# classes", decodeInto[CSharp]},
	"crystal":    {"Crystal classes", decodeInto[Crystal]},
	"dart":       {"Dart classes", decodeInto[Dart]},
	"elm":        {"Elm types and decoders", decodeInto[Elm]},
	"go":         {"Go structs", decodeInto[Go]},
	"haskell":    {"Haskell data types", decodeInto[Haskell]},
	"python":     {"Python classes", decodeInto[Python]},
	"ruby":       {"Ruby classes", decodeInto[Ruby]},
	"rust":       {"Rust structs with serde", decodeInto[Rust]},
	"smithy4a":   {"Smithy shapes", decodeInto[Smithy]},
	"swift":      {"Swift types with Codable", decodeInto[Swift]},
}

var aliases = map[string]string{
	"ts":     "typescript",
	"cs":     "csharp",
	"cr":     "crystal",
	"golang": "go",
	"py":     "python",
	"rs":     "rust",
	"smithy": "smithy4a",
}

// Names returns the canonical language names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of the named language.
func Describe(name string) string {
	return registry[canonical(name)].description
}

// Lookup returns the default selection for a language name or alias.
func Lookup(name string) (Language, error) {
	return Decode(name, nil)
}

// Decode builds a selection from configuration data. Option keys are the
// quicktype flag names without the leading dashes, e.g. "just-types".
// Unknown keys and unknown enum values are rejected.
func Decode(name string, options map[string]any) (Language, error) {
	e, ok := registry[canonical(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	if len(options) == 0 {
		return e.decode(nil)
	}
	data, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options for %s: %w", name, err)
	}
	lang, err := e.decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid options for %s: %w", name, err)
	}
	return lang, nil
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

func decodeInto[T Language](data []byte) (Language, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
