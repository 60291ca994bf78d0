package schema

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DraftURI is the $schema of every merged document.
const DraftURI = "http://json-schema.org/draft-07/schema#"

// Fragment is one pushed schema as it was received.
type Fragment struct {
	Title string
	Text  string
}

// Property is one synthetic root property pointing at a pushed fragment.
type Property struct {
	Key string // t<N>
	Ref string // #/definitions/<title>
}

// Accumulator merges schema fragments into a single draft-07 document whose
// root object has one property per pushed fragment.
//
// Fragments are append-only. Nested definitions are hoisted into the root
// without namespacing, so a name pushed later replaces an earlier one.
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	next        int
	definitions map[string]any
	properties  []Property
	fragments   []Fragment
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{definitions: make(map[string]any)}
}

// Push parses fragmentText and merges it into the document. It returns a
// *ParseError if the text is not a JSON object with a string "title"; the
// accumulator is left untouched in that case.
func (a *Accumulator) Push(fragmentText string) error {
	// Numbers stay json.Number so large integers survive re-serialization.
	dec := json.NewDecoder(strings.NewReader(fragmentText))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return &ParseError{Reason: "invalid JSON", Err: err}
	}
	if dec.More() {
		return &ParseError{Reason: "trailing data after fragment"}
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return &ParseError{Reason: "fragment is not a JSON object"}
	}
	title, ok := obj["title"].(string)
	if !ok {
		return &ParseError{Reason: `missing string "title"`}
	}

	if a.definitions == nil {
		a.definitions = make(map[string]any)
	}
	a.fragments = append(a.fragments, Fragment{Title: title, Text: fragmentText})
	a.definitions[title] = obj
	a.properties = append(a.properties, Property{
		Key: "t" + strconv.Itoa(a.next),
		Ref: "#/definitions/" + title,
	})
	if nested, ok := obj["definitions"].(map[string]any); ok {
		for name, def := range nested {
			a.definitions[name] = def
		}
	}
	a.next++
	return nil
}

// MustPush is Push for callers that treat a malformed fragment as fatal.
func (a *Accumulator) MustPush(fragmentText string) {
	if err := a.Push(fragmentText); err != nil {
		panic(err)
	}
}

// Len returns the number of fragments pushed so far.
func (a *Accumulator) Len() int {
	return a.next
}

// Definitions returns the merged definitions. The map is shared with the
// accumulator and must not be modified.
func (a *Accumulator) Definitions() map[string]any {
	return a.definitions
}

// Properties returns the synthetic root properties in push order.
func (a *Accumulator) Properties() []Property {
	out := make([]Property, len(a.properties))
	copy(out, a.properties)
	return out
}

// Fragments returns every pushed fragment in push order.
func (a *Accumulator) Fragments() []Fragment {
	out := make([]Fragment, len(a.fragments))
	copy(out, a.fragments)
	return out
}

// MarshalJSON writes the merged document with a stable key order: $schema,
// type, definitions sorted by name, then properties in push order.
func (a *Accumulator) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"$schema":`)
	writeString(&buf, DraftURI)
	buf.WriteString(`,"type":"object","definitions":{`)

	names := make([]string, 0, len(a.definitions))
	for name := range a.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(&buf, name)
		buf.WriteByte(':')
		data, err := json.Marshal(a.definitions[name])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal definition %q: %w", name, err)
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	if len(a.properties) > 0 {
		buf.WriteString(`,"properties":{`)
		for i, p := range a.properties {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(&buf, p.Key)
			buf.WriteString(`:{"$ref":`)
			writeString(&buf, p.Ref)
			buf.WriteByte('}')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Bytes returns the serialized document.
func (a *Accumulator) Bytes() ([]byte, error) {
	return a.MarshalJSON()
}

// Indent returns the document pretty-printed with two-space indentation.
func (a *Accumulator) Indent() ([]byte, error) {
	data, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent schema: %w", err)
	}
	return out.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) {
	data, _ := json.Marshal(s)
	buf.Write(data)
}
