package langs

import "fmt"

// argBuilder accumulates quicktype flags for one language in emission order.
type argBuilder struct {
	args []string
}

func newArgBuilder(name string) *argBuilder {
	return &argBuilder{args: []string{"-l", name}}
}

// flag appends name when on is set.
func (b *argBuilder) flag(name string, on bool) {
	if on {
		b.args = append(b.args, name)
	}
}

// toggle always emits exactly one of the two flags.
func (b *argBuilder) toggle(on, off string, value bool) {
	if value {
		b.args = append(b.args, on)
	} else {
		b.args = append(b.args, off)
	}
}

// str appends name and value unless value is empty.
func (b *argBuilder) str(name, value string) {
	if value != "" {
		b.args = append(b.args, name, value)
	}
}

// enum appends name and value only when value differs from def.
func (b *argBuilder) enum(name string, value, def fmt.Stringer) {
	if value != def {
		b.args = append(b.args, name, value.String())
	}
}

// always appends name and value unconditionally, for selectors without a default.
func (b *argBuilder) always(name string, value fmt.Stringer) {
	b.args = append(b.args, name, value.String())
}

func (b *argBuilder) build() []string {
	return b.args
}
