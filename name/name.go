package name

import (
	"slices"
	"strings"
)

// anonymousStr is the rendering of a name with no components.
const anonymousStr = "[anonymous]"

// Name is a hierarchical identifier. The zero value is the anonymous name.
// Names are values: operations never modify the receiver.
type Name struct {
	parts []string
}

// Anonymous returns the name with no components.
func Anonymous() Name {
	return Name{}
}

// New builds a name from its components. Empty components are kept as-is;
// use Parse to validate user input.
func New(components ...string) Name {
	if len(components) == 0 {
		return Name{}
	}
	return Name{parts: slices.Clone(components)}
}

// IsAnonymous reports whether the name has no components.
func (n Name) IsAnonymous() bool {
	return len(n.parts) == 0
}

// Len returns the number of components.
func (n Name) Len() int {
	return len(n.parts)
}

// Components returns a copy of the name's components.
func (n Name) Components() []string {
	return slices.Clone(n.parts)
}

// Append returns a new name with the given components added at the end.
func (n Name) Append(components ...string) Name {
	out := make([]string, 0, len(n.parts)+len(components))
	out = append(out, n.parts...)
	out = append(out, components...)
	return Name{parts: out}
}

// Prefix returns the name without its last component.
func (n Name) Prefix() Name {
	if len(n.parts) <= 1 {
		return Name{}
	}
	return Name{parts: n.parts[:len(n.parts)-1]}
}

// Last returns the final component, or "" for the anonymous name.
func (n Name) Last() string {
	if len(n.parts) == 0 {
		return ""
	}
	return n.parts[len(n.parts)-1]
}

// String serializes the name into its canonical dotted representation.
func (n Name) String() string {
	if len(n.parts) == 0 {
		return anonymousStr
	}
	return strings.Join(n.parts, ".")
}

// Equal checks component-wise equality.
func (n Name) Equal(other Name) bool {
	return slices.Equal(n.parts, other.parts)
}
