package name

import (
	"fmt"
	"regexp"
	"strings"
)

// componentRegex matches a single component of a dotted name.
var componentRegex = regexp.MustCompile(`^[a-zA-Z0-9_'?!-]+$`)

// isValidComponent checks for undesirable but technically matching components.
func isValidComponent(c string) bool {
	return c != "-"
}

// Parse creates a Name by parsing its canonical dotted representation.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, fmt.Errorf("name cannot be empty")
	}
	if raw == anonymousStr {
		return Name{}, nil
	}

	parts := strings.Split(raw, ".")
	for _, c := range parts {
		if c == "" {
			return Name{}, fmt.Errorf("name %q contains empty component", raw)
		}
		if !componentRegex.MatchString(c) || !isValidComponent(c) {
			return Name{}, fmt.Errorf("invalid name component: %q", c)
		}
	}
	return Name{parts: parts}, nil
}

// Must is like Parse but panics on invalid input. Intended for literals.
func Must(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return n
}
