package selector

import (
	"fmt"
	"regexp"
	"strings"
)

// partRegex is used to validate a single part of a selector path.
var partRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidPartName checks for undesirable but technically matching names.
func isValidPartName(name string) bool {
	return name != "-"
}

// Parse creates a Selector by parsing its canonical dotted representation.
func Parse(raw string) (Selector, error) {
	if raw == "" {
		return Selector{}, fmt.Errorf("selector cannot be empty")
	}

	var sel Selector
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return Selector{}, fmt.Errorf("selector path contains empty part")
		}
		if !partRegex.MatchString(part) {
			return Selector{}, fmt.Errorf("invalid selector part: %q", part)
		}
		if !isValidPartName(part) {
			return Selector{}, fmt.Errorf("invalid selector part name: %q", part)
		}
		sel.Parts = append(sel.Parts, part)
	}

	return sel, nil
}
