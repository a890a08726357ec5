package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"serialization-bridge/internal/analyze"
)

// FieldPath is the ordered list of fields from a root value to a target.
type FieldPath []analyze.Field

// Names returns the field names along the path.
func (p FieldPath) Names() []string {
	names := make([]string, len(p))
	for i, f := range p {
		names[i] = f.Name
	}

	return names
}

// String returns the slash-joined field names.
func (p FieldPath) String() string {
	return analyze.JoinPath(p.Names()...)
}

// Leaf is the last field of the path.
func (p FieldPath) Leaf() analyze.Field {
	return p[len(p)-1]
}

// Equal compares paths by content.
func (p FieldPath) Equal(other FieldPath) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i].Name != other[i].Name || p[i].Index != other[i].Index || p[i].Type != other[i].Type {
			return false
		}
	}

	return true
}

func (p FieldPath) with(f analyze.Field) FieldPath {
	next := make(FieldPath, len(p), len(p)+1)
	copy(next, p)

	return append(next, f)
}

// ParsePath splits a persisted slash-joined path into field names.
func ParsePath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	names := strings.Split(path, analyze.PathSeparator)
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !isValidIdent(name) {
			return nil, fmt.Errorf("invalid path %q: invalid identifier %q", path, name)
		}
	}

	return names, nil
}

func isValidIdent(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return s != ""
}
