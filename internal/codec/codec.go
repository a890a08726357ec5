package codec

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/segmentio/encoding/json"

	"serialization-bridge/host"
	"serialization-bridge/internal/analyze"
	"serialization-bridge/primitive"
)

const (
	hashKey  = "$hash"
	valueKey = "$value"
)

var (
	// ErrNotDecodable is returned when a decode target is not a non-nil pointer.
	ErrNotDecodable = errors.New("target is not decodable")
	// ErrTypeMismatch is returned when a record does not fit the target type.
	ErrTypeMismatch = errors.New("record does not match target type")
	// ErrUnsupportedKey is returned for map keys that have no text form.
	ErrUnsupportedKey = errors.New("unsupported map key")
	// ErrCyclicValue is returned when a value refers back to itself.
	ErrCyclicValue = errors.New("value refers to itself")
)

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Codec encodes one value to a flat record and decodes a record into an
// existing instance, overwriting only what the record contains.
type Codec interface {
	Encode(v any) (string, error)
	Decode(text string, target any) error
}

// JSON is the default Codec.
type JSON struct {
	resolver  host.Resolver
	caps      *analyze.Capabilities
	inspector *analyze.Inspector
}

// NewJSON creates a JSON codec. resolver turns persisted identities back
// into live host objects; with a nil resolver they decode as nil.
func NewJSON(resolver host.Resolver, caps *analyze.Capabilities, inspector *analyze.Inspector) *JSON {
	return &JSON{resolver: resolver, caps: caps, inspector: inspector}
}

// Encode writes v as one record. A nil v encodes as the empty string.
func (c *JSON) Encode(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return "", nil
	}

	tree, err := c.newEncoder().toTree(rv)
	if err != nil {
		return "", err
	}

	if !c.isObjectRecord(rv.Type()) {
		tree = map[string]any{valueKey: tree}
	}

	data, err := json.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	return string(data), nil
}

// Decode applies the record in text to target, a non-nil pointer. Empty
// text leaves target untouched.
func (c *JSON) Decode(text string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T", ErrNotDecodable, target)
	}

	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tree any

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	if err := dec.Decode(&tree); err != nil {
		return fmt.Errorf("failed to parse record: %w", err)
	}

	dst := rv.Elem()
	if !c.isObjectRecord(dst.Type()) {
		m, ok := tree.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: expected a wrapped value", ErrTypeMismatch)
		}

		tree = m[valueKey]
	}

	return c.fromTree(tree, dst)
}

// isObjectRecord reports whether values of t are written as a JSON object
// without the $value wrapper.
func (c *JSON) isObjectRecord(t reflect.Type) bool {
	if c.caps.IsHostManaged(t) {
		return true
	}

	base := analyze.Deref(t)

	return base.Kind() == reflect.Struct && !primitive.IsLeaf(base) && !isText(base)
}

func isText(t reflect.Type) bool {
	return t.Implements(textMarshalerType) && reflect.PointerTo(t).Implements(textUnmarshalerType)
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
