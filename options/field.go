package options

import (
	"reflect"
	"strings"
)

// TagKey is the struct tag consulted for per-field bridging options.
const TagKey = "bridge"

// AutoSerializable marks a type whose values the bridge carries across
// duplication and persistence. Value or pointer receivers are both accepted.
type AutoSerializable interface {
	BridgeSerializable()
}

// SerializationCallbacks is implemented by components that need to prepare
// their data before a save and finish unpacking it after a restore.
type SerializationCallbacks interface {
	OnBeforeSerialize()
	OnAfterDeserialize()
}

type FieldFlag int

const (
	FlagReference     FieldFlag = 1 << iota // keep the original reference instead of copying
	FlagAllowNesting                        // allow slices of collections to be populated
	FlagSkip                                // never bridged, never encoded

	FlagAll  FieldFlag = (1 << iota) - 1 // all flags combined
	FlagNone FieldFlag = 0               // plain field
)

// Has reports whether every bit of other is set in f.
func (f FieldFlag) Has(other FieldFlag) bool {
	return f&other == other
}

func (f FieldFlag) String() string {
	if f == FlagNone {
		return "none"
	}

	var parts []string
	if f.Has(FlagReference) {
		parts = append(parts, "ref")
	}

	if f.Has(FlagAllowNesting) {
		parts = append(parts, "nest")
	}

	if f.Has(FlagSkip) {
		parts = append(parts, "-")
	}

	return strings.Join(parts, ",")
}

// ParseTag reads the `bridge:"..."` tag. Unknown options are ignored.
//
//	Items []Item `bridge:"ref"`
//	Grid  [][]int `bridge:"nest"`
//	Cache map[string]any `bridge:"-"`
func ParseTag(tag reflect.StructTag) FieldFlag {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return FlagNone
	}

	var flags FieldFlag

	for part := range strings.SplitSeq(raw, ",") {
		switch strings.TrimSpace(part) {
		case "ref":
			flags |= FlagReference
		case "nest":
			flags |= FlagAllowNesting
		case "-":
			flags |= FlagSkip
		}
	}

	return flags
}
