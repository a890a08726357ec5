package fixture

import (
	"slices"

	"serialization-bridge/host/scene"
)

// TestComponent carries a graph of bridged data the host cannot copy.
type TestComponent struct {
	scene.Behaviour

	Label           string
	Component       *SerializableComponent
	StringComponent *GenericSerializableComponent[string]
}

type SerializableComponent struct {
	Value         int
	Str           string
	SubComp       *SubSerializableComponent
	GenComp       *GenericSerializableComponent[*SubSerializableComponent]
	SecondGenComp *GenericSerializableComponent[string]
}

func (SerializableComponent) BridgeSerializable() {}

type SubSerializableComponent struct {
	Value int
	Str   string
}

func (SubSerializableComponent) BridgeSerializable() {}

type GenericSerializableComponent[T any] struct {
	Value        T
	AnotherValue int
	Component    *SecondGenericSerializableComponent[bool]
}

func (GenericSerializableComponent[T]) BridgeSerializable() {}

type SecondGenericSerializableComponent[T any] struct {
	Value           T
	AnotherValue    int
	TestArray       []string
	Component       [4]*ThirdGenericSerializableComponent[string]
	ListComponents  []*ThirdGenericSerializableComponent[string]
	DictoComponents map[string]*ThirdGenericSerializableComponent[string]
}

func (SecondGenericSerializableComponent[T]) BridgeSerializable() {}

type ThirdGenericSerializableComponent[T any] struct {
	Value        T
	AnotherValue int
}

func (ThirdGenericSerializableComponent[T]) BridgeSerializable() {}

// LinkComponent points at other host objects. References into a
// duplicated subtree follow the copy.
type LinkComponent struct {
	scene.Behaviour

	Links *Links
}

type Links struct {
	Target   *scene.Object
	Sibling  *TestComponent
	Outside  *scene.Object
	Material *scene.Material
	Texture  *scene.Texture
	Curve    *scene.Curve
	Gradient *scene.Gradient
}

func (Links) BridgeSerializable() {}

// ScoreBoard keeps its scores in a map and persists them as a table.
type ScoreBoard struct {
	scene.Behaviour

	Scores map[string]int `bridge:"-"`
	Table  *ScoreTable
}

type ScoreTable struct {
	Names  []string
	Points []int
}

func (ScoreTable) BridgeSerializable() {}

func (s *ScoreBoard) OnBeforeSerialize() {
	names := make([]string, 0, len(s.Scores))
	for name := range s.Scores {
		names = append(names, name)
	}

	slices.Sort(names)

	table := &ScoreTable{Names: names, Points: make([]int, len(names))}
	for i, name := range names {
		table.Points[i] = s.Scores[name]
	}

	s.Table = table
}

func (s *ScoreBoard) OnAfterDeserialize() {
	s.Scores = make(map[string]int)
	if s.Table == nil {
		return
	}

	for i, name := range s.Table.Names {
		if i < len(s.Table.Points) {
			s.Scores[name] = s.Table.Points[i]
		}
	}
}
