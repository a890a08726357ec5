package fixture

import "serialization-bridge/host/scene"

type third = ThirdGenericSerializableComponent[string]

func thirds() []*third {
	return []*third{
		{Value: "Something else to be tested", AnotherValue: 999124},
		{Value: "Something els", AnotherValue: 2254223},
		{Value: "Sometadasdasdsadsadsad\\", AnotherValue: 241211251},
		{Value: "Haha you got joked els{\\}", AnotherValue: 1111231},
	}
}

// NewTestComponent returns a TestComponent holding the sample graph. It is
// not attached to any object.
func NewTestComponent() *TestComponent {
	list := thirds()

	return &TestComponent{
		Label: "test",
		Component: &SerializableComponent{
			Value:   2,
			Str:     "Hello!",
			SubComp: &SubSerializableComponent{Value: 40, Str: "WELCOME TO"},
			GenComp: &GenericSerializableComponent[*SubSerializableComponent]{
				Value:        &SubSerializableComponent{Value: 1240891, Str: "djiandisoadsa"},
				AnotherValue: 99,
			},
			SecondGenComp: &GenericSerializableComponent[string]{
				Value:        "Testing string",
				AnotherValue: 99,
				Component: &SecondGenericSerializableComponent[bool]{
					Value:          true,
					AnotherValue:   5322346,
					TestArray:      []string{"Sewe", "afdassa", "iiiio", "128312908"},
					Component:      [4]*third(thirds()),
					ListComponents: list,
					DictoComponents: map[string]*third{
						"Keying": {Value: "Silly joke!", AnotherValue: -99},
					},
				},
			},
		},
		StringComponent: &GenericSerializableComponent[string]{
			Value:        "Hello guys, welcome to my video",
			AnotherValue: 8194,
		},
	}
}

// Scene is a small seeded hierarchy:
//
//	Root            TestComponent, LinkComponent, ScoreBoard
//	├── Left        TestComponent
//	│   └── Leaf
//	└── Right       LinkComponent
type Scene struct {
	World   *scene.World
	Root    *scene.Object
	Left    *scene.Object
	Leaf    *scene.Object
	Right   *scene.Object
	Outside *scene.Object
}

// NewScene builds the sample hierarchy in a new world.
func NewScene() *Scene {
	w := scene.NewWorld()

	s := &Scene{World: w, Root: w.NewObject("Root"), Outside: w.NewObject("Outside")}
	s.Left = s.Root.AddChild("Left")
	s.Leaf = s.Left.AddChild("Leaf")
	s.Right = s.Root.AddChild("Right")

	rootTest := scene.AddComponent(s.Root, NewTestComponent())
	leftTest := scene.AddComponent(s.Left, NewTestComponent())
	leftTest.Label = "left"

	curve := scene.NewCurve(scene.Keyframe{Time: 0, Value: 0}, scene.Keyframe{Time: 1, Value: 10})
	curve.SetWrapMode(scene.WrapPingPong)

	scene.AddComponent(s.Root, &LinkComponent{Links: &Links{
		Target:   s.Leaf,
		Sibling:  leftTest,
		Outside:  s.Outside,
		Material: w.NewMaterial("Stone", scene.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}),
		Texture:  w.NewTexture("Lightmap", 4, 4, false),
		Curve:    curve,
		Gradient: &scene.Gradient{
			Colors: []scene.Color{{R: 1, A: 1}, {B: 1, A: 1}},
			Stops:  []float32{0, 1},
		},
	}})

	scene.AddComponent(s.Root, &ScoreBoard{Scores: map[string]int{"ann": 3, "bob": 5}})

	scene.AddComponent(s.Right, &LinkComponent{Links: &Links{
		Target:  s.Root,
		Sibling: rootTest,
	}})

	return s
}
