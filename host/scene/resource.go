package scene

import "serialization-bridge/host"

// Material is a shared resource that knows how to copy itself.
type Material struct {
	world *World
	id    string

	Name      string
	Color     Color
	Shininess float64
}

// NewMaterial creates a material registered in w.
func (w *World) NewMaterial(name string, color Color) *Material {
	m := &Material{world: w, id: w.newID(), Name: name, Color: color}
	w.register(m)

	return m
}

func (m *Material) Identity() string { return m.id }

// CloneObject implements host.Cloner.
func (m *Material) CloneObject() host.Object {
	clone := m.world.NewMaterial(m.Name+" (Clone)", m.Color)
	clone.Shininess = m.Shininess

	return clone
}

// Texture is pixel data that may live only on the device.
type Texture struct {
	id       string
	readable bool

	Name          string
	Width, Height int
	Pixels        []Color
}

// NewTexture creates a texture registered in w. Unreadable textures are
// always shared between copies.
func (w *World) NewTexture(name string, width, height int, readable bool) *Texture {
	t := &Texture{id: w.newID(), readable: readable, Name: name, Width: width, Height: height}
	if readable {
		t.Pixels = make([]Color, width*height)
	}

	w.register(t)

	return t
}

func (t *Texture) Identity() string { return t.id }

// IsReadable implements host.Readable.
func (t *Texture) IsReadable() bool { return t.readable }
