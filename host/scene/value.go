package scene

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Keyframe is a point of a Curve.
type Keyframe struct {
	Time  float64
	Value float64
}

type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapLoop
	WrapPingPong
)

// Curve is a host value object: reference-typed, but copied by value when
// bridged. Its state is only reachable through accessor pairs.
type Curve struct {
	keys []Keyframe
	wrap WrapMode
}

// NewCurve creates a curve from keys.
func NewCurve(keys ...Keyframe) *Curve {
	return &Curve{keys: keys}
}

func (c *Curve) Keys() []Keyframe { return c.keys }

func (c *Curve) SetKeys(keys []Keyframe) { c.keys = keys }

func (c *Curve) WrapMode() WrapMode { return c.wrap }

func (c *Curve) SetWrapMode(mode WrapMode) { c.wrap = mode }

// Evaluate returns the linearly interpolated value at t.
func (c *Curve) Evaluate(t float64) float64 {
	switch {
	case len(c.keys) == 0:
		return 0
	case t <= c.keys[0].Time:
		return c.keys[0].Value
	}

	for i := 1; i < len(c.keys); i++ {
		a, b := c.keys[i-1], c.keys[i]
		if t <= b.Time {
			if b.Time == a.Time {
				return b.Value
			}

			return a.Value + (b.Value-a.Value)*(t-a.Time)/(b.Time-a.Time)
		}
	}

	return c.keys[len(c.keys)-1].Value
}

// Gradient is a host value object with exported state.
type Gradient struct {
	Colors []Color
	Stops  []float32
}
