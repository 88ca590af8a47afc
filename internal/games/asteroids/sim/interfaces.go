package sim

// Controls is polled once per frame for the player's intent.
type Controls interface {
	Left() bool
	Right() bool
	Up() bool
	Down() bool
	Fire() bool
	RapidFire() bool
	Special() bool
	FramesPerSecond() int
}

// Surface receives the draw calls for one frame.
type Surface interface {
	Dot(p Point, c Color)
	Circle(center Point, radius float64, c Color)
	Ship(p Point, rotation float64, c Color, thrust bool)
	Rock(kind RockKind, p Point, rotation int, c Color)
	Number(topLeft Point, n int, c Color)
	Text(topLeft Point, s string, c Color)
}

// ControlState is a plain Controls value, filled in by front ends that
// sample input themselves and by tests.
type ControlState struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Brake       bool
	Shoot       bool
	Rapid       bool
	Shockwave   bool
	FPS         int
}

func (c ControlState) Left() bool { return c.RotateLeft }
func (c ControlState) Right() bool { return c.RotateRight }
func (c ControlState) Up() bool { return c.Thrust }
func (c ControlState) Down() bool { return c.Brake }
func (c ControlState) Fire() bool { return c.Shoot }
func (c ControlState) RapidFire() bool { return c.Rapid }
func (c ControlState) Special() bool { return c.Shockwave }
func (c ControlState) FramesPerSecond() int { return c.FPS }
