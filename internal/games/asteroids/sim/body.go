package sim

// Body is the motion and lifecycle state shared by every entity.
type Body struct {
	Pos    Point
	Vel    Velocity
	Radius int

	alive  bool
	frames int
}

func newBody(pos Point, vel Velocity, radius int) Body {
	return Body{Pos: pos, Vel: vel, Radius: radius, alive: true}
}

// Advance ages the body by one frame and moves it by its velocity.
// Dead bodies do not move or age.
func (b *Body) Advance() {
	if !b.alive {
		return
	}
	b.frames++
	b.Pos.X += b.Vel.Dx()
	b.Pos.Y += b.Vel.Dy()
}

// Kill marks the body dead. It is removed on the next reap pass.
func (b *Body) Kill() {
	b.alive = false
}

// Alive reports whether the body still takes part in the simulation.
func (b *Body) Alive() bool {
	return b.alive
}

// FramesAlive returns the number of frames the body has advanced.
func (b *Body) FramesAlive() int {
	return b.frames
}

// Wrap moves a body that is about to leave the [min, max] envelope to the
// opposite edge. Crossing an edge on one axis also mirrors the other axis.
func Wrap(b *Body, min, max Point) {
	dx, dy := b.Vel.Dx(), b.Vel.Dy()

	if b.Pos.X+dx > max.X {
		b.Pos.X = min.X
		b.Pos.Y = -b.Pos.Y
	} else if b.Pos.X+dx < min.X {
		b.Pos.X = max.X
		b.Pos.Y = -b.Pos.Y
	}

	if b.Pos.Y+dy > max.Y {
		b.Pos.Y = min.Y
		b.Pos.X = -b.Pos.X
	} else if b.Pos.Y+dy < min.Y {
		b.Pos.Y = max.Y
		b.Pos.X = -b.Pos.X
	}
}
