package sim

// RockKind tags the rock family: the three asteroid tiers and the two
// decorative star kinds, which share the same shape but never score.
type RockKind int

const (
	RockLarge RockKind = iota
	RockMedium
	RockSmall
	ShootingStar
	BackgroundStar
)

// String returns the kind name used in logs and snapshots.
func (k RockKind) String() string {
	if k < 0 || int(k) >= len(rockClasses) {
		return "unknown"
	}
	return rockClasses[k].name
}

// fragment is a child spawned when a rock is destroyed. The child starts
// at the parent's position with the parent's velocity plus (ddx, ddy).
type fragment struct {
	kind     RockKind
	ddx, ddy float64
}

// rockClass holds everything that differs between rock kinds.
type rockClass struct {
	name      string
	radius    int
	spin      int
	score     int
	color     int
	decor     bool
	fragments []fragment
}

var rockClasses = [...]rockClass{
	RockLarge: {
		name: "large", radius: 16, spin: 2, score: 1, color: Yellow,
		fragments: []fragment{
			{kind: RockMedium, ddx: 0, ddy: 1},
			{kind: RockMedium, ddx: 0, ddy: -1},
			{kind: RockSmall, ddx: 2, ddy: 0},
		},
	},
	RockMedium: {
		name: "medium", radius: 8, spin: 5, score: 1, color: Orange,
		fragments: []fragment{
			{kind: RockSmall, ddx: 3, ddy: 0},
			{kind: RockSmall, ddx: -3, ddy: 0},
		},
	},
	RockSmall: {
		name: "small", radius: 4, spin: 10, score: 1, color: Red,
	},
	ShootingStar: {
		name: "shooting_star", radius: 5, color: Blue, decor: true,
	},
	BackgroundStar: {
		name: "star", radius: 1, color: White, decor: true,
	},
}

// Rock is an asteroid or a decorative star.
type Rock struct {
	Body
	Kind     RockKind
	Rotation int
	Spin     int

	// Brightness scales the color of background stars.
	Brightness float64
}

// NewRock creates a live rock of the given kind.
func NewRock(kind RockKind, pos Point, vel Velocity) Rock {
	c := rockClasses[kind]
	return Rock{
		Body:       newBody(pos, vel, c.radius),
		Kind:       kind,
		Spin:       c.spin,
		Brightness: 1,
	}
}

// Advance moves the rock and turns it by its spin.
func (r *Rock) Advance() {
	if !r.Alive() {
		return
	}
	r.Body.Advance()
	r.Rotation += r.Spin
}

// Score is the number of points awarded for destroying the rock.
func (r *Rock) Score() int {
	return rockClasses[r.Kind].score
}

// Decoration reports whether the rock is a star that never collides.
func (r *Rock) Decoration() bool {
	return rockClasses[r.Kind].decor
}

// Color returns the rock's base color.
func (r *Rock) Color() Color {
	c := PaletteColor(rockClasses[r.Kind].color)
	if r.Kind == BackgroundStar {
		return c.Scale(r.Brightness)
	}
	return c
}

// Fragments returns the children spawned when the rock is destroyed.
func (r *Rock) Fragments() []Rock {
	frags := rockClasses[r.Kind].fragments
	if len(frags) == 0 {
		return nil
	}
	out := make([]Rock, 0, len(frags))
	for _, f := range frags {
		vel := r.Vel
		vel.AddDx(f.ddx)
		vel.AddDy(f.ddy)
		out = append(out, NewRock(f.kind, r.Pos, vel))
	}
	return out
}
