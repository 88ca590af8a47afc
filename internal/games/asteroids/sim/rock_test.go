package sim

import "testing"

func TestRockClasses(t *testing.T) {
	tests := []struct {
		kind   RockKind
		radius int
		spin   int
		score  int
		decor  bool
	}{
		{RockLarge, 16, 2, 1, false},
		{RockMedium, 8, 5, 1, false},
		{RockSmall, 4, 10, 1, false},
		{ShootingStar, 5, 0, 0, true},
		{BackgroundStar, 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			r := NewRock(tt.kind, Point{}, Velocity{})
			if r.Radius != tt.radius {
				t.Errorf("Radius = %d, expected %d", r.Radius, tt.radius)
			}
			if r.Spin != tt.spin {
				t.Errorf("Spin = %d, expected %d", r.Spin, tt.spin)
			}
			if r.Score() != tt.score {
				t.Errorf("Score() = %d, expected %d", r.Score(), tt.score)
			}
			if r.Decoration() != tt.decor {
				t.Errorf("Decoration() = %v, expected %v", r.Decoration(), tt.decor)
			}
		})
	}
}

func TestRockAdvanceSpins(t *testing.T) {
	r := NewRock(RockMedium, Point{}, Polar(1, 0))

	r.Advance()
	r.Advance()

	if r.Rotation != 10 {
		t.Errorf("Rotation = %d, expected 10", r.Rotation)
	}

	r.Kill()
	r.Advance()
	if r.Rotation != 10 {
		t.Errorf("dead rock rotated to %d", r.Rotation)
	}
}

func TestLargeRockFragments(t *testing.T) {
	parent := NewRock(RockLarge, Point{X: 30, Y: -40}, Polar(1, 0))

	frags := parent.Fragments()
	if len(frags) != 3 {
		t.Fatalf("len(Fragments()) = %d, expected 3", len(frags))
	}

	expected := []struct {
		kind   RockKind
		dx, dy float64
	}{
		{RockMedium, 1, 1},
		{RockMedium, 1, -1},
		{RockSmall, 3, 0},
	}
	for i, e := range expected {
		f := frags[i]
		if f.Kind != e.kind {
			t.Errorf("fragment %d kind = %v, expected %v", i, f.Kind, e.kind)
		}
		if f.Pos != parent.Pos {
			t.Errorf("fragment %d at %+v, expected parent position %+v", i, f.Pos, parent.Pos)
		}
		if !near(f.Vel.Dx(), e.dx) || !near(f.Vel.Dy(), e.dy) {
			t.Errorf("fragment %d velocity = (%v, %v), expected (%v, %v)", i, f.Vel.Dx(), f.Vel.Dy(), e.dx, e.dy)
		}
		if !f.Alive() || f.FramesAlive() != 0 {
			t.Errorf("fragment %d should start alive at frame 0", i)
		}
	}
}

func TestMediumRockFragments(t *testing.T) {
	parent := NewRock(RockMedium, Point{}, Polar(2, 90))

	frags := parent.Fragments()
	if len(frags) != 2 {
		t.Fatalf("len(Fragments()) = %d, expected 2", len(frags))
	}
	for i, dx := range []float64{3, -3} {
		if frags[i].Kind != RockSmall {
			t.Errorf("fragment %d kind = %v, expected small", i, frags[i].Kind)
		}
		if !near(frags[i].Vel.Dx(), dx) || !near(frags[i].Vel.Dy(), 2) {
			t.Errorf("fragment %d velocity = (%v, %v), expected (%v, 2)", i, frags[i].Vel.Dx(), frags[i].Vel.Dy(), dx)
		}
	}
}

func TestSmallRockHasNoFragments(t *testing.T) {
	r := NewRock(RockSmall, Point{}, Polar(1, 0))
	if frags := r.Fragments(); len(frags) != 0 {
		t.Errorf("small rock produced %d fragments", len(frags))
	}
}

func TestBackgroundStarBrightness(t *testing.T) {
	r := NewRock(BackgroundStar, Point{}, Velocity{})
	r.Brightness = 0.5

	c := r.Color()
	if !near(c.R, 0.5) || !near(c.G, 0.5) || !near(c.B, 0.5) {
		t.Errorf("Color() = %+v, expected half white", c)
	}
}
