package sim

// Session tuning.
const (
	TargetRocks         = 5
	ShootingStars       = 10
	BackgroundStars     = 50
	StartingLives       = 5
	ExtraLifeEvery      = 50
	ShockwaveEvery      = 20
	DefaultMargin       = 15
	DefaultStarBorder   = 150
	LargeRockSpeed      = 1.0
	ShootingStarSpeed   = 2.0
	BackgroundStarSpeed = 0.1
)

// Options configures a new Session. Zero values fall back to the
// classic 400x400 field centered on the origin. Margin and StarBorder
// are pointers so an explicit zero border stays zero.
type Options struct {
	TopLeft     Point
	BottomRight Point
	Margin      *float64
	StarBorder  *float64
	Lives       int
	Rand        Rand
}

func (o Options) withDefaults() Options {
	if o.TopLeft == (Point{}) && o.BottomRight == (Point{}) {
		o.TopLeft = Point{X: -200, Y: 200}
		o.BottomRight = Point{X: 200, Y: -200}
	}
	if o.Margin == nil {
		m := float64(DefaultMargin)
		o.Margin = &m
	}
	if o.StarBorder == nil {
		b := float64(DefaultStarBorder)
		o.StarBorder = &b
	}
	if o.Lives <= 0 {
		o.Lives = StartingLives
	}
	if o.Rand == nil {
		o.Rand = NewRand(1)
	}
	return o
}

// Session owns every entity population and the score, lives and
// shockwave gate. Step runs one frame of the pipeline.
type Session struct {
	topLeft, bottomRight Point
	min, max             Point // wrap envelope for rocks, ship and bullets
	starMin, starMax     Point // wider envelope for shooting stars
	rng                  Rand

	score          int
	lives          int
	shots          int
	hitRatio       float64
	shockwaveReady bool

	ship      *Ship
	shockwave *Shockwave
	bullets   []Bullet
	rocks     []Rock
	shooting  []Rock
	stars     []Rock

	frame  uint64
	events []Event
}

// NewSession creates a session with a ship at the origin, the full rock
// population and the star field.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()

	s := &Session{
		topLeft:     opts.TopLeft,
		bottomRight: opts.BottomRight,
		rng:         opts.Rand,
		lives:       opts.Lives,
	}
	margin, border := *opts.Margin, *opts.StarBorder
	s.min = Point{X: s.topLeft.X - margin, Y: s.bottomRight.Y - margin}
	s.max = Point{X: s.bottomRight.X + margin, Y: s.topLeft.Y + margin}
	s.starMin = s.min.Add(-border, -border)
	s.starMax = s.max.Add(border, border)

	s.ship = NewShip(Point{})

	s.rocks = make([]Rock, 0, TargetRocks*3)
	for i := 0; i < TargetRocks; i++ {
		s.rocks = append(s.rocks, s.newLargeRock())
	}

	// Every star drifts along the same heading.
	heading := s.rng.Float(0, 360)

	s.shooting = make([]Rock, 0, ShootingStars)
	for i := 0; i < ShootingStars; i++ {
		s.shooting = append(s.shooting, NewRock(ShootingStar, s.randomOnScreen(), Polar(ShootingStarSpeed, heading)))
	}

	s.stars = make([]Rock, 0, BackgroundStars)
	for i := 0; i < BackgroundStars; i++ {
		star := NewRock(BackgroundStar, s.randomOnScreen(), Polar(BackgroundStarSpeed, heading))
		star.Brightness = s.rng.Float(0, 2)
		s.stars = append(s.stars, star)
	}

	return s
}

func (s *Session) randomOnScreen() Point {
	return Point{
		X: s.rng.Float(s.topLeft.X, s.bottomRight.X),
		Y: s.rng.Float(s.bottomRight.Y, s.topLeft.Y),
	}
}

// newLargeRock places a large rock anywhere on screen except exactly on
// the ship.
func (s *Session) newLargeRock() Rock {
	pos := s.randomOnScreen()
	for s.ship != nil && pos == s.ship.Pos {
		pos = s.randomOnScreen()
	}
	return NewRock(RockLarge, pos, Polar(LargeRockSpeed, s.rng.Float(0, 360)))
}

// Step runs one frame: projectiles, rocks and stars, ship, input,
// collisions, then the reap and replenish pass.
func (s *Session) Step(c Controls) {
	s.frame++
	s.events = s.events[:0]

	s.advanceProjectiles()
	s.advanceRocks()
	s.advanceShip()
	s.handleInput(c)
	s.handleCollisions()
	s.reap()
}

func (s *Session) emit(kind EventKind) {
	s.events = append(s.events, Event{Kind: kind, Frame: s.frame, Score: s.score, Lives: s.lives})
}

func (s *Session) advanceProjectiles() {
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.Alive() {
			continue
		}
		b.Advance()
		Wrap(&b.Body, s.min, s.max)
		if b.Expired() {
			b.Kill()
			s.updateHitRatio()
		}
	}

	if s.score > 0 && s.score%ShockwaveEvery == 0 && !s.shockwaveReady {
		s.shockwaveReady = true
		s.emit(EventShockwaveReady)
	}

	if s.shockwave == nil {
		return
	}
	if s.shockwave.Alive() && !s.shockwave.Spent() {
		s.shockwave.Advance()
		return
	}
	if s.shockwave.Alive() {
		s.emit(EventShockwaveSpent)
	}
	s.shockwave.Kill()
	s.shockwaveReady = false
	s.updateHitRatio()
}

func (s *Session) advanceRocks() {
	for i := range s.rocks {
		r := &s.rocks[i]
		if !r.Alive() {
			continue
		}
		r.Advance()
		Wrap(&r.Body, s.min, s.max)
	}
	for i := range s.shooting {
		s.shooting[i].Advance()
		Wrap(&s.shooting[i].Body, s.starMin, s.starMax)
	}
	for i := range s.stars {
		s.stars[i].Advance()
		Wrap(&s.stars[i].Body, s.min, s.max)
	}
}

func (s *Session) advanceShip() {
	if s.ship == nil || !s.ship.Alive() {
		return
	}
	s.ship.Advance()
	Wrap(&s.ship.Body, s.min, s.max)
}

func (s *Session) handleInput(c Controls) {
	if s.ship == nil || c == nil {
		return
	}
	ship := s.ship

	// The nose is taken before this frame's rotation is applied.
	nose := ship.Nose()

	if c.Left() {
		ship.RotateLeft()
	}
	if c.Right() {
		ship.RotateRight()
	}
	if c.Up() {
		ship.ThrustUp()
	}
	if c.Down() {
		ship.ThrustDown()
	}
	if !(c.Left() || c.Right() || c.Up() || c.Down()) {
		ship.ThrustOff()
	}

	if c.Fire() {
		s.fireBullet(nose)
	}
	if c.RapidFire() {
		s.fireBullet(nose)
	}
	if c.Special() && s.shockwaveReady && s.shockwave == nil {
		s.shockwave = NewShockwave(ship.Pos, s.rng.Int(1, 13))
		s.shockwave.Fire(ship.Pos, BulletSpeed)
		s.emit(EventShockwaveFired)
	}
}

func (s *Session) fireBullet(nose Point) {
	b := NewBullet(nose, s.ship.Rotation, BulletSpeed)
	b.Vel.AddDx(s.ship.Vel.Dx())
	b.Vel.AddDy(s.ship.Vel.Dy())
	s.bullets = append(s.bullets, b)
	s.shots++
	s.emit(EventShotFired)
}

func (s *Session) handleCollisions() {
	var spawned []Rock

	for i := range s.rocks {
		r := &s.rocks[i]
		if !r.Alive() {
			continue
		}

		hit := false
		for j := range s.bullets {
			b := &s.bullets[j]
			if b.Alive() && Collides(&r.Body, &b.Body) {
				b.Kill()
				hit = true
			}
		}

		if s.shockwave != nil && s.shockwave.Alive() && Collides(&r.Body, &s.shockwave.Body) {
			hit = true
		}

		if s.ship != nil && s.ship.Alive() && Collides(&r.Body, &s.ship.Body) {
			s.ship.Kill()
			r.Kill()
		}

		if !hit {
			continue
		}

		spawned = append(spawned, r.Fragments()...)
		r.Kill()
		s.score += r.Score()
		s.updateHitRatio()
		s.events = append(s.events, Event{Kind: EventRockDestroyed, Frame: s.frame, Score: s.score, Lives: s.lives, Rock: r.Kind})

		if s.score%ExtraLifeEvery == 0 {
			s.lives++
			s.emit(EventExtraLife)
		}
	}

	for _, child := range spawned {
		if child.Kind == RockLarge {
			s.rocks = append(s.rocks, s.newLargeRock())
			continue
		}
		s.rocks = append(s.rocks, child)
	}
}

func (s *Session) updateHitRatio() {
	if s.shots == 0 {
		s.hitRatio = 0
		return
	}
	s.hitRatio = float64(s.score) / float64(s.shots)
}

// reap drops dead entities, keeping survivors in order, respawns the
// ship while lives remain and tops the rocks back up.
func (s *Session) reap() {
	bullets := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Alive() {
			bullets = append(bullets, b)
		}
	}
	s.bullets = bullets

	rocks := s.rocks[:0]
	for _, r := range s.rocks {
		if r.Alive() {
			rocks = append(rocks, r)
		}
	}
	s.rocks = rocks

	if s.shockwave != nil && !s.shockwave.Alive() {
		s.shockwave = nil
	}

	if s.ship != nil && !s.ship.Alive() {
		s.lives--
		s.ship = nil
		s.emit(EventShipLost)
		if s.lives > 0 {
			s.ship = NewShip(Point{})
			s.emit(EventShipSpawned)
		} else {
			s.emit(EventGameOver)
		}
	}

	for len(s.rocks) < TargetRocks {
		s.rocks = append(s.rocks, s.newLargeRock())
	}
}

// Score returns the number of rocks destroyed.
func (s *Session) Score() int { return s.score }

// Lives returns the number of ships left, including the one in play.
func (s *Session) Lives() int { return s.lives }

// Shots returns the number of bullets fired.
func (s *Session) Shots() int { return s.shots }

// HitRatio returns score divided by shots, or 0 before the first shot.
func (s *Session) HitRatio() float64 { return s.hitRatio }

// ShockwaveReady reports whether the special weapon may be fired.
func (s *Session) ShockwaveReady() bool { return s.shockwaveReady }

// Frame returns the number of frames stepped.
func (s *Session) Frame() uint64 { return s.frame }

// Ship returns the ship in play, or nil after the last life is lost.
func (s *Session) Ship() *Ship { return s.ship }

// Shockwave returns the active shockwave, or nil.
func (s *Session) Shockwave() *Shockwave { return s.shockwave }

// Rocks returns the live asteroid population. The slice is owned by the
// session and is only valid until the next Step.
func (s *Session) Rocks() []Rock { return s.rocks }

// Bullets returns the live bullets. Valid until the next Step.
func (s *Session) Bullets() []Bullet { return s.bullets }

// Events returns what happened during the last Step.
func (s *Session) Events() []Event { return s.events }

// GameOver reports whether every life has been used. The session keeps
// animating rocks and stars after this.
func (s *Session) GameOver() bool { return s.ship == nil && s.lives == 0 }

// Bounds returns the visible field corners.
func (s *Session) Bounds() (topLeft, bottomRight Point) { return s.topLeft, s.bottomRight }
