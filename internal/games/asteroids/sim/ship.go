package sim

// Ship tuning.
const (
	ShipRadius   = 10
	RotateStep   = 6
	ThrustStep   = 0.5
	MaxShipSpeed = 5.0
	NoseOffset   = 5.0
)

// Ship is the player's craft. Rotation is the facing; thrust pushes the
// velocity toward the facing, so the ship drifts.
type Ship struct {
	Body
	Rotation float64
	Thrust   bool
}

// NewShip creates a stationary ship at pos facing along +X.
func NewShip(pos Point) *Ship {
	return &Ship{Body: newBody(pos, Velocity{}, ShipRadius)}
}

// RotateLeft turns the ship counter-clockwise and cuts thrust.
func (s *Ship) RotateLeft() {
	s.Rotation += RotateStep
	s.Thrust = false
}

// RotateRight turns the ship clockwise and cuts thrust.
func (s *Ship) RotateRight() {
	s.Rotation -= RotateStep
	s.Thrust = false
}

// ThrustUp accelerates along the facing until the speed cap is reached.
func (s *Ship) ThrustUp() {
	s.Thrust = true
	push := Polar(ThrustStep, s.Rotation)
	s.Vel.AddDx(push.Dx())
	s.Vel.AddDy(push.Dy())
	if s.Vel.Magnitude >= MaxShipSpeed {
		s.Vel.Magnitude = MaxShipSpeed
	}
}

// ThrustDown brakes toward a standstill.
func (s *Ship) ThrustDown() {
	s.Thrust = false
	if s.Vel.Magnitude <= 0 {
		s.Vel.Magnitude = 0
		return
	}
	s.Vel.SubMagnitude(ThrustStep)
	if s.Vel.Magnitude < 0 {
		s.Vel.Magnitude = 0
	}
}

// ThrustOff stops showing the engine flame.
func (s *Ship) ThrustOff() {
	s.Thrust = false
}

// Nose returns the point bullets are fired from.
func (s *Ship) Nose() Point {
	n := Polar(NoseOffset, s.Rotation)
	return s.Pos.Add(n.Dx(), n.Dy())
}
