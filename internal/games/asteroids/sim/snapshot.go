package sim

// Snapshot describes a session after a frame. It holds plain values only
// so it can be written as YAML or MessagePack.
type Snapshot struct {
	Frame          uint64          `yaml:"frame" msgpack:"frame"`
	Score          int             `yaml:"score" msgpack:"score"`
	Lives          int             `yaml:"lives" msgpack:"lives"`
	Shots          int             `yaml:"shots" msgpack:"shots"`
	HitRatio       float64         `yaml:"hit_ratio" msgpack:"hit_ratio"`
	ShockwaveReady bool            `yaml:"shockwave_ready" msgpack:"shockwave_ready"`
	GameOver       bool            `yaml:"game_over" msgpack:"game_over"`
	Ship           *ShipState      `yaml:"ship,omitempty" msgpack:"ship,omitempty"`
	Shockwave      *ShockwaveState `yaml:"shockwave,omitempty" msgpack:"shockwave,omitempty"`
	Bullets        int             `yaml:"bullets" msgpack:"bullets"`
	Rocks          []RockState     `yaml:"rocks" msgpack:"rocks"`
}

// ShipState is the ship part of a Snapshot.
type ShipState struct {
	Pos      Point   `yaml:"pos" msgpack:"pos"`
	Speed    float64 `yaml:"speed" msgpack:"speed"`
	Heading  float64 `yaml:"heading" msgpack:"heading"`
	Rotation float64 `yaml:"rotation" msgpack:"rotation"`
	Thrust   bool    `yaml:"thrust" msgpack:"thrust"`
	Frames   int     `yaml:"frames" msgpack:"frames"`
}

// ShockwaveState is the shockwave part of a Snapshot.
type ShockwaveState struct {
	Pos    Point `yaml:"pos" msgpack:"pos"`
	Radius int   `yaml:"radius" msgpack:"radius"`
}

// RockState is one asteroid in a Snapshot.
type RockState struct {
	Kind     string  `yaml:"kind" msgpack:"kind"`
	Pos      Point   `yaml:"pos" msgpack:"pos"`
	Speed    float64 `yaml:"speed" msgpack:"speed"`
	Heading  float64 `yaml:"heading" msgpack:"heading"`
	Rotation int     `yaml:"rotation" msgpack:"rotation"`
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:          s.frame,
		Score:          s.score,
		Lives:          s.lives,
		Shots:          s.shots,
		HitRatio:       s.hitRatio,
		ShockwaveReady: s.shockwaveReady,
		GameOver:       s.GameOver(),
		Bullets:        len(s.bullets),
		Rocks:          make([]RockState, 0, len(s.rocks)),
	}

	if s.ship != nil {
		snap.Ship = &ShipState{
			Pos:      s.ship.Pos,
			Speed:    s.ship.Vel.Magnitude,
			Heading:  s.ship.Vel.Angle,
			Rotation: s.ship.Rotation,
			Thrust:   s.ship.Thrust,
			Frames:   s.ship.FramesAlive(),
		}
	}
	if s.shockwave != nil {
		snap.Shockwave = &ShockwaveState{Pos: s.shockwave.Pos, Radius: s.shockwave.Radius}
	}
	for _, r := range s.rocks {
		snap.Rocks = append(snap.Rocks, RockState{
			Kind:     r.Kind.String(),
			Pos:      r.Pos,
			Speed:    r.Vel.Magnitude,
			Heading:  r.Vel.Angle,
			Rotation: r.Rotation,
		})
	}
	return snap
}
