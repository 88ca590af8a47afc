package sim

// EventKind identifies a notable transition within a frame.
type EventKind int

const (
	EventShotFired EventKind = iota
	EventRockDestroyed
	EventShockwaveReady
	EventShockwaveFired
	EventShockwaveSpent
	EventShipLost
	EventShipSpawned
	EventExtraLife
	EventGameOver
)

var eventNames = map[EventKind]string{
	EventShotFired:      "shot_fired",
	EventRockDestroyed:  "rock_destroyed",
	EventShockwaveReady: "shockwave_ready",
	EventShockwaveFired: "shockwave_fired",
	EventShockwaveSpent: "shockwave_spent",
	EventShipLost:       "ship_lost",
	EventShipSpawned:    "ship_spawned",
	EventExtraLife:      "extra_life",
	EventGameOver:       "game_over",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is recorded by Step for outer layers to log or react to.
type Event struct {
	Kind  EventKind
	Frame uint64
	Score int
	Lives int
	Rock  RockKind // set for EventRockDestroyed
}
