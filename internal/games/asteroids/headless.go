package asteroids

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Output formats for headless runs.
const (
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Autopilot is a scripted pilot for headless runs: it keeps turning,
// fires every few frames, thrusts in short bursts and releases the
// shockwave whenever it is ready.
func Autopilot(frame uint64) sim.ControlState {
	return sim.ControlState{
		RotateLeft: true,
		Thrust:     frame%80 < 10,
		Shoot:      frame%5 == 0,
		Shockwave:  true,
		FPS:        config.DefaultAsteroidsConfig().Display.TickRate,
	}
}

// HeadlessRun describes a session played without a front end.
type HeadlessRun struct {
	Config    config.AsteroidsConfig
	Seed      int64
	Frames    int
	Autopilot bool
	Format    string
}

// Run plays the session and writes snapshots to w. Text and YAML output
// describe the final frame; MessagePack output streams every frame.
func (h HeadlessRun) Run(w io.Writer) (sim.Snapshot, error) {
	format := strings.ToLower(h.Format)
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatYAML, FormatMsgpack:
	default:
		return sim.Snapshot{}, fmt.Errorf("sim: %w %q", ErrUnknownFormat, h.Format)
	}

	session := NewSession(h.Config, h.Seed)
	var enc *msgpack.Encoder
	if format == FormatMsgpack {
		enc = msgpack.NewEncoder(w)
	}

	for i := 0; i < h.Frames; i++ {
		var c sim.Controls
		if h.Autopilot {
			c = Autopilot(session.Frame())
		}
		session.Step(c)
		if enc != nil {
			if err := enc.Encode(session.Snapshot()); err != nil {
				return sim.Snapshot{}, fmt.Errorf("sim: encode frame %d: %w", session.Frame(), err)
			}
		}
	}

	snap := session.Snapshot()
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return snap, fmt.Errorf("sim: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return snap, fmt.Errorf("sim: encode yaml: %w", err)
		}
	case FormatText:
		if err := WriteSummary(w, snap); err != nil {
			return snap, fmt.Errorf("sim: write summary: %w", err)
		}
	}
	return snap, nil
}

// WriteSummary prints a short human-readable report of a snapshot.
func WriteSummary(w io.Writer, snap sim.Snapshot) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame      %d\n", snap.Frame)
	fmt.Fprintf(&sb, "score      %d\n", snap.Score)
	fmt.Fprintf(&sb, "lives      %d\n", snap.Lives)
	fmt.Fprintf(&sb, "shots      %d\n", snap.Shots)
	fmt.Fprintf(&sb, "hit ratio  %.2f\n", snap.HitRatio)
	fmt.Fprintf(&sb, "rocks      %d\n", len(snap.Rocks))
	fmt.Fprintf(&sb, "bullets    %d\n", snap.Bullets)
	if snap.Ship != nil {
		fmt.Fprintf(&sb, "ship       (%.1f, %.1f) speed %.2f\n", snap.Ship.Pos.X, snap.Ship.Pos.Y, snap.Ship.Speed)
	}
	if snap.GameOver {
		sb.WriteString("GAME OVER\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
