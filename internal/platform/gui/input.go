package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readControls samples the keyboard. Steering, thrust and rapid fire
// follow the key state; a single shot and the shockwave need a fresh press.
func readControls() sim.ControlState {
	return sim.ControlState{
		RotateLeft:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		RotateRight: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Thrust:      pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Brake:       pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Shoot:       justPressed(ebiten.KeySpace),
		Rapid:       pressed(ebiten.KeyX),
		Shockwave:   justPressed(ebiten.KeyZ),
		FPS:         int(ebiten.ActualTPS() + 0.5),
	}
}
