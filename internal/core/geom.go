// Package core provides fundamental types and utilities for the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle used for boxes and overlays.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Viewport maps a Y-up world rectangle onto a grid of W x H cells.
// The world's top-left corner lands on cell (0, 0) and its bottom-right
// corner on cell (W-1, H-1).
type Viewport struct {
	Left, Top     float64
	Right, Bottom float64
	W, H          int
}

// Project converts a world position to the nearest cell.
func (v Viewport) Project(x, y float64) (int, int) {
	sx, sy := v.Scale()
	cx := (x - v.Left) * sx
	cy := (v.Top - y) * sy
	return int(math.Round(cx)), int(math.Round(cy))
}

// Scale returns the number of cells per world unit on each axis.
func (v Viewport) Scale() (float64, float64) {
	ww := v.Right - v.Left
	wh := v.Top - v.Bottom
	if ww == 0 || wh == 0 || v.W < 2 || v.H < 2 {
		return 0, 0
	}
	return float64(v.W-1) / ww, float64(v.H-1) / wh
}

// Visible reports whether a cell lies on the grid.
func (v Viewport) Visible(cx, cy int) bool {
	return NewRect(0, 0, v.W, v.H).Contains(cx, cy)
}
