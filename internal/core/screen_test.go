package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
		if s.Get(x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.Get(x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.Get(1, y))
		}
		if s.Get(5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.Get(5, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '*', ColorYellow)

	c := s.GetCell(1, 1)
	if c.Rune != '*' || c.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow '*'", c)
	}

	s.Set(1, 1, 'o')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should reset the cell color")
	}

	if got := s.GetCell(9, 9); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}

	s.Clear()
	if s.GetCell(1, 1) != (Cell{Rune: ' '}) {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 2, 3, 2, 1, [][2]int{{2, 3}, {2, 2}, {2, 1}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"single cell", 1, 1, 1, 1, [][2]int{{1, 1}}},
		{"leftward", 3, 2, 0, 2, [][2]int{{3, 2}, {2, 2}, {1, 2}, {0, 2}}},
		{"steep backward", 2, 4, 1, 0, [][2]int{{2, 4}, {2, 3}, {1, 2}, {1, 1}, {1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(5, 5)
			s.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, Cell{Rune: '#', Color: ColorRed})
			for _, c := range tt.cells {
				if got := s.GetCell(c[0], c[1]); got.Rune != '#' || got.Color != ColorRed {
					t.Errorf("cell (%d, %d) = %+v, expected red '#'", c[0], c[1], got)
				}
			}
		})
	}
}

func TestScreenDrawColorText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawColorText(1, 0, "héllo", ColorCyan)

	if s.Get(2, 0) != 'é' || s.Get(5, 0) != 'o' {
		t.Errorf("Row(0) = %q, expected runes placed one per cell", s.Row(0))
	}
	if s.GetCell(3, 0).Color != ColorCyan {
		t.Error("DrawColorText should color every rune")
	}
}

func TestScreenPutHex(t *testing.T) {
	s := NewScreen(3, 1)
	s.Put(1, 0, Cell{Rune: '•', Hex: "#7f7f7f"})
	s.Put(5, 0, Cell{Rune: 'x'})

	if got := s.GetCell(1, 0); got.Rune != '•' || got.Hex != "#7f7f7f" {
		t.Errorf("GetCell(1, 0) = %+v, expected grey '•'", got)
	}

	s.SetCell(1, 0, 'o', ColorRed)
	if s.GetCell(1, 0).Hex != "" {
		t.Error("SetCell should clear the hex color")
	}
}

func TestMinAbs(t *testing.T) {
	tests := []struct {
		a, b, min, absA int
	}{
		{1, 2, 1, 1},
		{-3, 2, -3, 3},
		{0, 0, 0, 0},
		{7, -7, -7, 7},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.min {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.min)
		}
		if got := Abs(tc.a); got != tc.absA {
			t.Errorf("Abs(%d) = %d, expected %d", tc.a, got, tc.absA)
		}
	}
}
