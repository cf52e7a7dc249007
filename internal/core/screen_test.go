package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Untouched cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '@', ColorGreen)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' {
		t.Errorf("GetCell(1, 1).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1).Color = %v, expected ColorGreen", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
	if s.Get(100, 100) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	s.SetColored(4, 2, 'Y', ColorRed)
	s.Clear()

	if s.Get(3, 2) != ' ' {
		t.Error("Clear should reset cells to space")
	}
	if s.GetCell(4, 2).Color != ColorDefault {
		t.Error("Clear should reset colors to default")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")

	row := s.Row(1)
	if !strings.Contains(row, "Hello") {
		t.Errorf("Row(1) = %q, expected to contain \"Hello\"", row)
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "Overflow")
	if s.Get(18, 0) != 'O' {
		t.Errorf("Get(18, 0) = %q, expected 'O'", s.Get(18, 0))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawHLine(0, 4, 10, '═')
	for x := 0; x < 10; x++ {
		if s.Get(x, 4) != '═' {
			t.Errorf("Get(%d, 4) = %q, expected '═'", x, s.Get(x, 4))
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(3, 2, 'X')

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize to (20, 10) got (%d, %d)", s.Width(), s.Height())
	}
	if s.Get(3, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips content without panicking
	s.Resize(2, 2)
	if s.Get(3, 2) != ' ' {
		t.Error("Content outside shrunk bounds should read as space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	expected := "A  \n  B"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
