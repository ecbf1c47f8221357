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

	s.SetCell(2, 3, Cell{Rune: '█', Color: ColorBrightGreen})
	if got := s.GetCell(2, 3); got.Rune != '█' || got.Color != ColorBrightGreen {
		t.Errorf("GetCell(2, 3) = %+v", got)
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

func TestDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "hello", ColorCyan)

	if !strings.Contains(s.String(), "hello") {
		t.Errorf("screen should contain drawn text, got:\n%s", s.String())
	}
	if s.GetCell(2, 1).Color != ColorCyan {
		t.Error("drawn text should carry its color")
	}

	// Clipped text must not panic
	s.DrawText(18, 1, "overflow", ColorDefault)
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5), ColorGray)

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' || s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Error("box corners missing")
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges missing")
	}
	if s.Get(5, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
