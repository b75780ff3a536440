package core

import (
	"strings"
	"testing"
)

// recordingSink counts frames and keeps a copy of the last one.
type recordingSink struct {
	frames int
	last   string
}

func (r *recordingSink) Present(s *Screen) {
	r.frames++
	r.last = s.String()
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(62, 30)

	if s.Width() != 62 {
		t.Errorf("Width() = %d, expected 62", s.Width())
	}
	if s.Height() != 30 {
		t.Errorf("Height() = %d, expected 30", s.Height())
	}

	// Check that it's initialized with blank default cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' ', Color: ColorDefault}) {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCellGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'E', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'E' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected E/red", c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)  // Should not panic
	s.SetCell(100, 0, 'A', ColorRed) // Should not panic
	s.SetCell(0, -1, 'A', ColorRed)  // Should not panic
	s.SetCell(0, 100, 'A', ColorRed) // Should not panic

	// Out of bounds get should return blank
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorYellow)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenClearThenFlushIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 1, "dirty!")

	sink := &recordingSink{}
	s.Clear()
	s.Flush(sink)

	if sink.frames != 1 {
		t.Fatalf("Flush should present exactly one frame, got %d", sink.frames)
	}
	expected := "      \n      \n      "
	if sink.last != expected {
		t.Errorf("flushed frame = %q, expected %q", sink.last, expected)
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

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 2)
	next := s.DrawTextColor(3, 0, "<3", ColorBrightRed)

	if next != 5 {
		t.Errorf("DrawTextColor returned %d, expected 5", next)
	}
	if c := s.GetCell(4, 0); c.Rune != '3' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(4, 0) = %+v, expected '3' bright red", c)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '#')

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '#' {
			t.Errorf("DrawHLine: expected '#' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
	if s.Get(7, 2) != ' ' {
		t.Error("DrawHLine should stop after length cells")
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

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenRelease(t *testing.T) {
	s := NewScreen(4, 4)
	s.Release()

	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Released screen should be 0x0, got %dx%d", s.Width(), s.Height())
	}
	s.SetCell(1, 1, 'X', ColorRed) // Should not panic
	if s.String() != "" {
		t.Errorf("Released screen should render empty, got %q", s.String())
	}
}
