package model

import (
	"math"
	"testing"
)

func TestMaxDoors(t *testing.T) {
	s := DefaultStyleConfig()

	tests := []struct {
		width    float64
		expected int
	}{
		{0, 0},
		{7, 0},
		{8, 0},
		{17, 1},
		{18, 1},
		{19, 2},
		{24, 2},
		{36, 3},
		{48, 5},
		{60, 6},
	}

	for _, tt := range tests {
		if got := s.MaxDoors(tt.width); got != tt.expected {
			t.Errorf("MaxDoors(%v) = %d, want %d", tt.width, got, tt.expected)
		}
	}
}

func TestMaxDoorsMonotonic(t *testing.T) {
	s := DefaultStyleConfig()
	prev := 0
	for w := 0.0; w <= 120; w += 0.25 {
		n := s.MaxDoors(w)
		if n < prev {
			t.Fatalf("MaxDoors decreased from %d to %d at width %v", prev, n, w)
		}
		prev = n
	}
}

func TestDoorLimit(t *testing.T) {
	s := DefaultStyleConfig()

	c := NewCabinet("X")
	c.Width = 60
	if got := s.DoorLimit(c); got != 6 {
		t.Errorf("expected limit 6 for 60in cabinet, got %d", got)
	}

	c.DoubleDoor = true
	if got := s.DoorLimit(c); got != 2 {
		t.Errorf("expected double-door limit 2, got %d", got)
	}
}

func TestSuggestedDoorCount(t *testing.T) {
	s := DefaultStyleConfig()

	tests := []struct {
		width    float64
		expected int
	}{
		{12, 1},
		{24, 1},
		{24.5, 2},
		{48, 2},
		{60, 3},
		{100, 5},
	}

	for _, tt := range tests {
		if got := s.SuggestedDoorCount(tt.width); got != tt.expected {
			t.Errorf("SuggestedDoorCount(%v) = %d, want %d", tt.width, got, tt.expected)
		}
	}
}

func TestDoorOpeningHeight(t *testing.T) {
	s := DefaultStyleConfig()

	c := NewCabinet("X")
	// 34.5 - 4 toekick - 1 clearance
	if got := s.DoorOpeningHeight(c); got != 29.5 {
		t.Errorf("expected opening height 29.5, got %v", got)
	}

	c.Drawers = []Drawer{NewDrawer(6, 0)}
	if got := s.DoorOpeningHeight(c); got != 23.5 {
		t.Errorf("expected opening height 23.5 above drawer, got %v", got)
	}

	c.Toekick = false
	if got := s.DoorOpeningHeight(c); got != 27.5 {
		t.Errorf("expected opening height 27.5 without toekick, got %v", got)
	}
}

func TestDoorOpeningWidth(t *testing.T) {
	s := DefaultStyleConfig()

	c := NewCabinet("X")
	if got := s.DoorOpeningWidth(c); got != 0 {
		t.Errorf("expected 0 opening width with no doors, got %v", got)
	}

	c.Doors = 2
	if got := s.DoorOpeningWidth(c); got != 11 {
		t.Errorf("expected 11in openings on a 24in cabinet, got %v", got)
	}
}

func TestOptimalDrawerHeights(t *testing.T) {
	s := DefaultStyleConfig()

	tests := []struct {
		name     string
		height   float64
		toekick  float64
		expected []float64
	}{
		{"two equal", 20, 4, []float64{7.9375, 7.9375}},
		{"three equal", 24, 4, []float64{6.583333333333333, 6.583333333333333, 6.583333333333333}},
		{"small over two", 30, 4, []float64{4, 10.875, 10.875}},
		{"small over two upper bound", 39.9, 4, []float64{4, 15.825, 15.825}},
		{"graded four", 44, 4, []float64{4, 6, 14.8125, 14.8125}},
		{"no toekick", 16, 0, []float64{7.9375, 7.9375}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.OptimalDrawerHeights(tt.height, tt.toekick)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d drawers, got %d (%v)", len(tt.expected), len(got), got)
			}
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("drawer %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

// A 30in cabinet over a 4.5in toekick gets the small-plus-two-medium
// stack, and the heights plus reveals consume the available space exactly.
func TestOptimalDrawerHeightsFillAvailable(t *testing.T) {
	s := DefaultStyleConfig()

	heights := s.OptimalDrawerHeights(30, 4.5)
	if len(heights) != 3 {
		t.Fatalf("expected 3 drawers, got %d", len(heights))
	}
	if heights[0] != s.SmallDrawerHeight {
		t.Errorf("expected small top drawer %v, got %v", s.SmallDrawerHeight, heights[0])
	}

	sum := 0.0
	for _, h := range heights {
		sum += h
	}
	sum += float64(len(heights)-1) * s.Reveal
	if math.Abs(sum-25.5) > 1e-9 {
		t.Errorf("heights plus reveals should fill 25.5, got %v", sum)
	}
}

func TestPlaceDrawers(t *testing.T) {
	s := DefaultStyleConfig()

	heights := []float64{4, 6, 8}
	drawers := s.PlaceDrawers(heights)
	if len(drawers) != 3 {
		t.Fatalf("expected 3 drawers, got %d", len(drawers))
	}

	if drawers[0].StartY != 0 {
		t.Errorf("first drawer should start at the internal floor, got %v", drawers[0].StartY)
	}
	if drawers[1].StartY != 4.125 {
		t.Errorf("expected second drawer at 4.125, got %v", drawers[1].StartY)
	}
	if drawers[2].StartY != 10.25 {
		t.Errorf("expected third drawer at 10.25, got %v", drawers[2].StartY)
	}
	for i, d := range drawers {
		if d.ID == "" {
			t.Errorf("drawer %d has no ID", i)
		}
		if d.Height != heights[i] {
			t.Errorf("drawer %d height changed in placement", i)
		}
	}
}

// Placed stacks from the tiered rule never overflow the cabinet.
func TestPlacedStackStaysInside(t *testing.T) {
	s := DefaultStyleConfig()

	for height := 10.0; height <= 96; height += 1.5 {
		for _, toekick := range []float64{0, 4, 4.5} {
			if height <= toekick {
				continue
			}
			drawers := s.PlaceDrawers(s.OptimalDrawerHeights(height, toekick))
			for _, d := range drawers {
				if d.Top() > height-toekick+1e-9 {
					t.Fatalf("height %v toekick %v: drawer top %v exceeds available %v",
						height, toekick, d.Top(), height-toekick)
				}
			}
		}
	}
}
