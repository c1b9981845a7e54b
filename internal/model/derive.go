package model

import "math"

// Height ladder for the smart drawer layout. Available height is the
// cabinet height minus the toekick.
const (
	equalPairMax   = 18 // in, under this: two equal drawers
	equalTripleMax = 24 // in, under this: three equal drawers
	smallTopMax    = 36 // in, under this: small top drawer over two equal
	bottomSplitAt  = 16 // in, remainder at or over this splits into two bottoms
)

// MaxDoors returns how many doors of at least MinDoorWidth fit across the
// given cabinet width once every opening pays its DoorSpacing gap.
func (s StyleConfig) MaxDoors(width float64) int {
	n := int(math.Floor((width - s.DoorSpacing) / (s.MinDoorWidth + s.DoorSpacing)))
	if n < 0 {
		return 0
	}
	return n
}

// DoorLimit returns the largest door count the cabinet accepts. A
// double-door pair is capped at two regardless of width.
func (s StyleConfig) DoorLimit(c Cabinet) int {
	if c.DoubleDoor {
		return 2
	}
	return s.MaxDoors(c.Width)
}

// SuggestedDoorCount returns the door count that keeps each door at a
// comfortable width. It does not consult MaxDoors; callers clamp.
func (s StyleConfig) SuggestedDoorCount(width float64) int {
	switch {
	case width <= s.OptimalMaxDoorWidth:
		return 1
	case width <= 2*s.OptimalMaxDoorWidth:
		return 2
	default:
		return int(math.Ceil(width / s.OptimalMaxDoorWidth))
	}
}

// DoorOpeningHeight returns the vertical space left for doors below the
// drawer stack: cabinet height minus toekick, drawer stack, and the fixed
// clearance. Negative when drawers consume the face.
func (s StyleConfig) DoorOpeningHeight(c Cabinet) float64 {
	return c.Height - c.InternalFloor() - c.DrawerStackTop() - s.DoorClearance
}

// DoorOpeningWidth returns the per-door opening width once the cabinet
// face is divided between Doors doors. Zero when the cabinet has no doors.
func (s StyleConfig) DoorOpeningWidth(c Cabinet) float64 {
	if c.Doors <= 0 {
		return 0
	}
	return c.Width/float64(c.Doors) - s.DoorSpacing
}

// OptimalDrawerHeights returns the default drawer stack for a cabinet of
// the given height, largest count the available height supports. Reveals
// between faces are already paid for, so the heights plus their reveals
// fill the available space exactly.
func (s StyleConfig) OptimalDrawerHeights(cabinetHeight, toekickHeight float64) []float64 {
	available := cabinetHeight - toekickHeight
	switch {
	case available < equalPairMax:
		h := (available - s.Reveal) / 2
		return []float64{h, h}
	case available < equalTripleMax:
		h := (available - 2*s.Reveal) / 3
		return []float64{h, h, h}
	case available < smallTopMax:
		h := (available - s.SmallDrawerHeight - 2*s.Reveal) / 2
		return []float64{s.SmallDrawerHeight, h, h}
	default:
		rem := available - s.SmallDrawerHeight - s.MediumDrawerHeight - 3*s.Reveal
		if rem < bottomSplitAt {
			return []float64{s.SmallDrawerHeight, s.MediumDrawerHeight, rem}
		}
		return []float64{s.SmallDrawerHeight, s.MediumDrawerHeight, rem / 2, rem / 2}
	}
}

// PlaceDrawers stacks the given heights bottom-up from the internal floor,
// inserting one reveal between neighbours. Each drawer gets a fresh ID.
func (s StyleConfig) PlaceDrawers(heights []float64) []Drawer {
	drawers := make([]Drawer, 0, len(heights))
	y := 0.0
	for _, h := range heights {
		drawers = append(drawers, NewDrawer(h, y))
		y += h + s.Reveal
	}
	return drawers
}
