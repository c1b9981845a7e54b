package model

import (
	"testing"
)

func TestNewCabinetDefaults(t *testing.T) {
	c := NewCabinet("Base 1")

	if c.Name != "Base 1" {
		t.Errorf("expected name 'Base 1', got %q", c.Name)
	}
	if len(c.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", c.ID)
	}
	if c.Width != 24 || c.Height != 34.5 || c.Depth != 24 {
		t.Errorf("unexpected default dimensions: %vx%vx%v", c.Width, c.Height, c.Depth)
	}
	if c.WallThickness != 0.75 {
		t.Errorf("expected 3/4 wall thickness, got %v", c.WallThickness)
	}
	if c.Construction != ConstructionFrameless {
		t.Errorf("expected frameless default, got %s", c.Construction)
	}
	if c.Material != MaterialPlywood {
		t.Errorf("expected plywood default, got %s", c.Material)
	}
	if c.Doors != 0 {
		t.Errorf("expected no doors by default, got %d", c.Doors)
	}
	if len(c.Drawers) != 0 {
		t.Errorf("expected no drawers by default, got %d", len(c.Drawers))
	}
	if !c.Toekick || c.ToekickHeight != 4 {
		t.Errorf("expected 4in toekick by default, got %v/%v", c.Toekick, c.ToekickHeight)
	}
	if c.Shelves != 1 {
		t.Errorf("expected 1 shelf by default, got %d", c.Shelves)
	}
	if !c.BackPanel {
		t.Error("expected back panel by default")
	}
}

func TestNewCabinetUniqueIDs(t *testing.T) {
	a := NewCabinet("A")
	b := NewCabinet("B")
	if a.ID == b.ID {
		t.Errorf("two cabinets share ID %q", a.ID)
	}
}

func TestInternalFloor(t *testing.T) {
	c := NewCabinet("X")
	if c.InternalFloor() != 4 {
		t.Errorf("expected internal floor at toekick height 4, got %v", c.InternalFloor())
	}
	c.Toekick = false
	if c.InternalFloor() != 0 {
		t.Errorf("expected internal floor 0 without toekick, got %v", c.InternalFloor())
	}
}

func TestDrawerStackTop(t *testing.T) {
	c := NewCabinet("X")
	if c.DrawerStackTop() != 0 {
		t.Errorf("expected 0 stack top with no drawers, got %v", c.DrawerStackTop())
	}

	// Order in the slice does not matter, only the highest top
	c.Drawers = []Drawer{
		NewDrawer(8, 10.25),
		NewDrawer(6, 0),
	}
	if c.DrawerStackTop() != 18.25 {
		t.Errorf("expected stack top 18.25, got %v", c.DrawerStackTop())
	}
}

func TestDrawerIndex(t *testing.T) {
	c := NewCabinet("X")
	d1 := NewDrawer(6, 0)
	d2 := NewDrawer(8, 6.125)
	c.Drawers = []Drawer{d1, d2}

	if i := c.DrawerIndex(d2.ID); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := c.DrawerIndex("nope"); i != -1 {
		t.Errorf("expected -1 for unknown drawer, got %d", i)
	}
}

func TestCabinetCloneIsIndependent(t *testing.T) {
	c := NewCabinet("X")
	c.Drawers = []Drawer{NewDrawer(6, 0)}
	c.DoorHandles = map[int]HandleSide{0: HandleLeft}

	clone := c.Clone()
	clone.Drawers[0].Height = 99
	clone.DoorHandles[0] = HandleRight
	clone.Name = "Y"

	if c.Drawers[0].Height != 6 {
		t.Error("clone mutation leaked into original drawers")
	}
	if c.DoorHandles[0] != HandleLeft {
		t.Error("clone mutation leaked into original handles")
	}
	if c.Name != "X" {
		t.Error("clone mutation leaked into original name")
	}
}

func TestDesignCloneIsIndependent(t *testing.T) {
	d := NewDesign()
	c := NewCabinet("X")
	c.Drawers = []Drawer{NewDrawer(6, 0)}
	d.Cabinets = append(d.Cabinets, c)

	clone := d.Clone()
	clone.Name = "Other"
	clone.Cabinets[0].Drawers[0].Height = 99
	clone.MaterialCosts[MaterialPlywood] = 1

	if d.Name != "Untitled" {
		t.Error("clone mutation leaked into original name")
	}
	if d.Cabinets[0].Drawers[0].Height != 6 {
		t.Error("clone mutation leaked into original cabinets")
	}
	if d.MaterialCosts[MaterialPlywood] != 85 {
		t.Error("clone mutation leaked into original price list")
	}
}

func TestDesignRemoveCabinet(t *testing.T) {
	d := NewDesign()
	a := NewCabinet("A")
	b := NewCabinet("B")
	d.Cabinets = append(d.Cabinets, a, b)

	if !d.RemoveCabinet(a.ID) {
		t.Fatal("expected removal of existing cabinet")
	}
	if len(d.Cabinets) != 1 || d.Cabinets[0].ID != b.ID {
		t.Errorf("unexpected cabinets after removal: %+v", d.Cabinets)
	}
	if d.RemoveCabinet("nope") {
		t.Error("expected false for unknown cabinet")
	}
}

func TestCabinetByID(t *testing.T) {
	d := NewDesign()
	c := NewCabinet("A")
	d.Cabinets = append(d.Cabinets, c)

	got := d.CabinetByID(c.ID)
	if got == nil {
		t.Fatal("expected cabinet pointer")
	}
	got.Width = 36
	if d.Cabinets[0].Width != 36 {
		t.Error("pointer should address the design's own slice")
	}
	if d.CabinetByID("nope") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestEnumValidity(t *testing.T) {
	valid := []bool{
		ConstructionFrameless.Valid(),
		ConstructionFaceFrame.Valid(),
		StyleFlat.Valid(),
		StyleGlass.Valid(),
		HandleLeft.Valid(),
		HingeSoftClose.Valid(),
		SlideUndermount.Valid(),
		PullKnob.Valid(),
	}
	for i, ok := range valid {
		if !ok {
			t.Errorf("case %d: expected valid", i)
		}
	}

	if Construction("plywood").Valid() {
		t.Error("unknown construction should be invalid")
	}
	if FaceStyle("curved").Valid() {
		t.Error("unknown face style should be invalid")
	}
	if HandleSide("front").Valid() {
		t.Error("unknown handle side should be invalid")
	}
	if HingeType("piano").Valid() {
		t.Error("unknown hinge should be invalid")
	}
	if SlideType("wooden").Valid() {
		t.Error("unknown slide should be invalid")
	}
	if PullType("rope").Valid() {
		t.Error("unknown pull should be invalid")
	}
}
