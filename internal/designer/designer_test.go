package designer

import (
	"errors"
	"testing"

	"github.com/piwi3910/cabinetforge/internal/model"
)

func newWithCabinet(t *testing.T) (*Designer, model.Cabinet) {
	t.Helper()
	ds := New()
	c, err := ds.AddCabinet()
	if err != nil {
		t.Fatalf("AddCabinet: %v", err)
	}
	return ds, c
}

func TestNewDesigner(t *testing.T) {
	ds := New()

	d := ds.Design()
	if d.Name != "Untitled" {
		t.Errorf("expected Untitled, got %q", d.Name)
	}
	if len(d.Cabinets) != 0 {
		t.Errorf("expected no cabinets, got %d", len(d.Cabinets))
	}
	if ds.CanUndo() {
		t.Error("fresh designer should not be undoable")
	}
	if got := ds.HistoryIndex(); got != 0 {
		t.Errorf("expected history index 0, got %d", got)
	}
	if labels := ds.HistoryLabels(); len(labels) != 1 || labels[0] != "Open design" {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestNewFromDesignClones(t *testing.T) {
	d := model.NewDesign()
	d.Cabinets = append(d.Cabinets, model.NewCabinet("Wall"))

	ds := NewFromDesign(d)
	d.Cabinets[0].Width = 99

	if got := ds.Design().Cabinets[0].Width; got == 99 {
		t.Error("designer shares state with the input design")
	}
}

func TestSetProjectName(t *testing.T) {
	ds := New()
	if err := ds.SetProjectName("Kitchen Remodel"); err != nil {
		t.Fatalf("SetProjectName: %v", err)
	}
	if got := ds.Design().Name; got != "Kitchen Remodel" {
		t.Errorf("expected Kitchen Remodel, got %q", got)
	}

	if err := ds.SetProjectName(""); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
	if got := ds.Design().Name; got != "Kitchen Remodel" {
		t.Errorf("rejected rename changed the name to %q", got)
	}
}

func TestSetMaterialCost(t *testing.T) {
	ds := New()
	if err := ds.SetMaterialCost("walnut ply", 140); err != nil {
		t.Fatalf("SetMaterialCost: %v", err)
	}
	if got := ds.Design().MaterialCosts["walnut ply"]; got != 140 {
		t.Errorf("expected 140, got %v", got)
	}

	if err := ds.SetMaterialCost("", 10); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
	if err := ds.SetMaterialCost("mdf", -1); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}
}

func TestSetLaborRate(t *testing.T) {
	ds := New()
	if err := ds.SetLaborRate(60); err != nil {
		t.Fatalf("SetLaborRate: %v", err)
	}
	if got := ds.Design().LaborRate; got != 60 {
		t.Errorf("expected 60, got %v", got)
	}

	if err := ds.SetLaborRate(-5); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}
	if got := ds.Design().LaborRate; got != 60 {
		t.Errorf("rejected rate changed the value to %v", got)
	}
}

// Rejections must not advance the timeline.
func TestRejectedMutationPushesNothing(t *testing.T) {
	ds, c := newWithCabinet(t)
	before := len(ds.HistoryLabels())

	if _, err := ds.ResizeCabinet(c.ID, -1, 30, 24); err == nil {
		t.Fatal("expected a rejection")
	}

	if got := len(ds.HistoryLabels()); got != before {
		t.Errorf("expected %d history entries, got %d", before, got)
	}
}

func TestUndoRedo(t *testing.T) {
	ds, c := newWithCabinet(t)
	if err := ds.RenameCabinet(c.ID, "Sink Base"); err != nil {
		t.Fatalf("RenameCabinet: %v", err)
	}

	if !ds.Undo() {
		t.Fatal("undo failed")
	}
	if got := ds.Design().Cabinets[0].Name; got != "Cabinet 1" {
		t.Errorf("expected Cabinet 1 after undo, got %q", got)
	}

	if !ds.Redo() {
		t.Fatal("redo failed")
	}
	if got := ds.Design().Cabinets[0].Name; got != "Sink Base" {
		t.Errorf("expected Sink Base after redo, got %q", got)
	}
	if ds.Redo() {
		t.Error("redo past the tail should fail")
	}
}

func TestUndoStopsAtOpen(t *testing.T) {
	ds, _ := newWithCabinet(t)

	if !ds.Undo() {
		t.Fatal("undo failed")
	}
	if len(ds.Design().Cabinets) != 0 {
		t.Error("expected the empty opening state")
	}
	if ds.Undo() {
		t.Error("undo past the opening snapshot should fail")
	}
}

func TestUndoClearsDanglingSelection(t *testing.T) {
	ds, c := newWithCabinet(t)
	if err := ds.SelectCabinet(c.ID); err != nil {
		t.Fatalf("SelectCabinet: %v", err)
	}

	ds.Undo() // back to the empty design

	if got := ds.Scene().SelectedCabinet; got != "" {
		t.Errorf("expected cleared selection, got %q", got)
	}
}

func TestRedoClampsDoorSelection(t *testing.T) {
	ds, c := newWithCabinet(t)
	if err := ds.SetDoorCount(c.ID, 2); err != nil {
		t.Fatalf("SetDoorCount: %v", err)
	}
	if err := ds.SelectCabinet(c.ID); err != nil {
		t.Fatalf("SelectCabinet: %v", err)
	}
	if err := ds.SelectDoor(1); err != nil {
		t.Fatalf("SelectDoor: %v", err)
	}

	ds.Undo() // back to zero doors

	scene := ds.Scene()
	if scene.SelectedCabinet != c.ID {
		t.Errorf("cabinet selection should survive, got %q", scene.SelectedCabinet)
	}
	if scene.SelectedDoor != -1 {
		t.Errorf("expected door selection cleared, got %d", scene.SelectedDoor)
	}
}

func TestJumpTo(t *testing.T) {
	ds, c := newWithCabinet(t)
	ds.RenameCabinet(c.ID, "A")
	ds.RenameCabinet(c.ID, "B")

	if !ds.JumpTo(1) {
		t.Fatal("jump failed")
	}
	if got := ds.Design().Cabinets[0].Name; got != "Cabinet 1" {
		t.Errorf("expected Cabinet 1, got %q", got)
	}
	if ds.JumpTo(99) {
		t.Error("jump out of range should fail")
	}
	if !ds.CanRedo() {
		t.Error("expected redo available after jumping back")
	}
}

func TestSelectDrawerRequiresCabinet(t *testing.T) {
	ds := New()
	if err := ds.SelectDrawer("whatever"); !errors.Is(err, ErrCabinetNotFound) {
		t.Errorf("expected ErrCabinetNotFound, got %v", err)
	}
}

func TestSelectDoorBounds(t *testing.T) {
	ds, c := newWithCabinet(t)
	ds.SetDoorCount(c.ID, 1)
	ds.SelectCabinet(c.ID)

	if err := ds.SelectDoor(0); err != nil {
		t.Fatalf("SelectDoor: %v", err)
	}
	if err := ds.SelectDoor(1); !errors.Is(err, ErrDoorIndex) {
		t.Errorf("expected ErrDoorIndex, got %v", err)
	}
	if err := ds.SelectDoor(-1); err != nil {
		t.Fatalf("clearing selection: %v", err)
	}
	if got := ds.Scene().SelectedDoor; got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestSelectingOtherCabinetClearsFinerSelection(t *testing.T) {
	ds, first := newWithCabinet(t)
	ds.SetDoorCount(first.ID, 1)
	second, err := ds.AddCabinet()
	if err != nil {
		t.Fatalf("AddCabinet: %v", err)
	}

	ds.SelectCabinet(first.ID)
	ds.SelectDoor(0)
	ds.SelectCabinet(second.ID)

	scene := ds.Scene()
	if scene.SelectedCabinet != second.ID {
		t.Errorf("expected %s selected, got %q", second.ID, scene.SelectedCabinet)
	}
	if scene.SelectedDoor != -1 {
		t.Errorf("expected door selection cleared, got %d", scene.SelectedDoor)
	}
}

func TestHideShow(t *testing.T) {
	ds := New()
	ds.Hide("countertop")
	ds.Hide("toekick")
	ds.Hide("countertop") // repeat is a no-op

	got := ds.HiddenElements()
	want := []string{"countertop", "toekick"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}

	ds.Show("toekick")
	if got := ds.HiddenElements(); len(got) != 1 || got[0] != "countertop" {
		t.Errorf("expected [countertop], got %v", got)
	}
}

func TestSceneIsDetached(t *testing.T) {
	ds, c := newWithCabinet(t)
	ds.SelectCabinet(c.ID)

	scene := ds.Scene()
	scene.Cabinets[0].Width = 1

	if got := ds.Design().Cabinets[0].Width; got == 1 {
		t.Error("scene shares cabinet state with the designer")
	}
}

func TestDerivedViews(t *testing.T) {
	ds, c := newWithCabinet(t)
	ds.SetShelves(c.ID, 0)
	ds.SetBackPanel(c.ID, false)

	entries := ds.CutList()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries for a bare box, got %d", len(entries))
	}

	usages := ds.Materials()
	if len(usages) != 1 {
		t.Fatalf("expected one material, got %d", len(usages))
	}
	if usages[0].AreaSqFt != 19 {
		t.Errorf("expected 19 sqft, got %v", usages[0].AreaSqFt)
	}
	if usages[0].Sheets != 1 {
		t.Errorf("expected 1 sheet, got %d", usages[0].Sheets)
	}

	groups := ds.SheetPlan()
	if len(groups) != 1 {
		t.Fatalf("expected one sheet group, got %d", len(groups))
	}
	if groups[0].RawArea != 2736 {
		t.Errorf("expected raw area 2736, got %v", groups[0].RawArea)
	}

	if banding := ds.Edgebanding(); len(banding) != 1 {
		t.Errorf("expected one banding total, got %d", len(banding))
	}
}
