package designer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/piwi3910/cabinetforge/internal/cutlist"
	"github.com/piwi3910/cabinetforge/internal/history"
	"github.com/piwi3910/cabinetforge/internal/model"
)

// Mutation rejections. A rejected mutation leaves the design untouched;
// callers match the cause with errors.Is and display the message as-is.
var (
	ErrCabinetNotFound = errors.New("cabinet not found")
	ErrDrawerNotFound  = errors.New("drawer not found")
	ErrDoorCount       = errors.New("door count exceeds the maximum for this width")
	ErrDoorIndex       = errors.New("door index out of range")
	ErrDrawerHeight    = errors.New("drawer height below the 2 inch minimum")
	ErrDrawerPosition  = errors.New("drawer does not fit inside the cabinet")
	ErrDimension       = errors.New("dimension must be positive")
	ErrGlassDrawers    = errors.New("glass is a door style, not a drawer style")
	ErrInvalidOption   = errors.New("unknown option value")
)

// minDrawerHeight is the smallest usable drawer face in inches.
const minDrawerHeight = 2.0

// Designer is the single logical writer over a design. Every mutation
// validates against the current state, applies to a fresh clone, and
// records the result in the undo timeline; derived views are recomputed
// from the current state whenever asked. It also carries the transient
// selection and visibility state the renderer consumes.
type Designer struct {
	design model.Design
	styles model.StyleConfig
	log    *history.History

	selectedCabinet string
	selectedDrawer  string
	selectedDoor    int
	hidden          map[string]bool
}

// New creates a designer over an empty design.
func New() *Designer {
	return NewFromDesign(model.NewDesign())
}

// NewFromDesign creates a designer over an existing design, typically one
// loaded from disk. The input is cloned and recorded as the first
// snapshot, which undo treats as the floor.
func NewFromDesign(d model.Design) *Designer {
	ds := &Designer{
		design:       d.Clone(),
		styles:       model.DefaultStyleConfig(),
		log:          history.New(),
		selectedDoor: -1,
		hidden:       map[string]bool{},
	}
	ds.log.Push(ds.design, "Open design")
	return ds
}

// Styles returns the construction constant table in use.
func (ds *Designer) Styles() model.StyleConfig {
	return ds.styles.Clone()
}

// Design returns a clone of the current design, the snapshot shape the
// persistence layer saves and loads.
func (ds *Designer) Design() model.Design {
	return ds.design.Clone()
}

// mutate applies fn to a clone of the design. On success the clone
// becomes current and is recorded under label; on failure the prior
// state stays in place and the error is returned untouched.
func (ds *Designer) mutate(label string, fn func(*model.Design) error) error {
	next := ds.design.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	ds.design = next
	ds.log.Push(next, label)
	return nil
}

// cabinetIn resolves a cabinet id inside a cloned design.
func cabinetIn(d *model.Design, id string) (*model.Cabinet, error) {
	c := d.CabinetByID(id)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCabinetNotFound, id)
	}
	return c, nil
}

// SetProjectName renames the design.
func (ds *Designer) SetProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty project name", ErrInvalidOption)
	}
	return ds.mutate("Rename project", func(d *model.Design) error {
		d.Name = name
		return nil
	})
}

// SetMaterialCost sets the per-sheet price for a material key.
func (ds *Designer) SetMaterialCost(material string, cost float64) error {
	if material == "" {
		return fmt.Errorf("%w: empty material", ErrInvalidOption)
	}
	if cost < 0 {
		return fmt.Errorf("%w: negative sheet price", ErrDimension)
	}
	return ds.mutate("Set material cost", func(d *model.Design) error {
		if d.MaterialCosts == nil {
			d.MaterialCosts = map[string]float64{}
		}
		d.MaterialCosts[material] = cost
		return nil
	})
}

// SetLaborRate sets the hourly shop rate.
func (ds *Designer) SetLaborRate(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("%w: negative labor rate", ErrDimension)
	}
	return ds.mutate("Set labor rate", func(d *model.Design) error {
		d.LaborRate = rate
		return nil
	})
}

// Undo steps back one snapshot. Returns false at the floor.
func (ds *Designer) Undo() bool {
	d, ok := ds.log.Undo()
	if !ok {
		return false
	}
	ds.install(d)
	return true
}

// Redo steps forward one snapshot. Returns false at the tail.
func (ds *Designer) Redo() bool {
	d, ok := ds.log.Redo()
	if !ok {
		return false
	}
	ds.install(d)
	return true
}

// JumpTo moves to an arbitrary snapshot index. Returns false when the
// index is out of range.
func (ds *Designer) JumpTo(index int) bool {
	d, ok := ds.log.JumpTo(index)
	if !ok {
		return false
	}
	ds.install(d)
	return true
}

func (ds *Designer) CanUndo() bool { return ds.log.CanUndo() }
func (ds *Designer) CanRedo() bool { return ds.log.CanRedo() }

// HistoryLabels returns the timeline labels, oldest first.
func (ds *Designer) HistoryLabels() []string { return ds.log.Labels() }

// HistoryIndex returns the cursor position in the timeline.
func (ds *Designer) HistoryIndex() int { return ds.log.Index() }

// install replaces the current design after a history move and drops any
// selection that no longer resolves.
func (ds *Designer) install(d model.Design) {
	ds.design = d
	if ds.selectedCabinet == "" {
		return
	}
	c := ds.design.CabinetByID(ds.selectedCabinet)
	if c == nil {
		ds.ClearSelection()
		return
	}
	if ds.selectedDrawer != "" && c.DrawerIndex(ds.selectedDrawer) < 0 {
		ds.selectedDrawer = ""
	}
	if ds.selectedDoor >= c.Doors {
		ds.selectedDoor = -1
	}
}

// SelectCabinet marks a cabinet as selected for the renderer and editor
// panes. Selecting a different cabinet clears the finer selections.
func (ds *Designer) SelectCabinet(id string) error {
	if ds.design.CabinetByID(id) == nil {
		return fmt.Errorf("%w: %s", ErrCabinetNotFound, id)
	}
	if ds.selectedCabinet != id {
		ds.selectedDrawer = ""
		ds.selectedDoor = -1
	}
	ds.selectedCabinet = id
	return nil
}

// SelectDrawer marks a drawer within the selected cabinet.
func (ds *Designer) SelectDrawer(drawerID string) error {
	c := ds.design.CabinetByID(ds.selectedCabinet)
	if c == nil {
		return fmt.Errorf("%w: no cabinet selected", ErrCabinetNotFound)
	}
	if c.DrawerIndex(drawerID) < 0 {
		return fmt.Errorf("%w: %s", ErrDrawerNotFound, drawerID)
	}
	ds.selectedDrawer = drawerID
	return nil
}

// SelectDoor marks a door index within the selected cabinet. A negative
// index clears the door selection.
func (ds *Designer) SelectDoor(index int) error {
	if index < 0 {
		ds.selectedDoor = -1
		return nil
	}
	c := ds.design.CabinetByID(ds.selectedCabinet)
	if c == nil {
		return fmt.Errorf("%w: no cabinet selected", ErrCabinetNotFound)
	}
	if index >= c.Doors {
		return fmt.Errorf("%w: %d", ErrDoorIndex, index)
	}
	ds.selectedDoor = index
	return nil
}

// ClearSelection drops all selection state.
func (ds *Designer) ClearSelection() {
	ds.selectedCabinet = ""
	ds.selectedDrawer = ""
	ds.selectedDoor = -1
}

// Hide adds an element key to the hidden set consumed by the renderer.
func (ds *Designer) Hide(key string) {
	ds.hidden[key] = true
}

// Show removes an element key from the hidden set.
func (ds *Designer) Show(key string) {
	delete(ds.hidden, key)
}

// HiddenElements returns the hidden keys in sorted order.
func (ds *Designer) HiddenElements() []string {
	keys := make([]string, 0, len(ds.hidden))
	for k := range ds.hidden {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Scene is the read-only view handed to the renderer: the cabinet list
// plus the transient selection and visibility state. The renderer must
// not mutate it; everything is cloned.
type Scene struct {
	Cabinets        []model.Cabinet
	SelectedCabinet string
	SelectedDrawer  string
	SelectedDoor    int
	Hidden          []string
}

// Scene snapshots the current state for rendering.
func (ds *Designer) Scene() Scene {
	cabinets := make([]model.Cabinet, len(ds.design.Cabinets))
	for i, c := range ds.design.Cabinets {
		cabinets[i] = c.Clone()
	}
	return Scene{
		Cabinets:        cabinets,
		SelectedCabinet: ds.selectedCabinet,
		SelectedDrawer:  ds.selectedDrawer,
		SelectedDoor:    ds.selectedDoor,
		Hidden:          ds.HiddenElements(),
	}
}

// CutList expands the current cabinets into the ordered cut list.
func (ds *Designer) CutList() []model.CutListEntry {
	return cutlist.New(ds.styles).Generate(ds.design.Cabinets)
}

// Materials aggregates the current cut list into per-material costs.
func (ds *Designer) Materials() []model.MaterialUsage {
	return cutlist.CalculateMaterials(ds.CutList(), ds.design.MaterialCosts)
}

// SheetPlan groups the current cut list into the shop-floor sheet view.
func (ds *Designer) SheetPlan() []model.SheetGroup {
	return cutlist.SheetOptimization(ds.CutList())
}

// Edgebanding totals the banding tape for the current cut list.
func (ds *Designer) Edgebanding() []model.EdgebandingUsage {
	return cutlist.CalculateEdgebanding(ds.CutList())
}
