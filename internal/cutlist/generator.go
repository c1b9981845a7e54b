package cutlist

import (
	"fmt"
	"math"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// Generator expands cabinets into ordered cut-list entries.
type Generator struct {
	Styles model.StyleConfig
}

func New(styles model.StyleConfig) *Generator {
	return &Generator{Styles: styles}
}

// Generate expands every cabinet, in list order, into manufacturable
// parts. It is a pure function of its input: same cabinets in, same
// entries out, including the assembly sequence numbers, which run in a
// single pass across all cabinets and are never reused.
func (g *Generator) Generate(cabinets []model.Cabinet) []model.CutListEntry {
	b := &builder{styles: g.Styles, entries: []model.CutListEntry{}}
	for i := range cabinets {
		b.cabinet(&cabinets[i])
	}
	return b.entries
}

// builder accumulates entries for one generation pass. seq carries the
// assembly sequence across cabinets.
type builder struct {
	styles  model.StyleConfig
	cab     *model.Cabinet
	seq     int
	entries []model.CutListEntry
}

// add appends one entry with the next assembly sequence number.
func (b *builder) add(part string, qty int, w, h, thick float64, material string, grain model.Grain, banding, note string) {
	b.seq++
	b.entries = append(b.entries, model.CutListEntry{
		CabinetName: b.cab.Name,
		PartName:    part,
		Quantity:    qty,
		Width:       w,
		Height:      h,
		Thickness:   thick,
		Material:    material,
		Grain:       grain,
		Edgebanding: banding,
		Note:        note,
		Sequence:    b.seq,
	})
}

// banding passes the note through, or downgrades it to none when the
// cabinet has edgebanding switched off.
func (b *builder) banding(note string) string {
	if !b.cab.Edgebanding {
		return model.BandingNone
	}
	return note
}

// cabinet emits the full decomposition of one cabinet in assembly order:
// carcass, face frame, shelves, drawers, doors, hardware.
func (b *builder) cabinet(c *model.Cabinet) {
	b.cab = c
	t := c.WallThickness

	b.add("Side Panel", 2, c.Depth, c.Height, t, c.Material,
		model.GrainVertical, b.banding(model.BandingFrontEdge), "")
	if c.BackPanel {
		b.add("Back Panel", 1, c.Width, c.Height, b.styles.BackPanelThickness, c.Material,
			model.GrainVertical, model.BandingNone, "")
	}
	innerWidth := c.Width - 2*t
	b.add("Top Panel", 1, innerWidth, c.Depth, t, c.Material,
		model.GrainHorizontal, b.banding(model.BandingFrontEdge), "")
	b.add("Bottom Panel", 1, innerWidth, c.Depth, t, c.Material,
		model.GrainHorizontal, b.banding(model.BandingFrontEdge), "")

	if c.Construction == model.ConstructionFaceFrame {
		b.faceFrame(c)
	}

	if c.Shelves > 0 {
		b.add("Adjustable Shelf", c.Shelves, innerWidth, c.Depth-1, t, c.Material,
			model.GrainHorizontal, b.banding(model.BandingFrontEdge), "")
	}

	for i := range c.Drawers {
		b.drawer(c, i)
	}

	if c.Doors > 0 {
		b.doors(c)
	}

	b.hardware(c)
}

// faceFrame emits the hardwood frame overlaid on a face-frame box: two
// full-height stiles and two rails spanning between them.
func (b *builder) faceFrame(c *model.Cabinet) {
	fw := b.styles.FaceFrameWidth
	ft := b.styles.FaceFrameThickness
	b.add("Face Frame Stile", 2, fw, c.Height, ft, c.Material,
		model.GrainVertical, b.banding(model.BandingAllEdges), "")
	b.add("Face Frame Rail", 2, c.Width-2*fw, fw, ft, c.Material,
		model.GrainHorizontal, b.banding(model.BandingAllEdges), "")
}

// drawer emits the face and box parts for the drawer at index i. A
// non-positive face opening omits the face (the box still gets cut when
// its own dimensions work out); sub-parts squeezed to non-positive size
// are dropped individually.
func (b *builder) drawer(c *model.Cabinet, i int) {
	d := c.Drawers[i]
	n := i + 1
	openW := c.Width - b.styles.DrawerFaceInset
	openH := d.Height

	if openW > 0 && openH > 0 {
		if frame, ok := b.styles.DrawerFrames[c.DrawerStyle]; ok {
			b.frameParts(fmt.Sprintf("Drawer %d", n), 1, openW, openH, frame,
				c.Material, model.GrainHorizontal, false)
		} else {
			b.add(fmt.Sprintf("Drawer %d Front", n), 1, openW, openH, c.WallThickness,
				c.Material, model.GrainHorizontal, b.banding(model.BandingAllEdges), "")
		}
	}

	boxH := math.Min(b.styles.DrawerBoxMaxHeight, d.Height-1)
	boxW := openW - b.styles.DrawerBoxSlideClearance
	boxD := c.Depth - 2
	bt := b.styles.DrawerBoxThickness
	if boxH > 0 && boxD > 0 {
		b.add(fmt.Sprintf("Drawer %d Box Side", n), 2, boxD, boxH, bt,
			model.MaterialPlywood, model.GrainNone, model.BandingNone, "")
	}
	if boxH > 0 && boxW > 0 {
		b.add(fmt.Sprintf("Drawer %d Box Front/Back", n), 2, boxW, boxH, bt,
			model.MaterialPlywood, model.GrainNone, model.BandingNone, "")
	}
	if boxW > 0 && boxD > 0 {
		b.add(fmt.Sprintf("Drawer %d Box Bottom", n), 1, boxW, boxD,
			b.styles.DrawerBoxBottomThickness,
			model.MaterialPlywood, model.GrainNone, model.BandingNone, "")
	}
}

// doors emits the face parts for all doors at once, quantities multiplied
// by the door count. A non-positive opening omits them entirely.
func (b *builder) doors(c *model.Cabinet) {
	openW := b.styles.DoorOpeningWidth(*c)
	openH := b.styles.DoorOpeningHeight(*c)
	if openW <= 0 || openH <= 0 {
		return
	}

	if frame, ok := b.styles.DoorFrames[c.DoorStyle]; ok {
		b.frameParts("Door", c.Doors, openW, openH, frame,
			c.Material, model.GrainVertical, c.DoorStyle == model.StyleGlass)
		return
	}
	b.add("Door Front", c.Doors, openW, openH, c.WallThickness,
		c.Material, model.GrainVertical, b.banding(model.BandingAllEdges), "")
}

// frameParts emits the rail/stile/panel decomposition of a framed face:
// two rails and two stiles per face plus one center panel captured in the
// frame groove. glass swaps the panel for a pane.
func (b *builder) frameParts(prefix string, count int, openW, openH float64, frame model.FrameSpec, material string, panelGrain model.Grain, glass bool) {
	railW := openW - 2*frame.StileWidth + 2*frame.PanelInset
	panelW := railW
	panelH := openH - 2*frame.RailWidth + 2*frame.PanelInset

	if railW > 0 {
		b.add(prefix+" Rail", 2*count, railW, frame.RailWidth, b.cab.WallThickness,
			material, model.GrainHorizontal, b.banding(model.BandingAllEdges), "")
	}
	if openH > 0 {
		b.add(prefix+" Stile", 2*count, frame.StileWidth, openH, b.cab.WallThickness,
			material, model.GrainVertical, b.banding(model.BandingAllEdges), "")
	}
	if panelW <= 0 || panelH <= 0 {
		return
	}
	if glass {
		b.add(prefix+" Glass Panel", count, panelW, panelH, b.styles.GlassThickness,
			model.MaterialGlass, model.GrainNone, model.BandingNone, "tempered")
		return
	}
	b.add(prefix+" Panel", count, panelW, panelH, frame.PanelThickness,
		material, panelGrain, model.BandingNone, "")
}

// hardware emits the purchase lines. These carry zero dimensions and are
// skipped by both aggregations.
func (b *builder) hardware(c *model.Cabinet) {
	if c.Doors > 0 {
		b.add("Hinge", 2*c.Doors, 0, 0, 0, model.MaterialHardware,
			model.GrainNone, model.BandingNone, string(c.HingeType))
		b.add("Door Pull", c.Doors, 0, 0, 0, model.MaterialHardware,
			model.GrainNone, model.BandingNone, pullNote(c))
	}
	if len(c.Drawers) > 0 {
		b.add("Drawer Slide", 2*len(c.Drawers), 0, 0, 0, model.MaterialHardware,
			model.GrainNone, model.BandingNone, string(c.SlideType))
		b.add("Drawer Pull", len(c.Drawers), 0, 0, 0, model.MaterialHardware,
			model.GrainNone, model.BandingNone, string(c.PullType))
	}
}

// pullNote names the pull type and, when door handle sides are recorded,
// how many pulls land on each side.
func pullNote(c *model.Cabinet) string {
	note := string(c.PullType)
	if len(c.DoorHandles) == 0 {
		return note
	}
	var left, right int
	for _, side := range c.DoorHandles {
		switch side {
		case model.HandleLeft:
			left++
		case model.HandleRight:
			right++
		}
	}
	return fmt.Sprintf("%s, left %d right %d", note, left, right)
}
