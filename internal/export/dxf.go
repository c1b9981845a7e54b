package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/cabinetforge/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// Drawing layout constants, all in inches.
const (
	dxfRowWidth    = 96.0 // parts wrap to a new row past this x
	dxfPartGap     = 2.0
	dxfTextHeight  = 1.1
	dxfGrooveInset = 0.5 // drawer bottom groove height above the box wall edge
)

// guideLayer carries dashed reference geometry rather than cut outlines.
const guideLayer = "GUIDE"

// dxfLayerColors cycles as material layers are created.
var dxfLayerColors = []color.ColorNumber{
	color.Red, color.Yellow, color.Green, color.Cyan,
	color.Blue, color.Magenta, color.White,
}

// dxfPart is one physical piece to draw, expanded from a cut-list entry.
type dxfPart struct {
	Cabinet  string
	Part     string
	Material string
	Width    float64 // in
	Height   float64 // in
	Groove   bool    // drawer box wall, draw the bottom groove reference
}

// ExportDXF writes the cut parts as a flat DXF drawing: one rectangle per
// physical piece, labeled, laid out in rows on a layer per material. This
// is a handoff drawing for CAM software, not a nested sheet layout. Glass
// panes and hardware are skipped along with anything dimensionless.
func ExportDXF(path string, entries []model.CutListEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no cut list entries to export")
	}

	parts := collectDXFParts(entries)
	if len(parts) == 0 {
		return fmt.Errorf("no cut parts to draw")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(guideLayer, color.White, table.LT_HIDDEN, false); err != nil {
		return err
	}

	layers := map[string]bool{}
	var x, y, rowH float64
	for _, p := range parts {
		layer := layerName(p.Material)
		if !layers[layer] {
			cl := dxfLayerColors[len(layers)%len(dxfLayerColors)]
			if _, err := d.AddLayer(layer, cl, table.LT_CONTINUOUS, true); err != nil {
				return err
			}
			layers[layer] = true
		} else if err := d.ChangeLayer(layer); err != nil {
			return err
		}

		if x > 0 && x+p.Width > dxfRowWidth {
			x = 0
			y += rowH + dxfPartGap
			rowH = 0
		}

		if err := drawRect(d, x, y, p.Width, p.Height); err != nil {
			return err
		}
		// The name line is dropped on parts too short to hold both lines.
		if p.Height >= 2*dxfTextHeight+1.2 {
			name := fmt.Sprintf("%s - %s", p.Cabinet, p.Part)
			if _, err := d.Text(name, x+0.4, y+p.Height-dxfTextHeight-0.4, 0, dxfTextHeight); err != nil {
				return err
			}
		}
		dims := fmt.Sprintf("%s x %s", model.DecimalToFraction(p.Width), model.DecimalToFraction(p.Height))
		if _, err := d.Text(dims, x+0.4, y+0.4, 0, dxfTextHeight); err != nil {
			return err
		}

		if p.Groove {
			if err := d.ChangeLayer(guideLayer); err != nil {
				return err
			}
			if _, err := d.Line(x, y+dxfGrooveInset, 0, x+p.Width, y+dxfGrooveInset, 0); err != nil {
				return err
			}
		}

		x += p.Width + dxfPartGap
		if p.Height > rowH {
			rowH = p.Height
		}
	}

	return d.SaveAs(path)
}

// collectDXFParts expands quantities into per-piece draw jobs, skipping
// hardware, glass, and dimensionless entries.
func collectDXFParts(entries []model.CutListEntry) []dxfPart {
	var parts []dxfPart
	for _, e := range entries {
		if e.IsHardware() || e.Material == model.MaterialGlass {
			continue
		}
		if e.Width <= 0 || e.Height <= 0 {
			continue
		}
		groove := strings.Contains(e.PartName, "Box Side") ||
			strings.Contains(e.PartName, "Box Front/Back")
		for n := 0; n < e.Quantity; n++ {
			parts = append(parts, dxfPart{
				Cabinet:  e.CabinetName,
				Part:     e.PartName,
				Material: e.Material,
				Width:    e.Width,
				Height:   e.Height,
				Groove:   groove,
			})
		}
	}
	return parts
}

// drawRect draws an axis-aligned rectangle as four lines on the current
// layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	sides := [4][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, s := range sides {
		if _, err := d.Line(s[0], s[1], 0, s[2], s[3], 0); err != nil {
			return err
		}
	}
	return nil
}

// layerName maps a material to a DXF layer name, uppercase with anything
// outside A-Z and 0-9 folded to underscores.
func layerName(material string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(material) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
