package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cabinetforge/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each part label's QR code. One
// label is printed per physical part, so a quantity-three entry yields
// three labels distinguished by Copy.
type LabelInfo struct {
	Cabinet   string      `json:"cabinet"`
	Part      string      `json:"part"`
	Copy      int         `json:"copy"`
	Copies    int         `json:"copies"`
	Width     float64     `json:"width_in"`
	Height    float64     `json:"height_in"`
	Thickness float64     `json:"thickness_in"`
	Material  string      `json:"material"`
	Grain     model.Grain `json:"grain"`
	Sequence  int         `json:"sequence"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for every physical cut
// part. Each label carries the part name, dimensions, and a QR code
// encoding the part metadata as JSON. Labels are laid out on a standard
// label sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
// Hardware entries have nothing to stick a label on and are skipped.
func ExportLabels(path string, entries []model.CutListEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no cut list entries to generate labels for")
	}

	labels := CollectLabelInfos(entries)
	if len(labels) == 0 {
		return fmt.Errorf("no cut parts to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Part, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%d_%d", info.Sequence, info.Copy)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Part name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate name if too long
	name := fmt.Sprintf("%s - %s", info.Cabinet, info.Part)
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	// Dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s x %s x %s",
		model.DecimalToFraction(info.Width),
		model.DecimalToFraction(info.Height),
		model.DecimalToFraction(info.Thickness))
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Material and grain
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := info.Material
	if info.Grain != model.GrainNone {
		detail = fmt.Sprintf("%s, %s grain", info.Material, info.Grain)
	}
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	// Copy indicator for multi-part entries
	if info.Copies > 1 {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(textW, 3, fmt.Sprintf("Copy %d of %d", info.Copy, info.Copies), "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos expands cut-list entries into one label per physical
// part, for use in testing or alternative export formats. Hardware
// entries are excluded.
func CollectLabelInfos(entries []model.CutListEntry) []LabelInfo {
	var labels []LabelInfo
	for _, e := range entries {
		if e.IsHardware() {
			continue
		}
		for n := 1; n <= e.Quantity; n++ {
			labels = append(labels, LabelInfo{
				Cabinet:   e.CabinetName,
				Part:      e.PartName,
				Copy:      n,
				Copies:    e.Quantity,
				Width:     e.Width,
				Height:    e.Height,
				Thickness: e.Thickness,
				Material:  e.Material,
				Grain:     e.Grain,
				Sequence:  e.Sequence,
			})
		}
	}
	return labels
}
