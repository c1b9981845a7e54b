// Package export renders a design's cut list and its summaries to
// shareable file formats.
package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cabinetforge/internal/cutlist"
	"github.com/piwi3910/cabinetforge/internal/model"
)

// ReportOptions controls how measurements and money are rendered in the
// generated documents. The zero value renders measurements in both
// notations and prices in dollars.
type ReportOptions struct {
	MeasureMode model.MeasureMode
	Currency    string
}

func (o ReportOptions) currency() string {
	if o.Currency == "" {
		return "$"
	}
	return o.Currency
}

// LaborHoursPerCabinet is the build and assembly time allowance used for
// the labor line of the cost summary.
const LaborHoursPerCabinet = 2.0

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
	usableWidth  = pageWidth - marginLeft - marginRight
)

// Cut-list table columns (widths in mm, totalling the usable width).
var cutListColumns = []struct {
	title string
	width float64
}{
	{"#", 10},
	{"Cabinet", 36},
	{"Part", 46},
	{"Qty", 10},
	{"Width", 24},
	{"Height", 24},
	{"Thick", 18},
	{"Material", 26},
	{"Grain", 18},
	{"Edgeband", 24},
	{"Notes", 31},
}

// ExportPDF generates the shop report for a design: the full cut list
// table, the per-material summary, the sheet requirements, and a cost
// estimate using the design's labor rate.
func ExportPDF(path string, design model.Design, entries []model.CutListEntry, opts ReportOptions) error {
	if len(entries) == 0 {
		return fmt.Errorf("no cut list entries to export")
	}

	usages := cutlist.CalculateMaterials(entries, design.MaterialCosts)
	groups := cutlist.SheetOptimization(entries)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	y := renderReportHeader(pdf, design, entries)
	y = drawCutTableHeader(pdf, y)
	for i, e := range entries {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = drawCutTableHeader(pdf, marginTop)
		}
		drawCutRow(pdf, y, i, e, opts)
		y += rowHeight
	}

	y = renderMaterialsSection(pdf, y+8, usages, opts)
	y = renderSheetSection(pdf, y+8, groups)
	renderCostSummary(pdf, y+8, design, usages, opts)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(usableWidth, 4, "Generated by CabinetForge - Parametric Cabinet Designer", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderReportHeader draws the title block and returns the y below it.
func renderReportHeader(pdf *fpdf.Fpdf, design model.Design, entries []model.CutListEntry) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(usableWidth, 8, fmt.Sprintf("Cut List: %s", design.Name), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+8)
	stats := fmt.Sprintf("Cabinets: %d | Parts: %d | Generated: %s",
		len(design.Cabinets), len(entries), time.Now().Format("2006-01-02"))
	pdf.CellFormat(usableWidth, 5, stats, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+15, pageWidth-marginRight, marginTop+15)

	return marginTop + 18
}

// drawCutTableHeader draws the column headers and returns the y below them.
func drawCutTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetTextColor(0, 0, 0)
	x := marginLeft
	for _, col := range cutListColumns {
		pdf.SetXY(x, y)
		pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "C", true, 0, "")
		x += col.width
	}
	return y + rowHeight
}

// drawCutRow draws one cut-list entry with alternating row shading.
func drawCutRow(pdf *fpdf.Fpdf, y float64, i int, e model.CutListEntry, opts ReportOptions) {
	if i%2 == 0 {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.SetFont("Helvetica", "", 7)

	cells := []string{
		fmt.Sprintf("%d", e.Sequence),
		e.CabinetName,
		e.PartName,
		fmt.Sprintf("%d", e.Quantity),
		dim(e.Width, opts.MeasureMode),
		dim(e.Height, opts.MeasureMode),
		dim(e.Thickness, opts.MeasureMode),
		e.Material,
		string(e.Grain),
		e.Edgebanding,
		e.Note,
	}

	x := marginLeft
	for j, cell := range cells {
		align := "L"
		if j == 0 || j == 3 {
			align = "C"
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(cutListColumns[j].width, rowHeight, cell, "1", 0, align, true, 0, "")
		x += cutListColumns[j].width
	}
}

// dim renders a part dimension, or a dash for dimensionless hardware.
func dim(v float64, mode model.MeasureMode) string {
	if v <= 0 {
		return "-"
	}
	return model.FormatMeasurement(v, mode)
}

// renderMaterialsSection draws the per-material cost table.
func renderMaterialsSection(pdf *fpdf.Fpdf, y float64, usages []model.MaterialUsage, opts ReportOptions) float64 {
	y = ensureSpace(pdf, y, float64(len(usages)+3)*rowHeight+9)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Materials", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{60, 40, 30, 40}
	headers := []string{"Material", "Area (sq ft)", "Sheets", "Cost"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, u := range usages {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{
			u.Material,
			fmt.Sprintf("%.1f", u.AreaSqFt),
			fmt.Sprintf("%d", u.Sheets),
			fmt.Sprintf("%s%.2f", opts.currency(), u.Cost),
		}
		x = marginLeft
		for j, cell := range cells {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "L", true, 0, "")
			x += colWidths[j]
		}
		y += rowHeight
	}
	return y
}

// renderSheetSection draws the waste-adjusted sheet requirements table.
func renderSheetSection(pdf *fpdf.Fpdf, y float64, groups []model.SheetGroup) float64 {
	y = ensureSpace(pdf, y, float64(len(groups)+3)*rowHeight+9)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Sheet Requirements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 25, 20, 35, 25, 25}
	headers := []string{"Material", "Thick", "Parts", "Raw Area (sq ft)", "Sheets", "Waste"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, g := range groups {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{
			g.Material,
			model.DecimalToFraction(g.Thickness),
			fmt.Sprintf("%d", len(g.Instances)),
			fmt.Sprintf("%.1f", g.RawArea/144),
			fmt.Sprintf("%d", g.Sheets),
			fmt.Sprintf("%.1f%%", g.WastePercent),
		}
		x = marginLeft
		for j, cell := range cells {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "L", true, 0, "")
			x += colWidths[j]
		}
		y += rowHeight
	}
	return y
}

// renderCostSummary draws the material, labor, and total lines.
func renderCostSummary(pdf *fpdf.Fpdf, y float64, design model.Design, usages []model.MaterialUsage, opts ReportOptions) {
	y = ensureSpace(pdf, y, 4*7+9)

	materials := cutlist.TotalMaterialCost(usages)
	hours := float64(len(design.Cabinets)) * LaborHoursPerCabinet
	labor := hours * design.LaborRate

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Cost Estimate", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Material cost", fmt.Sprintf("%s%.2f", opts.currency(), materials)},
		{fmt.Sprintf("Labor (%.0f hrs at %s%.2f/hr)", hours, opts.currency(), design.LaborRate),
			fmt.Sprintf("%s%.2f", opts.currency(), labor)},
		{"Estimated total", fmt.Sprintf("%s%.2f", opts.currency(), materials+labor)},
	}

	for i, item := range items {
		style := ""
		if i == len(items)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(80, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		y += 7
	}
}

// ensureSpace starts a new page when fewer than needed mm remain, and
// returns the y to draw at.
func ensureSpace(pdf *fpdf.Fpdf, y, needed float64) float64 {
	if y+needed > pageHeight-marginBottom {
		pdf.AddPage()
		return marginTop
	}
	return y
}
