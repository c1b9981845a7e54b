package export

import (
	"fmt"

	"github.com/piwi3910/cabinetforge/internal/cutlist"
	"github.com/piwi3910/cabinetforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// Worksheet names in the exported workbook.
const (
	sheetCutList   = "Cut List"
	sheetMaterials = "Materials"
	sheetPlan      = "Sheet Plan"
)

// ExportXLSX writes the cut list and its derived summaries as an XLSX
// workbook with one worksheet per view. Dimensions are written as plain
// numbers so spreadsheet formulas keep working on them.
func ExportXLSX(path string, design model.Design, entries []model.CutListEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no cut list entries to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCutList); err != nil {
		return err
	}
	if err := writeCutListSheet(f, entries); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetMaterials); err != nil {
		return err
	}
	usages := cutlist.CalculateMaterials(entries, design.MaterialCosts)
	if err := writeMaterialsSheet(f, usages); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetPlan); err != nil {
		return err
	}
	if err := writeSheetPlanSheet(f, cutlist.SheetOptimization(entries)); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeRow writes one worksheet row starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeCutListSheet(f *excelize.File, entries []model.CutListEntry) error {
	header := []interface{}{
		"Seq", "Cabinet", "Part", "Qty",
		"Width (in)", "Height (in)", "Thickness (in)",
		"Material", "Grain", "Edgebanding", "Note",
	}
	if err := writeRow(f, sheetCutList, 1, header); err != nil {
		return err
	}
	for i, e := range entries {
		row := []interface{}{
			e.Sequence, e.CabinetName, e.PartName, e.Quantity,
			e.Width, e.Height, e.Thickness,
			e.Material, string(e.Grain), e.Edgebanding, e.Note,
		}
		if err := writeRow(f, sheetCutList, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetCutList, "B", "C", 24); err != nil {
		return err
	}
	return f.SetColWidth(sheetCutList, "E", "K", 14)
}

func writeMaterialsSheet(f *excelize.File, usages []model.MaterialUsage) error {
	header := []interface{}{"Material", "Area (sq ft)", "Sheets", "Cost"}
	if err := writeRow(f, sheetMaterials, 1, header); err != nil {
		return err
	}
	for i, u := range usages {
		row := []interface{}{u.Material, u.AreaSqFt, u.Sheets, u.Cost}
		if err := writeRow(f, sheetMaterials, i+2, row); err != nil {
			return err
		}
	}
	total := []interface{}{"Total", nil, nil, cutlist.TotalMaterialCost(usages)}
	if err := writeRow(f, sheetMaterials, len(usages)+2, total); err != nil {
		return err
	}
	return f.SetColWidth(sheetMaterials, "A", "D", 14)
}

func writeSheetPlanSheet(f *excelize.File, groups []model.SheetGroup) error {
	header := []interface{}{
		"Material", "Thickness (in)", "Parts",
		"Raw Area (sq in)", "Adjusted Area (sq in)", "Sheets", "Waste %",
	}
	if err := writeRow(f, sheetPlan, 1, header); err != nil {
		return err
	}
	for i, g := range groups {
		row := []interface{}{
			g.Material, g.Thickness, len(g.Instances),
			g.RawArea, g.AdjustedArea, g.Sheets, g.WastePercent,
		}
		if err := writeRow(f, sheetPlan, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetPlan, "A", "G", 18)
}
