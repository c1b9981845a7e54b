// Package importer reads cabinet schedules from CSV and Excel files. It
// auto-detects the CSV delimiter, maps columns by header name with
// case-insensitive aliases, and accepts dimensions in decimal or
// fraction form.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/cabinetforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation. Rows that fail
// to parse land in Errors and are skipped; rows that needed corrections
// are noted in Warnings and kept.
type ImportResult struct {
	Cabinets []model.Cabinet
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// Width, Height, and Depth are required; the rest are optional and -1
// when absent.
type ColumnMapping struct {
	Name         int
	Width        int
	Height       int
	Depth        int
	Doors        int
	Drawers      int
	Material     int
	Construction int
}

// headerAliases maps canonical column roles to their accepted header
// spellings (all lowercase).
var headerAliases = map[string][]string{
	"name":         {"name", "cabinet", "label", "description", "desc"},
	"width":        {"width", "w"},
	"height":       {"height", "h"},
	"depth":        {"depth", "d"},
	"doors":        {"doors", "door", "door count", "doorcount"},
	"drawers":      {"drawers", "drawer", "drawer count", "drawercount"},
	"material":     {"material", "mat", "stock", "sheet"},
	"construction": {"construction", "frame", "type"},
}

// DetectCSVDelimiter determines the most likely delimiter for the given
// CSV content. It tries comma, semicolon, tab, and pipe; the delimiter
// that yields the most consistent multi-column split across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Consistency dominates; column count breaks ties
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// matches case-insensitively against the known aliases for each role.
// Returns the mapping and true if a header was detected, or a default
// positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, Width: -1, Height: -1, Depth: -1,
		Doors: -1, Drawers: -1, Material: -1, Construction: -1,
	}
	slots := map[string]*int{
		"name":         &mapping.Name,
		"width":        &mapping.Width,
		"height":       &mapping.Height,
		"depth":        &mapping.Depth,
		"doors":        &mapping.Doors,
		"drawers":      &mapping.Drawers,
		"material":     &mapping.Material,
		"construction": &mapping.Construction,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if slot := slots[role]; *slot == -1 {
						*slot = i
					}
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: Name, Width, Height, Depth, Doors,
		// Drawers, Material, Construction
		return ColumnMapping{
			Name: 0, Width: 1, Height: 2, Depth: 3,
			Doors: 4, Drawers: 5, Material: 6, Construction: 7,
		}, false
	}

	return mapping, true
}

// parseConstruction converts a construction cell to a model value. The
// boolean reports whether the text was recognized; empty is recognized
// and keeps the default.
func parseConstruction(s string) (model.Construction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "frameless", "euro", "full access":
		return model.ConstructionFrameless, true
	case "face frame", "face_frame", "faceframe", "framed":
		return model.ConstructionFaceFrame, true
	default:
		return model.ConstructionFrameless, false
	}
}

// getCell safely retrieves a trimmed cell value from a row by column
// index. Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimension reads a required measurement cell, accepting decimal or
// fraction text. Returns the value and an error message when missing or
// unparseable.
func parseDimension(row []string, idx int, field, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field)
	}
	v := model.ParseFraction(s)
	if v <= 0 {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field, s)
	}
	return v, ""
}

// parseRow extracts a cabinet from a row using the given column mapping.
// Returns the cabinet, an error message that skips the row, and any
// warnings about corrected values.
func parseRow(row []string, mapping ColumnMapping, styles model.StyleConfig, rowLabel string, cabCount int) (model.Cabinet, string, []string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Cabinet %d", cabCount+1)
	}

	width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.Cabinet{}, errMsg, nil
	}
	height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.Cabinet{}, errMsg, nil
	}
	depth, errMsg := parseDimension(row, mapping.Depth, "depth", rowLabel)
	if errMsg != "" {
		return model.Cabinet{}, errMsg, nil
	}

	c := model.NewCabinet(name)
	c.Width = width
	c.Height = height
	c.Depth = depth

	var warnings []string

	if s := getCell(row, mapping.Material); s != "" {
		c.Material = strings.ToLower(s)
	}

	if s := getCell(row, mapping.Construction); s != "" {
		construction, ok := parseConstruction(s)
		if ok {
			c.Construction = construction
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown construction '%s', using frameless", rowLabel, s))
		}
	}

	if s := getCell(row, mapping.Doors); s != "" {
		doors, err := strconv.Atoi(s)
		switch {
		case err != nil || doors < 0:
			warnings = append(warnings, fmt.Sprintf("%s: Invalid door count '%s', ignoring", rowLabel, s))
		default:
			if limit := styles.DoorLimit(c); doors > limit {
				warnings = append(warnings, fmt.Sprintf("%s: %d doors do not fit %s, reduced to %d",
					rowLabel, doors, model.DecimalToFraction(c.Width), limit))
				doors = limit
			}
			c.Doors = doors
		}
	}

	if s := getCell(row, mapping.Drawers); s != "" {
		requested, err := strconv.Atoi(s)
		switch {
		case err != nil || requested < 0:
			warnings = append(warnings, fmt.Sprintf("%s: Invalid drawer count '%s', ignoring", rowLabel, s))
		case requested > 0:
			heights := styles.OptimalDrawerHeights(c.Height, c.InternalFloor())
			c.Drawers = styles.PlaceDrawers(heights)
			if len(heights) != requested {
				warnings = append(warnings, fmt.Sprintf("%s: Requested %d drawers, smart layout placed %d",
					rowLabel, requested, len(heights)))
			}
		}
	}

	return c, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports cabinets from a CSV file. It automatically detects
// the delimiter and maps columns by header names. Supports comma,
// semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports cabinets from a CSV reader with a known
// delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports cabinets from an Excel (.xlsx) file. Reads the
// first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data. It
// detects headers, maps columns, and parses each row into a cabinet with
// the standard base-cabinet defaults filling the unlisted options.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	styles := model.DefaultStyleConfig()

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		// No recognized header: if the width position is not a
		// measurement, treat the first row as an unknown header and keep
		// the positional mapping.
		if model.ParseFraction(rows[0][1]) <= 0 {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		cabinet, errMsg, warnings := parseRow(row, mapping, styles, rowLabel, len(result.Cabinets))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Cabinets = append(result.Cabinets, cabinet)
	}

	return result
}
