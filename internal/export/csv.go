package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/piwi3910/cabinetforge/internal/model"
)

var csvHeader = []string{
	"sequence", "cabinet", "part", "quantity",
	"width_in", "height_in", "thickness_in",
	"material", "grain", "edgebanding", "note",
}

// WriteCSV writes the cut list as CSV to w. Dimensions are plain decimal
// inches so downstream tools can parse them.
func WriteCSV(w io.Writer, entries []model.CutListEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no cut list entries to export")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Sequence),
			e.CabinetName,
			e.PartName,
			strconv.Itoa(e.Quantity),
			strconv.FormatFloat(e.Width, 'g', -1, 64),
			strconv.FormatFloat(e.Height, 'g', -1, 64),
			strconv.FormatFloat(e.Thickness, 'g', -1, 64),
			e.Material,
			string(e.Grain),
			e.Edgebanding,
			e.Note,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the cut list as a CSV file at the given path.
func ExportCSV(path string, entries []model.CutListEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
