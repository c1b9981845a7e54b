package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/cabinetforge/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.dxf")

	_, entries := buildTestDesign()
	if err := ExportDXF(path, entries); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("DXF file is empty")
	}

	// DXF is plain text, so layer names and entity markers are greppable
	text := string(data)
	for _, want := range []string{"PLYWOOD", "MDF", guideLayer, "LINE", "TEXT"} {
		if !strings.Contains(text, want) {
			t.Errorf("drawing does not mention %q", want)
		}
	}
}

func TestExportDXF_EmptyEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	if err := ExportDXF(path, nil); err == nil {
		t.Fatal("expected error for empty cut list, got nil")
	}
}

func TestExportDXF_NothingToCut(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nothing.dxf")

	entries := []model.CutListEntry{
		{CabinetName: "Base 1", PartName: "Hinge", Quantity: 2,
			Material: model.MaterialHardware, Grain: model.GrainNone, Sequence: 1},
		{CabinetName: "Upper 1", PartName: "Door Glass Panel", Quantity: 2,
			Width: 12, Height: 28, Thickness: 0.125,
			Material: model.MaterialGlass, Grain: model.GrainNone, Sequence: 2},
	}
	if err := ExportDXF(path, entries); err == nil {
		t.Fatal("expected error when nothing is cut from sheet stock, got nil")
	}
}

func TestCollectDXFParts(t *testing.T) {
	entries := []model.CutListEntry{
		{CabinetName: "Base 1", PartName: "Side", Quantity: 2,
			Width: 24, Height: 34.5, Material: model.MaterialPlywood, Sequence: 1},
		{CabinetName: "Base 1", PartName: "Drawer 1 Box Side", Quantity: 2,
			Width: 22, Height: 5, Material: model.MaterialPlywood, Sequence: 2},
		{CabinetName: "Base 1", PartName: "Hinge", Quantity: 4,
			Material: model.MaterialHardware, Sequence: 3},
		{CabinetName: "Upper 1", PartName: "Door Glass Panel", Quantity: 1,
			Width: 12, Height: 28, Material: model.MaterialGlass, Sequence: 4},
	}

	parts := collectDXFParts(entries)
	if len(parts) != 4 {
		t.Fatalf("expected 4 pieces (2 sides + 2 box sides), got %d", len(parts))
	}
	if parts[0].Part != "Side" || parts[0].Groove {
		t.Errorf("unexpected first piece: %+v", parts[0])
	}
	if !parts[2].Groove || !parts[3].Groove {
		t.Error("drawer box sides should carry the bottom groove reference")
	}
}

func TestLayerName(t *testing.T) {
	tests := []struct {
		material string
		want     string
	}{
		{"plywood", "PLYWOOD"},
		{"hardwood maple", "HARDWOOD_MAPLE"},
		{"mdf-3/4", "MDF_3_4"},
	}
	for _, tt := range tests {
		got := layerName(tt.material)
		if got != tt.want {
			t.Errorf("layerName(%q) = %q, want %q", tt.material, got, tt.want)
		}
	}
}
