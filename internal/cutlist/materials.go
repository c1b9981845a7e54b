package cutlist

import (
	"math"
	"sort"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// sheetAreaSqFt is the nominal area of one 4x8 sheet used for cost
// estimation: 32 sq ft.
const sheetAreaSqFt = 32

// CalculateMaterials aggregates the cut list into per-material purchase
// totals: part square footage, whole sheets at the nominal sheet area,
// and their cost at the configured per-sheet price. Hardware and glass
// entries are excluded. Materials missing from the price list cost zero.
// Results are ordered by material key.
func CalculateMaterials(entries []model.CutListEntry, costs map[string]float64) []model.MaterialUsage {
	area := map[string]float64{}
	for _, e := range entries {
		if e.IsHardware() || e.Material == model.MaterialGlass {
			continue
		}
		area[e.Material] += e.Width * e.Height * float64(e.Quantity) / 144
	}

	materials := make([]string, 0, len(area))
	for m := range area {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	usages := make([]model.MaterialUsage, 0, len(materials))
	for _, m := range materials {
		sheets := int(math.Ceil(area[m] / sheetAreaSqFt))
		usages = append(usages, model.MaterialUsage{
			Material: m,
			AreaSqFt: area[m],
			Sheets:   sheets,
			Cost:     float64(sheets) * costs[m],
		})
	}
	return usages
}

// TotalMaterialCost sums the cost column of a materials aggregation.
func TotalMaterialCost(usages []model.MaterialUsage) float64 {
	var total float64
	for _, u := range usages {
		total += u.Cost
	}
	return total
}

// CalculateEdgebanding totals banding tape per material in linear feet:
// the width of front-edge panels, the full perimeter of all-edge parts.
// Entries marked none, hardware, and glass contribute nothing.
func CalculateEdgebanding(entries []model.CutListEntry) []model.EdgebandingUsage {
	inches := map[string]float64{}
	for _, e := range entries {
		if e.IsHardware() || e.Material == model.MaterialGlass {
			continue
		}
		var perUnit float64
		switch e.Edgebanding {
		case model.BandingFrontEdge:
			perUnit = e.Width
		case model.BandingAllEdges:
			perUnit = 2 * (e.Width + e.Height)
		default:
			continue
		}
		inches[e.Material] += perUnit * float64(e.Quantity)
	}

	materials := make([]string, 0, len(inches))
	for m := range inches {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	usages := make([]model.EdgebandingUsage, 0, len(materials))
	for _, m := range materials {
		usages = append(usages, model.EdgebandingUsage{
			Material:   m,
			LinearFeet: inches[m] / 12,
		})
	}
	return usages
}
