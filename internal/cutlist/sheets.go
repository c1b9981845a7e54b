package cutlist

import (
	"math"
	"sort"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// Exact stock sheet dimensions used by the shop-floor plan.
const (
	sheetWidthIn  = 96.0
	sheetHeightIn = 48.0
)

// wasteAllowance is the multiplier applied to raw part area before
// rounding up to whole sheets.
const wasteAllowance = 1.10

// SheetOptimization groups every physical piece by material and thickness
// and estimates whole-sheet consumption per group. This is a capacity
// estimate, not a nesting layout; the instance list is retained, largest
// first, for the shop cut-planning view. Hardware, glass, and
// zero-dimension entries are excluded, and each cut-list line expands to
// one instance per unit of quantity.
func SheetOptimization(entries []model.CutListEntry) []model.SheetGroup {
	type key struct {
		material  string
		thickness float64
	}
	groups := map[key]*model.SheetGroup{}

	for _, e := range entries {
		if e.IsHardware() || e.Material == model.MaterialGlass || e.Width <= 0 || e.Height <= 0 {
			continue
		}
		k := key{e.Material, e.Thickness}
		grp, ok := groups[k]
		if !ok {
			grp = &model.SheetGroup{Material: e.Material, Thickness: e.Thickness}
			groups[k] = grp
		}
		for i := 0; i < e.Quantity; i++ {
			grp.Instances = append(grp.Instances, model.PartInstance{
				CabinetName: e.CabinetName,
				PartName:    e.PartName,
				Width:       e.Width,
				Height:      e.Height,
			})
			grp.RawArea += e.Width * e.Height
		}
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].material != keys[j].material {
			return keys[i].material < keys[j].material
		}
		return keys[i].thickness < keys[j].thickness
	})

	sheetArea := sheetWidthIn * sheetHeightIn
	out := make([]model.SheetGroup, 0, len(keys))
	for _, k := range keys {
		grp := groups[k]
		grp.AdjustedArea = grp.RawArea * wasteAllowance
		grp.Sheets = int(math.Ceil(grp.AdjustedArea / sheetArea))
		if grp.Sheets > 0 {
			used := float64(grp.Sheets) * sheetArea
			grp.WastePercent = (used - grp.RawArea) / used * 100
		}
		sort.SliceStable(grp.Instances, func(i, j int) bool {
			return grp.Instances[i].Area() > grp.Instances[j].Area()
		})
		out = append(out, *grp)
	}
	return out
}
