package model

// Design is the persistable root of a project: the cabinet list plus the
// cost settings needed to reproduce every derived output. It is treated
// as an immutable-per-revision value; mutations clone first (see Clone).
type Design struct {
	Name          string             `json:"name"`
	Cabinets      []Cabinet          `json:"cabinets"`
	MaterialCosts map[string]float64 `json:"material_costs"` // per-sheet price by material key
	LaborRate     float64            `json:"labor_rate"`     // per hour
}

// DefaultLaborRate is the shop rate a fresh design starts with, in
// currency per hour.
const DefaultLaborRate = 45

// NewDesign creates an empty design with the default price list.
func NewDesign() Design {
	return Design{
		Name:          "Untitled",
		Cabinets:      []Cabinet{},
		MaterialCosts: DefaultMaterialCosts(),
		LaborRate:     DefaultLaborRate,
	}
}

// DefaultMaterialCosts returns the built-in per-sheet price list.
func DefaultMaterialCosts() map[string]float64 {
	return map[string]float64{
		MaterialPlywood:  85,
		MaterialMDF:      45,
		MaterialMelamine: 55,
	}
}

// Clone returns a deep copy sharing no slices or maps with the receiver.
func (d Design) Clone() Design {
	out := d
	if d.Cabinets != nil {
		out.Cabinets = make([]Cabinet, len(d.Cabinets))
		for i, c := range d.Cabinets {
			out.Cabinets[i] = c.Clone()
		}
	}
	if d.MaterialCosts != nil {
		out.MaterialCosts = make(map[string]float64, len(d.MaterialCosts))
		for k, v := range d.MaterialCosts {
			out.MaterialCosts[k] = v
		}
	}
	return out
}

// CabinetIndex returns the position of the cabinet with the given id, or -1.
func (d Design) CabinetIndex(id string) int {
	for i := range d.Cabinets {
		if d.Cabinets[i].ID == id {
			return i
		}
	}
	return -1
}

// CabinetByID returns a pointer to the cabinet with the given id, or nil.
// The pointer addresses the design's own slice; callers holding a cloned
// design may mutate through it.
func (d *Design) CabinetByID(id string) *Cabinet {
	i := d.CabinetIndex(id)
	if i < 0 {
		return nil
	}
	return &d.Cabinets[i]
}

// RemoveCabinet deletes the cabinet with the given id.
// Returns true if it was present.
func (d *Design) RemoveCabinet(id string) bool {
	i := d.CabinetIndex(id)
	if i < 0 {
		return false
	}
	d.Cabinets = append(d.Cabinets[:i], d.Cabinets[i+1:]...)
	return true
}
