package model

// Grain marks the required sheet orientation for a part.
type Grain string

const (
	GrainHorizontal Grain = "horizontal"
	GrainVertical   Grain = "vertical"
	GrainNone       Grain = "n/a"
)

// MaterialHardware marks purchased items (hinges, slides, pulls) that ride
// along in the cut list but are never cut from sheet stock.
const MaterialHardware = "hardware"

// Edgebanding notes carried on cut-list entries.
const (
	BandingAllEdges  = "all edges"
	BandingFrontEdge = "front edge"
	BandingNone      = "none"
)

// CutListEntry is one line of the cut list: a part to cut (or buy) for a
// cabinet. Width and Height are the cut dimensions in inches; hardware
// entries carry zero dimensions. Sequence is the assembly order across the
// whole design, so a sorted printout reads as build steps.
type CutListEntry struct {
	CabinetName string  `json:"cabinet_name"`
	PartName    string  `json:"part_name"`
	Quantity    int     `json:"quantity"`
	Width       float64 `json:"width"`     // in
	Height      float64 `json:"height"`    // in
	Thickness   float64 `json:"thickness"` // in
	Material    string  `json:"material"`
	Grain       Grain   `json:"grain"`
	Edgebanding string  `json:"edgebanding"`
	Note        string  `json:"note,omitempty"`
	Sequence    int     `json:"sequence"`
}

// Area returns the face area of a single piece in square inches.
func (e CutListEntry) Area() float64 {
	return e.Width * e.Height
}

// IsHardware reports whether the entry is a purchased item rather than a
// panel to cut.
func (e CutListEntry) IsHardware() bool {
	return e.Material == MaterialHardware
}

// MaterialUsage aggregates the cut list for one sheet material: total part
// area, whole sheets to buy, and their cost at the configured sheet price.
type MaterialUsage struct {
	Material string  `json:"material"`
	AreaSqFt float64 `json:"area_sqft"`
	Sheets   int     `json:"sheets"`
	Cost     float64 `json:"cost"`
}

// PartInstance is a single physical piece inside a sheet group, one row
// per unit rather than per cut-list line.
type PartInstance struct {
	CabinetName string  `json:"cabinet_name"`
	PartName    string  `json:"part_name"`
	Width       float64 `json:"width"`  // in
	Height      float64 `json:"height"` // in
}

// Area returns the piece area in square inches.
func (p PartInstance) Area() float64 {
	return p.Width * p.Height
}

// SheetGroup is the shop-floor view of one (material, thickness) bucket:
// every piece to cut from that stock, largest first, with the sheet count
// after the waste allowance.
type SheetGroup struct {
	Material     string         `json:"material"`
	Thickness    float64        `json:"thickness"` // in
	Instances    []PartInstance `json:"instances"`
	RawArea      float64        `json:"raw_area"`      // sq in
	AdjustedArea float64        `json:"adjusted_area"` // sq in, raw plus waste allowance
	Sheets       int            `json:"sheets"`
	WastePercent float64        `json:"waste_percent"`
}

// EdgebandingUsage totals the banding tape needed per material.
type EdgebandingUsage struct {
	Material   string  `json:"material"`
	LinearFeet float64 `json:"linear_feet"`
}
