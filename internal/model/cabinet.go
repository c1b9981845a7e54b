package model

import "github.com/google/uuid"

// Construction describes how the cabinet box is built.
type Construction string

const (
	ConstructionFrameless Construction = "frameless"  // Full-access box, doors overlay the edges
	ConstructionFaceFrame Construction = "face_frame" // Hardwood frame overlaid on the box front
)

// Valid reports whether the value is a known construction type.
func (c Construction) Valid() bool {
	return c == ConstructionFrameless || c == ConstructionFaceFrame
}

// FaceStyle selects the decomposition of a door or drawer face.
// Glass is valid for doors only.
type FaceStyle string

const (
	StyleFlat   FaceStyle = "flat"
	StyleShaker FaceStyle = "shaker"
	StyleRaised FaceStyle = "raised"
	StyleGlass  FaceStyle = "glass"
)

// Valid reports whether the value is a known face style.
func (s FaceStyle) Valid() bool {
	switch s {
	case StyleFlat, StyleShaker, StyleRaised, StyleGlass:
		return true
	}
	return false
}

// HandleSide records which side of a door carries its pull.
type HandleSide string

const (
	HandleLeft  HandleSide = "left"
	HandleRight HandleSide = "right"
)

// Valid reports whether the value is a known handle side.
func (h HandleSide) Valid() bool {
	return h == HandleLeft || h == HandleRight
}

// HingeType enumerates the supported door hinges.
type HingeType string

const (
	HingeConcealed HingeType = "concealed"  // Euro cup hinge
	HingeSoftClose HingeType = "soft_close" // Cup hinge with damper
	HingeButt      HingeType = "butt"       // Traditional exposed hinge
)

func (h HingeType) Valid() bool {
	switch h {
	case HingeConcealed, HingeSoftClose, HingeButt:
		return true
	}
	return false
}

// SlideType enumerates the supported drawer slides.
type SlideType string

const (
	SlideSideMount   SlideType = "side_mount"
	SlideUndermount  SlideType = "undermount"
	SlideCenterMount SlideType = "center_mount"
)

func (s SlideType) Valid() bool {
	switch s {
	case SlideSideMount, SlideUndermount, SlideCenterMount:
		return true
	}
	return false
}

// PullType enumerates the supported door and drawer pulls.
type PullType string

const (
	PullBar  PullType = "bar"
	PullKnob PullType = "knob"
	PullEdge PullType = "edge"
)

func (p PullType) Valid() bool {
	switch p {
	case PullBar, PullKnob, PullEdge:
		return true
	}
	return false
}

// Common sheet-material keys. Material is an open string key; these are
// the ones the default price list knows about.
const (
	MaterialPlywood  = "plywood"
	MaterialMDF      = "mdf"
	MaterialMelamine = "melamine"
	MaterialGlass    = "glass"
)

// Drawer is a single drawer opening within a cabinet. StartY is measured
// from the cabinet's internal floor (the toekick top when present).
type Drawer struct {
	ID     string  `json:"id"`
	Height float64 `json:"height"`  // in
	StartY float64 `json:"start_y"` // in above the internal floor
}

func NewDrawer(height, startY float64) Drawer {
	return Drawer{
		ID:     uuid.New().String()[:8],
		Height: height,
		StartY: startY,
	}
}

// Top returns the drawer's upper edge above the internal floor.
func (d Drawer) Top() float64 {
	return d.StartY + d.Height
}

// Cabinet is the root design entity: one parametric cabinet box with its
// openings, options, and hardware selection.
type Cabinet struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Placement offsets consumed by the renderer only.
	X float64 `json:"x"` // in
	Z float64 `json:"z"` // in

	Width         float64 `json:"width"`          // in
	Height        float64 `json:"height"`         // in
	Depth         float64 `json:"depth"`          // in
	WallThickness float64 `json:"wall_thickness"` // in, sheet gauge for box panels

	Construction Construction `json:"construction"`
	Material     string       `json:"material"`

	Doors         int                `json:"doors"`
	DoubleDoor    bool               `json:"double_door"`
	DoorStyle     FaceStyle          `json:"door_style"`
	DrawerStyle   FaceStyle          `json:"drawer_style"`
	DoorDrawerGap float64            `json:"door_drawer_gap"` // in, reveal between faces
	DoorOverhang  float64            `json:"door_overhang"`   // in, overlay past the box edge
	DoorHandles   map[int]HandleSide `json:"door_handles,omitempty"`
	Drawers       []Drawer           `json:"drawers"`

	Shelves   int  `json:"shelves"`
	BackPanel bool `json:"back_panel"`

	Toekick       bool    `json:"toekick"`
	ToekickHeight float64 `json:"toekick_height"` // in
	ToekickDepth  float64 `json:"toekick_depth"`  // in, setback from the front

	Countertop          bool    `json:"countertop"`
	CountertopMaterial  string  `json:"countertop_material"`
	CountertopThickness float64 `json:"countertop_thickness"` // in

	Crown       bool    `json:"crown"`
	CrownHeight float64 `json:"crown_height"` // in

	Edgebanding bool   `json:"edgebanding"`
	Color       string `json:"color"`

	HingeType HingeType `json:"hinge_type"`
	SlideType SlideType `json:"slide_type"`
	PullType  PullType  `json:"pull_type"`
}

// NewCabinet creates a cabinet with the standard base-cabinet defaults
// and a fresh id.
func NewCabinet(name string) Cabinet {
	return Cabinet{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Width:         24,
		Height:        34.5,
		Depth:         24,
		WallThickness: 0.75,
		Construction:  ConstructionFrameless,
		Material:      MaterialPlywood,

		Doors:         0,
		DoorStyle:     StyleShaker,
		DrawerStyle:   StyleShaker,
		DoorDrawerGap: 0.125,
		DoorOverhang:  0.5,
		Drawers:       []Drawer{},

		Shelves:             1,
		BackPanel:           true,
		Toekick:             true,
		ToekickHeight:       4,
		ToekickDepth:        3,
		Countertop:          true,
		CountertopMaterial:  "laminate",
		CountertopThickness: 1.5,
		CrownHeight:         3,
		Edgebanding:         true,
		Color:               "white",

		HingeType: HingeConcealed,
		SlideType: SlideSideMount,
		PullType:  PullBar,
	}
}

// InternalFloor returns the height of the cabinet's internal floor above
// ground: the toekick height when a toekick is present, else 0.
func (c Cabinet) InternalFloor() float64 {
	if c.Toekick {
		return c.ToekickHeight
	}
	return 0
}

// DrawerStackTop returns the top of the drawer stack above the internal
// floor: the greatest startY + height over all drawers, or 0 when the
// cabinet has none. Doors occupy the space above it.
func (c Cabinet) DrawerStackTop() float64 {
	var top float64
	for _, d := range c.Drawers {
		if d.Top() > top {
			top = d.Top()
		}
	}
	return top
}

// DrawerIndex returns the position of the drawer with the given id, or -1.
func (c Cabinet) DrawerIndex(id string) int {
	for i, d := range c.Drawers {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy sharing no slices or maps with the receiver.
func (c Cabinet) Clone() Cabinet {
	out := c
	if c.Drawers != nil {
		out.Drawers = make([]Drawer, len(c.Drawers))
		copy(out.Drawers, c.Drawers)
	}
	if c.DoorHandles != nil {
		out.DoorHandles = make(map[int]HandleSide, len(c.DoorHandles))
		for k, v := range c.DoorHandles {
			out.DoorHandles[k] = v
		}
	}
	return out
}
