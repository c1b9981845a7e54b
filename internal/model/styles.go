package model

// FrameSpec holds the member dimensions for a framed (rail and stile)
// door or drawer face.
type FrameSpec struct {
	RailWidth      float64 `json:"rail_width"`      // in
	StileWidth     float64 `json:"stile_width"`     // in
	PanelThickness float64 `json:"panel_thickness"` // in
	PanelInset     float64 `json:"panel_inset"`     // in, tongue captured in the frame groove per side
}

// StyleConfig is the constant table driving door/drawer derivation and
// cut-list decomposition. It is passed explicitly into the generator and
// the derivation helpers rather than read as ambient state, so the rules
// stay testable in isolation.
type StyleConfig struct {
	// Door count rules
	MinDoorWidth        float64 `json:"min_door_width"`         // in, narrowest usable door
	DoorSpacing         float64 `json:"door_spacing"`           // in, gap budget per opening
	OptimalMaxDoorWidth float64 `json:"optimal_max_door_width"` // in, widest comfortable door

	// Vertical layout rules
	Reveal        float64 `json:"reveal"`         // in, gap between stacked faces
	DoorClearance float64 `json:"door_clearance"` // in, fixed clearance above the door opening

	// Smart-default drawer sizes
	SmallDrawerHeight  float64 `json:"small_drawer_height"`  // in
	MediumDrawerHeight float64 `json:"medium_drawer_height"` // in

	// Framed face construction, keyed by style. Styles absent from a map
	// decompose as a single blank front.
	DoorFrames   map[FaceStyle]FrameSpec `json:"door_frames"`
	DrawerFrames map[FaceStyle]FrameSpec `json:"drawer_frames"`

	// Face-frame construction members
	FaceFrameWidth     float64 `json:"face_frame_width"`     // in, rail and stile width
	FaceFrameThickness float64 `json:"face_frame_thickness"` // in

	// Drawer-box construction. Boxes are always cut from utility plywood
	// regardless of the cabinet's face material.
	DrawerFaceInset          float64 `json:"drawer_face_inset"`           // in, face opening = cabinet width - this
	DrawerBoxMaxHeight       float64 `json:"drawer_box_max_height"`       // in, cap on box side height
	DrawerBoxSlideClearance  float64 `json:"drawer_box_slide_clearance"`  // in, total side-to-side slide allowance
	DrawerBoxThickness       float64 `json:"drawer_box_thickness"`        // in, box side stock
	DrawerBoxBottomThickness float64 `json:"drawer_box_bottom_thickness"` // in, bottom panel stock

	// Other panel stock
	BackPanelThickness float64 `json:"back_panel_thickness"` // in
	GlassThickness     float64 `json:"glass_thickness"`      // in, pane for glass doors
}

// DefaultStyleConfig returns the standard construction constants.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		MinDoorWidth:        8,
		DoorSpacing:         1,
		OptimalMaxDoorWidth: 24,

		Reveal:        0.125,
		DoorClearance: 1,

		SmallDrawerHeight:  4,
		MediumDrawerHeight: 6,

		DoorFrames: map[FaceStyle]FrameSpec{
			StyleShaker: {RailWidth: 2.25, StileWidth: 2.25, PanelThickness: 0.25, PanelInset: 0.375},
			StyleGlass:  {RailWidth: 2.25, StileWidth: 2.25, PanelThickness: 0.125, PanelInset: 0.375},
		},
		DrawerFrames: map[FaceStyle]FrameSpec{
			StyleShaker: {RailWidth: 1.5, StileWidth: 1.5, PanelThickness: 0.25, PanelInset: 0.375},
		},

		FaceFrameWidth:     1.5,
		FaceFrameThickness: 0.75,

		DrawerFaceInset:          2,
		DrawerBoxMaxHeight:       8,
		DrawerBoxSlideClearance:  1,
		DrawerBoxThickness:       0.5,
		DrawerBoxBottomThickness: 0.25,

		BackPanelThickness: 0.25,
		GlassThickness:     0.125,
	}
}

// Clone returns a deep copy sharing no maps with the receiver.
func (s StyleConfig) Clone() StyleConfig {
	out := s
	out.DoorFrames = make(map[FaceStyle]FrameSpec, len(s.DoorFrames))
	for k, v := range s.DoorFrames {
		out.DoorFrames[k] = v
	}
	out.DrawerFrames = make(map[FaceStyle]FrameSpec, len(s.DrawerFrames))
	for k, v := range s.DrawerFrames {
		out.DrawerFrames[k] = v
	}
	return out
}
