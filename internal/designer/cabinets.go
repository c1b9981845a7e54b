package designer

import (
	"fmt"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// AddCabinet appends a new cabinet with default options, selects it, and
// returns it. Cabinets are auto-named in sequence.
func (ds *Designer) AddCabinet() (model.Cabinet, error) {
	name := fmt.Sprintf("Cabinet %d", len(ds.design.Cabinets)+1)
	c := model.NewCabinet(name)
	err := ds.mutate("Add "+name, func(d *model.Design) error {
		d.Cabinets = append(d.Cabinets, c)
		return nil
	})
	if err != nil {
		return model.Cabinet{}, err
	}
	ds.selectedCabinet = c.ID
	ds.selectedDrawer = ""
	ds.selectedDoor = -1
	return c.Clone(), nil
}

// AddCabinetFrom instantiates a template, appends the result, and selects
// it. The new cabinet keeps the template's configuration under an
// auto-assigned name.
func (ds *Designer) AddCabinetFrom(t model.CabinetTemplate) (model.Cabinet, error) {
	name := fmt.Sprintf("Cabinet %d", len(ds.design.Cabinets)+1)
	c := t.ToCabinet(name)
	err := ds.mutate("Add "+name+" from "+t.Name, func(d *model.Design) error {
		d.Cabinets = append(d.Cabinets, c)
		return nil
	})
	if err != nil {
		return model.Cabinet{}, err
	}
	ds.selectedCabinet = c.ID
	ds.selectedDrawer = ""
	ds.selectedDoor = -1
	return c.Clone(), nil
}

// RemoveCabinet deletes a cabinet and clears any selection pointing at it.
func (ds *Designer) RemoveCabinet(id string) error {
	err := ds.mutate("Remove cabinet", func(d *model.Design) error {
		if !d.RemoveCabinet(id) {
			return fmt.Errorf("%w: %s", ErrCabinetNotFound, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if ds.selectedCabinet == id {
		ds.ClearSelection()
	}
	return nil
}

// ResizeCabinet changes the outer dimensions. Dimensions must be
// positive, and the existing drawer stack must still fit the new height;
// a width reduction instead silently clamps the door count, and the
// adjustment is reported in the returned note.
func (ds *Designer) ResizeCabinet(id string, width, height, depth float64) (string, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return "", fmt.Errorf("%w: %gx%gx%g", ErrDimension, width, height, depth)
	}

	note := ""
	err := ds.mutate("Resize cabinet", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		for _, dr := range c.Drawers {
			if dr.Top() > height {
				return fmt.Errorf("%w: drawer at %s extends past %s height",
					ErrDrawerPosition, model.DecimalToFraction(dr.StartY), model.DecimalToFraction(height))
			}
		}

		c.Width = width
		c.Height = height
		c.Depth = depth

		if limit := ds.styles.DoorLimit(*c); c.Doors > limit {
			note = fmt.Sprintf("door count reduced from %d to %d to fit the new width", c.Doors, limit)
			c.Doors = limit
			pruneHandles(c)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return note, nil
}

// MoveCabinet sets the renderer placement offsets.
func (ds *Designer) MoveCabinet(id string, x, z float64) error {
	return ds.mutate("Move cabinet", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.X = x
		c.Z = z
		return nil
	})
}

// RenameCabinet changes the display name.
func (ds *Designer) RenameCabinet(id, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty cabinet name", ErrInvalidOption)
	}
	return ds.mutate("Rename cabinet", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Name = name
		return nil
	})
}

// SetWallThickness sets the sheet gauge used for the box panels.
func (ds *Designer) SetWallThickness(id string, thickness float64) error {
	if thickness <= 0 {
		return fmt.Errorf("%w: wall thickness %g", ErrDimension, thickness)
	}
	return ds.mutate("Set wall thickness", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.WallThickness = thickness
		return nil
	})
}

// SetConstruction switches between frameless and face-frame builds.
func (ds *Designer) SetConstruction(id string, construction model.Construction) error {
	if !construction.Valid() {
		return fmt.Errorf("%w: construction %q", ErrInvalidOption, construction)
	}
	return ds.mutate("Set construction", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Construction = construction
		return nil
	})
}

// SetMaterial sets the sheet material key for the cabinet's panels.
func (ds *Designer) SetMaterial(id, material string) error {
	if material == "" {
		return fmt.Errorf("%w: empty material", ErrInvalidOption)
	}
	return ds.mutate("Set material", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Material = material
		return nil
	})
}

// SetDoorCount sets the number of doors. Counts beyond the width's
// maximum (or beyond two for a double-door pair) are rejected, leaving
// the cabinet unchanged.
func (ds *Designer) SetDoorCount(id string, doors int) error {
	if doors < 0 {
		return fmt.Errorf("%w: %d", ErrDoorCount, doors)
	}
	return ds.mutate("Set door count", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		if limit := ds.styles.DoorLimit(*c); doors > limit {
			return fmt.Errorf("%w: %d doors, maximum %d at %s wide",
				ErrDoorCount, doors, limit, model.DecimalToFraction(c.Width))
		}
		c.Doors = doors
		pruneHandles(c)
		return nil
	})
}

// ApplySuggestedDoors sets the door count suggested for the cabinet's
// width, clamped to the allowed maximum, and returns the count applied.
func (ds *Designer) ApplySuggestedDoors(id string) (int, error) {
	applied := 0
	err := ds.mutate("Suggest doors", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		n := ds.styles.SuggestedDoorCount(c.Width)
		if limit := ds.styles.DoorLimit(*c); n > limit {
			n = limit
		}
		c.Doors = n
		pruneHandles(c)
		applied = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// SetDoubleDoor toggles the double-door pairing. Turning it on clamps the
// count to two; turning it off clamps to the width's maximum. Either
// adjustment is reported in the returned note.
func (ds *Designer) SetDoubleDoor(id string, double bool) (string, error) {
	note := ""
	err := ds.mutate("Set double door", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.DoubleDoor = double
		if limit := ds.styles.DoorLimit(*c); c.Doors > limit {
			note = fmt.Sprintf("door count reduced from %d to %d", c.Doors, limit)
			c.Doors = limit
			pruneHandles(c)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return note, nil
}

// SetDoorStyle sets the door face style. Glass is allowed here.
func (ds *Designer) SetDoorStyle(id string, style model.FaceStyle) error {
	if !style.Valid() {
		return fmt.Errorf("%w: door style %q", ErrInvalidOption, style)
	}
	return ds.mutate("Set door style", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.DoorStyle = style
		return nil
	})
}

// SetDrawerStyle sets the drawer face style. Glass fronts are rejected.
func (ds *Designer) SetDrawerStyle(id string, style model.FaceStyle) error {
	if style == model.StyleGlass {
		return ErrGlassDrawers
	}
	if !style.Valid() {
		return fmt.Errorf("%w: drawer style %q", ErrInvalidOption, style)
	}
	return ds.mutate("Set drawer style", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.DrawerStyle = style
		return nil
	})
}

// SetDoorHandle records which side of a door carries its pull.
func (ds *Designer) SetDoorHandle(id string, door int, side model.HandleSide) error {
	if !side.Valid() {
		return fmt.Errorf("%w: handle side %q", ErrInvalidOption, side)
	}
	return ds.mutate("Set door handle", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		if door < 0 || door >= c.Doors {
			return fmt.Errorf("%w: %d", ErrDoorIndex, door)
		}
		if c.DoorHandles == nil {
			c.DoorHandles = map[int]model.HandleSide{}
		}
		c.DoorHandles[door] = side
		return nil
	})
}

// SetDoorFit sets the reveal between stacked faces and the overlay past
// the box edge.
func (ds *Designer) SetDoorFit(id string, gap, overhang float64) error {
	if gap < 0 || overhang < 0 {
		return fmt.Errorf("%w: gap %g overhang %g", ErrDimension, gap, overhang)
	}
	return ds.mutate("Set door fit", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.DoorDrawerGap = gap
		c.DoorOverhang = overhang
		return nil
	})
}

// SetShelves sets the adjustable shelf count.
func (ds *Designer) SetShelves(id string, shelves int) error {
	if shelves < 0 {
		return fmt.Errorf("%w: shelf count %d", ErrInvalidOption, shelves)
	}
	return ds.mutate("Set shelves", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Shelves = shelves
		return nil
	})
}

// SetBackPanel toggles the back panel.
func (ds *Designer) SetBackPanel(id string, on bool) error {
	return ds.mutate("Set back panel", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.BackPanel = on
		return nil
	})
}

// SetToekick configures the toekick. Height and depth must be positive
// while the toekick is on.
func (ds *Designer) SetToekick(id string, on bool, height, depth float64) error {
	if on && (height <= 0 || depth <= 0) {
		return fmt.Errorf("%w: toekick %gx%g", ErrDimension, height, depth)
	}
	return ds.mutate("Set toekick", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Toekick = on
		if on {
			c.ToekickHeight = height
			c.ToekickDepth = depth
		}
		return nil
	})
}

// SetCountertop configures the countertop option.
func (ds *Designer) SetCountertop(id string, on bool, material string, thickness float64) error {
	if on && thickness <= 0 {
		return fmt.Errorf("%w: countertop thickness %g", ErrDimension, thickness)
	}
	return ds.mutate("Set countertop", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Countertop = on
		if on {
			c.CountertopMaterial = material
			c.CountertopThickness = thickness
		}
		return nil
	})
}

// SetCrown configures the crown moulding option.
func (ds *Designer) SetCrown(id string, on bool, height float64) error {
	if on && height <= 0 {
		return fmt.Errorf("%w: crown height %g", ErrDimension, height)
	}
	return ds.mutate("Set crown", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Crown = on
		if on {
			c.CrownHeight = height
		}
		return nil
	})
}

// SetEdgebanding toggles edgebanding on the cabinet's parts.
func (ds *Designer) SetEdgebanding(id string, on bool) error {
	return ds.mutate("Set edgebanding", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Edgebanding = on
		return nil
	})
}

// SetColor sets the finish color used by the renderer.
func (ds *Designer) SetColor(id, color string) error {
	return ds.mutate("Set color", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.Color = color
		return nil
	})
}

// SetHardware selects the hinge, slide, and pull types.
func (ds *Designer) SetHardware(id string, hinge model.HingeType, slide model.SlideType, pull model.PullType) error {
	if !hinge.Valid() {
		return fmt.Errorf("%w: hinge %q", ErrInvalidOption, hinge)
	}
	if !slide.Valid() {
		return fmt.Errorf("%w: slide %q", ErrInvalidOption, slide)
	}
	if !pull.Valid() {
		return fmt.Errorf("%w: pull %q", ErrInvalidOption, pull)
	}
	return ds.mutate("Set hardware", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		c.HingeType = hinge
		c.SlideType = slide
		c.PullType = pull
		return nil
	})
}

// pruneHandles drops handle assignments for doors that no longer exist.
func pruneHandles(c *model.Cabinet) {
	for i := range c.DoorHandles {
		if i >= c.Doors {
			delete(c.DoorHandles, i)
		}
	}
}
