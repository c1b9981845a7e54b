package designer

import (
	"fmt"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// AddDrawer appends a drawer on top of the existing stack and returns
// it. The face height must meet the minimum, and the resulting stack
// must stay inside the cabinet.
func (ds *Designer) AddDrawer(id string, height float64) (model.Drawer, error) {
	if height < minDrawerHeight {
		return model.Drawer{}, fmt.Errorf("%w: %s", ErrDrawerHeight, model.DecimalToFraction(height))
	}
	var added model.Drawer
	err := ds.mutate("Add drawer", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		startY := 0.0
		if len(c.Drawers) > 0 {
			startY = c.DrawerStackTop() + ds.styles.Reveal
		}
		if startY+height > c.Height {
			return fmt.Errorf("%w: %s drawer at %s in a %s tall cabinet",
				ErrDrawerPosition, model.DecimalToFraction(height),
				model.DecimalToFraction(startY), model.DecimalToFraction(c.Height))
		}
		added = model.NewDrawer(height, startY)
		c.Drawers = append(c.Drawers, added)
		return nil
	})
	if err != nil {
		return model.Drawer{}, err
	}
	return added, nil
}

// UpdateDrawer changes a drawer's face height and position.
func (ds *Designer) UpdateDrawer(id, drawerID string, height, startY float64) error {
	if height < minDrawerHeight {
		return fmt.Errorf("%w: %s", ErrDrawerHeight, model.DecimalToFraction(height))
	}
	if startY < 0 {
		return fmt.Errorf("%w: start %s", ErrDrawerPosition, model.DecimalToFraction(startY))
	}
	return ds.mutate("Update drawer", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		i := c.DrawerIndex(drawerID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrDrawerNotFound, drawerID)
		}
		if startY+height > c.Height {
			return fmt.Errorf("%w: top at %s in a %s tall cabinet",
				ErrDrawerPosition, model.DecimalToFraction(startY+height),
				model.DecimalToFraction(c.Height))
		}
		c.Drawers[i].Height = height
		c.Drawers[i].StartY = startY
		return nil
	})
}

// RemoveDrawer deletes a drawer and clears its selection if it was the
// selected one.
func (ds *Designer) RemoveDrawer(id, drawerID string) error {
	err := ds.mutate("Remove drawer", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		i := c.DrawerIndex(drawerID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrDrawerNotFound, drawerID)
		}
		c.Drawers = append(c.Drawers[:i], c.Drawers[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	if ds.selectedDrawer == drawerID {
		ds.selectedDrawer = ""
	}
	return nil
}

// ApplyOptimalDrawers replaces the drawer stack with the tiered layout
// for the cabinet's usable height and returns the placed drawers. The
// drawer bank starts above the toekick when one is fitted.
func (ds *Designer) ApplyOptimalDrawers(id string) ([]model.Drawer, error) {
	var placed []model.Drawer
	err := ds.mutate("Apply optimal drawers", func(d *model.Design) error {
		c, err := cabinetIn(d, id)
		if err != nil {
			return err
		}
		heights := ds.styles.OptimalDrawerHeights(c.Height, c.InternalFloor())
		for _, h := range heights {
			if h < minDrawerHeight {
				return fmt.Errorf("%w: %s computed for a %s tall cabinet",
					ErrDrawerHeight, model.DecimalToFraction(h), model.DecimalToFraction(c.Height))
			}
		}
		c.Drawers = ds.styles.PlaceDrawers(heights)
		placed = append([]model.Drawer(nil), c.Drawers...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ds.selectedCabinet == id {
		ds.selectedDrawer = ""
	}
	return placed, nil
}
