package model

import (
	"time"

	"github.com/google/uuid"
)

// CabinetTemplate is a reusable cabinet configuration. It captures
// dimensions, construction, and face layout but not floor placement, so an
// instantiated cabinet always lands at the origin.
type CabinetTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
	BuiltIn     bool    `json:"built_in,omitempty"`
	Cabinet     Cabinet `json:"cabinet"`
}

// NewCabinetTemplate creates a template from an existing cabinet. The
// source's placement is dropped; everything else is kept verbatim.
func NewCabinetTemplate(name, description string, c Cabinet) CabinetTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	snap := c.Clone()
	snap.X = 0
	snap.Z = 0
	return CabinetTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Cabinet:     snap,
	}
}

// ToCabinet instantiates the template as a new cabinet. The cabinet and
// its drawers get fresh IDs so they are independent of the template.
func (t CabinetTemplate) ToCabinet(name string) Cabinet {
	c := t.Cabinet.Clone()
	c.ID = uuid.New().String()[:8]
	c.Name = name
	c.X = 0
	c.Z = 0
	for i := range c.Drawers {
		c.Drawers[i].ID = uuid.New().String()[:8]
	}
	return c
}

// BuiltinTemplates returns the stock cabinet shapes every install starts
// with. IDs are stable strings so references survive across runs.
func BuiltinTemplates() []CabinetTemplate {
	styles := DefaultStyleConfig()

	base := NewCabinet("Base")
	base.Doors = 1

	drawerBase := NewCabinet("Drawer Base")
	drawerBase.Width = 18
	drawerBase.Drawers = styles.PlaceDrawers(
		styles.OptimalDrawerHeights(drawerBase.Height, drawerBase.InternalFloor()))

	wall := NewCabinet("Wall")
	wall.Width = 30
	wall.Height = 30
	wall.Depth = 12
	wall.Doors = 2
	wall.DoubleDoor = true
	wall.Shelves = 2
	wall.Toekick = false
	wall.Countertop = false

	tall := NewCabinet("Tall Pantry")
	tall.Height = 84
	tall.Doors = 2
	tall.DoubleDoor = true
	tall.Shelves = 4
	tall.Countertop = false
	tall.Crown = true

	sink := NewCabinet("Sink Base")
	sink.Width = 36
	sink.Doors = 2
	sink.DoubleDoor = true
	sink.Shelves = 0
	sink.BackPanel = false

	return []CabinetTemplate{
		{ID: "base", Name: "Base Cabinet", Description: "Standard base with one door and one shelf", BuiltIn: true, Cabinet: base},
		{ID: "drawer-base", Name: "Drawer Base", Description: "Narrow base filled with a drawer stack", BuiltIn: true, Cabinet: drawerBase},
		{ID: "wall", Name: "Wall Cabinet", Description: "Upper cabinet, double doors, no toekick", BuiltIn: true, Cabinet: wall},
		{ID: "tall", Name: "Tall Pantry", Description: "Full-height pantry with crown", BuiltIn: true, Cabinet: tall},
		{ID: "sink-base", Name: "Sink Base", Description: "Double-door base, open back for plumbing", BuiltIn: true, Cabinet: sink},
	}
}

// TemplateStore holds the user's saved cabinet templates. Builtins are not
// stored; use BuiltinTemplates for those.
type TemplateStore struct {
	Templates []CabinetTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []CabinetTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t CabinetTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *CabinetTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *CabinetTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
