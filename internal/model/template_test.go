package model

import (
	"testing"
)

func TestNewCabinetTemplate(t *testing.T) {
	c := NewCabinet("Corner Base")
	c.X = 48
	c.Z = 12
	c.Doors = 2
	c.Drawers = []Drawer{NewDrawer(6, 0)}

	tmpl := NewCabinetTemplate("Corner", "Two-door corner base", c)

	if tmpl.Name != "Corner" {
		t.Errorf("expected name 'Corner', got %q", tmpl.Name)
	}
	if tmpl.Description != "Two-door corner base" {
		t.Errorf("expected description 'Two-door corner base', got %q", tmpl.Description)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if tmpl.BuiltIn {
		t.Error("user template should not be built-in")
	}
	// Placement is dropped, the rest is kept
	if tmpl.Cabinet.X != 0 || tmpl.Cabinet.Z != 0 {
		t.Errorf("expected zeroed placement, got X=%v Z=%v", tmpl.Cabinet.X, tmpl.Cabinet.Z)
	}
	if tmpl.Cabinet.Doors != 2 {
		t.Errorf("expected 2 doors, got %d", tmpl.Cabinet.Doors)
	}
	if len(tmpl.Cabinet.Drawers) != 1 {
		t.Fatalf("expected 1 drawer, got %d", len(tmpl.Cabinet.Drawers))
	}
}

func TestCabinetTemplate_ToCabinet(t *testing.T) {
	src := NewCabinet("Source")
	src.Width = 30
	src.Drawers = []Drawer{NewDrawer(6, 0), NewDrawer(8, 6.125)}

	tmpl := NewCabinetTemplate("Drawer Base", "", src)
	c := tmpl.ToCabinet("Pantry Left")

	if c.Name != "Pantry Left" {
		t.Errorf("expected cabinet name 'Pantry Left', got %q", c.Name)
	}
	if c.Width != 30 {
		t.Errorf("expected width 30, got %v", c.Width)
	}
	// Cabinet and drawers get fresh IDs
	if c.ID == tmpl.Cabinet.ID {
		t.Error("instantiated cabinet should have a fresh ID")
	}
	if len(c.Drawers) != 2 {
		t.Fatalf("expected 2 drawers, got %d", len(c.Drawers))
	}
	for i := range c.Drawers {
		if c.Drawers[i].ID == tmpl.Cabinet.Drawers[i].ID {
			t.Errorf("drawer %d should have a fresh ID", i)
		}
		if c.Drawers[i].Height != tmpl.Cabinet.Drawers[i].Height {
			t.Errorf("drawer %d height changed on instantiation", i)
		}
	}
}

func TestBuiltinTemplates(t *testing.T) {
	templates := BuiltinTemplates()
	if len(templates) == 0 {
		t.Fatal("expected built-in templates")
	}

	seen := map[string]bool{}
	for _, tmpl := range templates {
		if !tmpl.BuiltIn {
			t.Errorf("built-in template %s should have BuiltIn=true", tmpl.Name)
		}
		if tmpl.ID == "" {
			t.Errorf("built-in template %s has no ID", tmpl.Name)
		}
		if seen[tmpl.ID] {
			t.Errorf("duplicate built-in template ID %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}

	if !seen["base"] || !seen["wall"] || !seen["sink-base"] {
		t.Error("expected base, wall, and sink-base among built-ins")
	}
}

func TestBuiltinTemplates_DrawerBaseFills(t *testing.T) {
	templates := BuiltinTemplates()
	var drawerBase *CabinetTemplate
	for i := range templates {
		if templates[i].ID == "drawer-base" {
			drawerBase = &templates[i]
		}
	}
	if drawerBase == nil {
		t.Fatal("missing drawer-base built-in")
	}

	c := drawerBase.Cabinet
	if len(c.Drawers) == 0 {
		t.Fatal("drawer base should come with drawers")
	}
	for _, d := range c.Drawers {
		if d.Top() > c.Height-c.ToekickHeight {
			t.Errorf("drawer top %v exceeds available height %v", d.Top(), c.Height-c.ToekickHeight)
		}
	}
}

func TestTemplateStore_AddRemoveFind(t *testing.T) {
	store := NewTemplateStore()

	tmpl1 := NewCabinetTemplate("T1", "", NewCabinet("A"))
	tmpl2 := NewCabinetTemplate("T2", "", NewCabinet("B"))

	store.Add(tmpl1)
	store.Add(tmpl2)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}

	// FindByID
	found := store.FindByID(tmpl1.ID)
	if found == nil {
		t.Fatal("FindByID returned nil for existing template")
	}
	if found.Name != "T1" {
		t.Errorf("expected 'T1', got %q", found.Name)
	}

	// FindByName
	found = store.FindByName("T2")
	if found == nil {
		t.Fatal("FindByName returned nil for existing template")
	}

	// Names
	names := store.Names()
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %d", len(names))
	}

	// Remove
	ok := store.Remove(tmpl1.ID)
	if !ok {
		t.Error("Remove should return true for existing template")
	}
	if len(store.Templates) != 1 {
		t.Errorf("expected 1 template after remove, got %d", len(store.Templates))
	}

	// Remove non-existent
	ok = store.Remove("nonexistent")
	if ok {
		t.Error("Remove should return false for non-existent ID")
	}
}

func TestTemplateStore_Empty(t *testing.T) {
	store := NewTemplateStore()

	if len(store.Templates) != 0 {
		t.Errorf("new store should be empty, got %d templates", len(store.Templates))
	}
	if store.FindByID("x") != nil {
		t.Error("FindByID should return nil in empty store")
	}
	if store.FindByName("x") != nil {
		t.Error("FindByName should return nil in empty store")
	}
	if len(store.Names()) != 0 {
		t.Error("Names should return empty slice for empty store")
	}
}
