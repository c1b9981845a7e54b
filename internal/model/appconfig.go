package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new designs
	DefaultLaborRate     float64            `json:"default_labor_rate"`     // $/hr
	DefaultMaterialCosts map[string]float64 `json:"default_material_costs"` // $/sheet by material

	// Application preferences
	MeasureMode   MeasureMode `json:"measure_mode"`
	Currency      string      `json:"currency"`
	RecentDesigns []string    `json:"recent_designs"`
}

// DefaultAppConfig returns an AppConfig populated with the same defaults a
// fresh design starts from.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultLaborRate:     DefaultLaborRate,
		DefaultMaterialCosts: DefaultMaterialCosts(),
		MeasureMode:          MeasureBoth,
		Currency:             "$",
		RecentDesigns:        []string{},
	}
}

// ApplyToDesign copies the saved pricing defaults into a design. This is
// used when creating a new design so it inherits the user's numbers.
func (c AppConfig) ApplyToDesign(d *Design) {
	if c.DefaultLaborRate > 0 {
		d.LaborRate = c.DefaultLaborRate
	}
	if len(c.DefaultMaterialCosts) > 0 {
		costs := make(map[string]float64, len(c.DefaultMaterialCosts))
		for k, v := range c.DefaultMaterialCosts {
			costs[k] = v
		}
		d.MaterialCosts = costs
	}
}

// RememberDesign puts path at the front of the recent list, deduplicated,
// keeping at most ten entries.
func (c *AppConfig) RememberDesign(path string) {
	recents := []string{path}
	for _, p := range c.RecentDesigns {
		if p != path {
			recents = append(recents, p)
		}
	}
	if len(recents) > 10 {
		recents = recents[:10]
	}
	c.RecentDesigns = recents
}
