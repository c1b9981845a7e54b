package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// SaveDesign persists a design to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveDesign(path string, d model.Design) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDesign reads a design from the given path.
// If the file does not exist, it returns a fresh design with no error.
func LoadDesign(path string) (model.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewDesign(), nil
		}
		return model.Design{}, err
	}
	var d model.Design
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Design{}, err
	}
	// Ensure the collections are never nil
	if d.Cabinets == nil {
		d.Cabinets = []model.Cabinet{}
	}
	if d.MaterialCosts == nil {
		d.MaterialCosts = model.DefaultMaterialCosts()
	}
	return d, nil
}
