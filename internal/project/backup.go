package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Design    model.Design        `json:"design"`
	Config    model.AppConfig     `json:"config"`
	Templates model.TemplateStore `json:"templates"`
}

// ExportAllData exports the current design together with the config and
// custom templates to a single JSON file at the specified path.
func ExportAllData(exportPath string, design model.Design, config model.AppConfig, templates model.TemplateStore) error {
	custom := model.NewTemplateStore()
	for _, t := range templates.Templates {
		if !t.BuiltIn {
			custom.Add(t)
		}
	}
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Design:    design,
		Config:    config,
		Templates: custom,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported state.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure the collections are never nil
	if backup.Config.RecentDesigns == nil {
		backup.Config.RecentDesigns = []string{}
	}
	if backup.Config.DefaultMaterialCosts == nil {
		backup.Config.DefaultMaterialCosts = map[string]float64{}
	}
	if backup.Design.Cabinets == nil {
		backup.Design.Cabinets = []model.Cabinet{}
	}
	if backup.Design.MaterialCosts == nil {
		backup.Design.MaterialCosts = model.DefaultMaterialCosts()
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.CabinetTemplate{}
	}
	return backup, nil
}
