package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// DefaultTemplatePath returns the default file path for the user's
// template store.
func DefaultTemplatePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}

// SaveTemplates writes the template store to a JSON file. Built-in
// templates are not persisted; they are recreated on every start.
func SaveTemplates(path string, store model.TemplateStore) error {
	custom := model.NewTemplateStore()
	for _, t := range store.Templates {
		if !t.BuiltIn {
			custom.Add(t)
		}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(custom, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTemplates reads a template store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.CabinetTemplate{}
	}
	// Stored templates are never marked as built-in
	for i := range store.Templates {
		store.Templates[i].BuiltIn = false
	}
	return store, nil
}

// LoadDefaultTemplates loads templates from the default path.
func LoadDefaultTemplates() (model.TemplateStore, error) {
	path, err := DefaultTemplatePath()
	if err != nil {
		return model.NewTemplateStore(), err
	}
	return LoadTemplates(path)
}

// SaveDefaultTemplates saves templates to the default path.
func SaveDefaultTemplates(store model.TemplateStore) error {
	path, err := DefaultTemplatePath()
	if err != nil {
		return err
	}
	return SaveTemplates(path, store)
}

// ExportTemplate exports a single template to a JSON file (for sharing).
func ExportTemplate(path string, t model.CabinetTemplate) error {
	t.BuiltIn = false
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportTemplate imports a single template from a JSON file.
func ImportTemplate(path string) (model.CabinetTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.CabinetTemplate{}, err
	}

	var t model.CabinetTemplate
	if err := json.Unmarshal(data, &t); err != nil {
		return model.CabinetTemplate{}, err
	}

	t.BuiltIn = false
	if t.Name == "" {
		return model.CabinetTemplate{}, errors.New("imported template has no name")
	}
	if t.ID == "" {
		return model.NewCabinetTemplate(t.Name, t.Description, t.Cabinet), nil
	}
	return t, nil
}
