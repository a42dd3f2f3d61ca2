// ABOUTME: Export and import functionality for setup sheet data.
// ABOUTME: Supports JSON and YAML export formats for both backends.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/setuplog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for setup sheet data.
type ExportData struct {
	Version    string               `json:"version" yaml:"version"`
	ExportedAt time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool       string               `json:"tool" yaml:"tool"`
	Sheets     []*models.SetupSheet `json:"sheets" yaml:"sheets"`
}

// newExportData wraps a sheet list in the export envelope.
func newExportData(sheets []*models.SetupSheet) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "setuplog",
		Sheets:     sheets,
	}
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	sheets, err := d.ListSheets(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	return newExportData(sheets), nil
}

// ImportData imports data from an export file, replacing sheets that
// share an id.
func (d *DB) ImportData(data *ExportData) error {
	return importInto(d, data)
}

// GetAllData retrieves all data for export.
func (k *KVStore) GetAllData() (*ExportData, error) {
	sheets, err := k.ListSheets(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	return newExportData(sheets), nil
}

// ImportData imports data from an export file, replacing sheets that
// share an id.
func (k *KVStore) ImportData(data *ExportData) error {
	return importInto(k, data)
}

func importInto(repo Repository, data *ExportData) error {
	for _, s := range data.Sheets {
		if s == nil || s.ID == "" {
			continue
		}
		s.Normalize()
		if err := repo.SaveSheet(s); err != nil {
			return fmt.Errorf("import sheet %s: %w", s.ID, err)
		}
	}
	return nil
}

// MarshalExport renders export data in the requested format: "json" or
// "yaml".
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalExport parses export data, accepting either JSON or YAML.
func UnmarshalExport(b []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(b, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse export data: %w", err)
	}
	return &data, nil
}
