// ABOUTME: Repository interface for setup sheet persistence.
// ABOUTME: Defines the contract shared by the SQLite and Badger backends.
package storage

import "github.com/harperreed/setuplog/internal/models"

// SheetFilter narrows ListSheets results. Empty fields match everything.
type SheetFilter struct {
	Vehicle   string
	TrackName string
}

// Repository defines the storage contract for setup sheets.
// This interface allows swapping backends (and faking in tests).
type Repository interface {
	// SaveSheet inserts or replaces a sheet by id.
	SaveSheet(s *models.SetupSheet) error
	// GetSheet retrieves a sheet by full id or unique id fragment.
	GetSheet(idOrFragment string) (*models.SetupSheet, error)
	// ListSheets returns sheets sorted by dateTime descending.
	ListSheets(filter *SheetFilter, limit int) ([]*models.SetupSheet, error)
	// DeleteSheet removes a sheet by full id or unique id fragment.
	DeleteSheet(idOrFragment string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

func matchesFilter(s *models.SetupSheet, filter *SheetFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Vehicle != "" && s.Vehicle != filter.Vehicle {
		return false
	}
	if filter.TrackName != "" && s.TrackName != filter.TrackName {
		return false
	}
	return true
}
