// ABOUTME: Setup sheet CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods over the setup_sheets table.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/setuplog/internal/models"
)

// SaveSheet inserts or replaces a sheet by id.
func (d *DB) SaveSheet(s *models.SetupSheet) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal sheet: %w", err)
	}

	query := `
		INSERT INTO setup_sheets (id, vehicle, track_name, date_time, driver, session_type, data)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			vehicle = excluded.vehicle,
			track_name = excluded.track_name,
			date_time = excluded.date_time,
			driver = excluded.driver,
			session_type = excluded.session_type,
			data = excluded.data
	`
	_, err = d.db.Exec(query, s.ID, s.Vehicle, s.TrackName, s.DateTime, s.Driver, s.SessionType, string(data))
	if err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}
	return nil
}

// GetSheet retrieves a sheet by full id or unique id fragment.
func (d *DB) GetSheet(idOrFragment string) (*models.SetupSheet, error) {
	id, err := d.resolveSheetID(idOrFragment)
	if err != nil {
		return nil, err
	}

	var data string
	err = d.db.QueryRow("SELECT data FROM setup_sheets WHERE id = ?", id).Scan(&data)
	if err != nil {
		return nil, fmt.Errorf("get sheet: %w", err)
	}
	return unmarshalSheet(data)
}

// ListSheets retrieves sheets with optional filtering by vehicle and
// track. Results are sorted by dateTime descending (most recent first).
func (d *DB) ListSheets(filter *SheetFilter, limit int) ([]*models.SetupSheet, error) {
	query := "SELECT data FROM setup_sheets WHERE 1=1"
	var args []interface{}

	if filter != nil && filter.Vehicle != "" {
		query += " AND vehicle = ?"
		args = append(args, filter.Vehicle)
	}
	if filter != nil && filter.TrackName != "" {
		query += " AND track_name = ?"
		args = append(args, filter.TrackName)
	}

	query += " ORDER BY date_time DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var sheets []*models.SetupSheet
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan sheet: %w", err)
		}
		s, err := unmarshalSheet(data)
		if err != nil {
			continue // Skip invalid entries
		}
		sheets = append(sheets, s)
	}
	return sheets, rows.Err()
}

// DeleteSheet removes a sheet by full id or unique id fragment.
func (d *DB) DeleteSheet(idOrFragment string) error {
	id, err := d.resolveSheetID(idOrFragment)
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM setup_sheets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sheet not found: %s", idOrFragment)
	}
	return nil
}

// resolveSheetID matches a full id first, then falls back to a unique
// fragment match. Session ids share a common prefix, so fragments match
// anywhere in the id.
func (d *DB) resolveSheetID(idOrFragment string) (string, error) {
	if idOrFragment == "" {
		return "", errors.New("empty sheet id")
	}

	var id string
	err := d.db.QueryRow("SELECT id FROM setup_sheets WHERE id = ?", idOrFragment).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("resolve sheet id: %w", err)
	}

	rows, err := d.db.Query("SELECT id FROM setup_sheets WHERE id LIKE ? LIMIT 2", "%"+idOrFragment+"%")
	if err != nil {
		return "", fmt.Errorf("resolve sheet id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return "", fmt.Errorf("resolve sheet id: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve sheet id: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("sheet not found: %s", idOrFragment)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous sheet id: %s matches multiple sheets", idOrFragment)
	}
}

func unmarshalSheet(data string) (*models.SetupSheet, error) {
	var s models.SetupSheet
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("unmarshal sheet: %w", err)
	}
	s.Normalize()
	return &s, nil
}
