// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One table: indexed columns for listing plus the sheet document.
package storage

// initSchema creates or updates the database schema. The full nested
// record lives in the data column as JSON; the extracted columns exist
// for filtering and ordering.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS setup_sheets (
		id TEXT PRIMARY KEY,
		vehicle TEXT NOT NULL,
		track_name TEXT NOT NULL,
		date_time TEXT NOT NULL,
		driver TEXT,
		session_type TEXT,
		data TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sheets_date_time ON setup_sheets(date_time DESC);
	CREATE INDEX IF NOT EXISTS idx_sheets_vehicle ON setup_sheets(vehicle);
	CREATE INDEX IF NOT EXISTS idx_sheets_track ON setup_sheets(track_name);
	`

	_, err := d.db.Exec(schema)
	return err
}
