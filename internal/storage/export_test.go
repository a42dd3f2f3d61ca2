// ABOUTME: Tests for export/import round trips.
// ABOUTME: Validates both serialization formats and cross-backend import.
package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/setuplog/internal/seed"
)

func TestExportImportRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			src, err := Open(filepath.Join(t.TempDir(), "src.db"))
			if err != nil {
				t.Fatalf("open source: %v", err)
			}
			defer src.Close()

			for _, s := range seed.Sheets() {
				if err := src.SaveSheet(s); err != nil {
					t.Fatalf("SaveSheet failed: %v", err)
				}
			}

			data, err := src.GetAllData()
			if err != nil {
				t.Fatalf("GetAllData failed: %v", err)
			}
			if data.Version != "1.0" || data.Tool != "setuplog" {
				t.Errorf("envelope = %s/%s", data.Version, data.Tool)
			}
			if len(data.Sheets) != 2 {
				t.Fatalf("exported %d sheets, want 2", len(data.Sheets))
			}

			raw, err := MarshalExport(data, format)
			if err != nil {
				t.Fatalf("MarshalExport failed: %v", err)
			}

			parsed, err := UnmarshalExport(raw)
			if err != nil {
				t.Fatalf("UnmarshalExport failed: %v", err)
			}

			dst, err := OpenKV(t.TempDir())
			if err != nil {
				t.Fatalf("open destination: %v", err)
			}
			defer dst.Close()

			if err := dst.ImportData(parsed); err != nil {
				t.Fatalf("ImportData failed: %v", err)
			}

			got, err := dst.GetSheet("session-20240715-fuji-01")
			if err != nil {
				t.Fatalf("GetSheet after import failed: %v", err)
			}
			if got.Driver != "山田 太郎" {
				t.Errorf("Driver = %s after %s round trip", got.Driver, format)
			}
			if v := got.SetupBefore.Suspension.Dampers.RL.Rebound; v == nil || *v != 8 {
				t.Error("damper settings lost in round trip")
			}
		})
	}
}

func TestMarshalExportUnknownFormat(t *testing.T) {
	if _, err := MarshalExport(&ExportData{}, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestImportSkipsInvalidEntries(t *testing.T) {
	repo, err := OpenKV(t.TempDir())
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	defer repo.Close()

	data := &ExportData{Sheets: append(seed.Sheets()[:1], nil)}
	data.Sheets[0].ID = ""

	if err := repo.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	sheets, err := repo.ListSheets(nil, 0)
	if err != nil {
		t.Fatalf("ListSheets failed: %v", err)
	}
	if len(sheets) != 0 {
		t.Errorf("imported %d sheets, want 0", len(sheets))
	}
}

func TestUnmarshalExportRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalExport([]byte(strings.Repeat("\x00", 8))); err == nil {
		t.Error("expected error for unparseable input")
	}
}
