// ABOUTME: Badger-backed key/value storage for setup sheets.
// ABOUTME: Type-prefixed keys, JSON values, client-side filtering and sort.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/setuplog/internal/models"
)

const sheetPrefix = "sheet:"

// KVStore provides Badger-backed storage for setup sheets.
type KVStore struct {
	db *badger.DB
}

// Compile-time check that KVStore implements Repository.
var _ Repository = (*KVStore)(nil)

// OpenKV opens or creates a Badger store under dataDir/kv.
func OpenKV(dataDir string) (*KVStore, error) {
	dir := filepath.Join(dataDir, "kv")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close closes the Badger database.
func (k *KVStore) Close() error {
	if k.db != nil {
		return k.db.Close()
	}
	return nil
}

// SaveSheet inserts or replaces a sheet by id.
func (k *KVStore) SaveSheet(s *models.SetupSheet) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal sheet: %w", err)
	}
	key := []byte(sheetPrefix + s.ID)
	err = k.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}
	return nil
}

// GetSheet retrieves a sheet by full id or unique id fragment.
func (k *KVStore) GetSheet(idOrFragment string) (*models.SetupSheet, error) {
	id, err := k.resolveSheetID(idOrFragment)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sheetPrefix + id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get sheet: %w", err)
	}
	return unmarshalSheet(string(data))
}

// ListSheets retrieves sheets with optional filtering by vehicle and
// track. Results are sorted by dateTime descending (most recent first).
func (k *KVStore) ListSheets(filter *SheetFilter, limit int) ([]*models.SetupSheet, error) {
	var sheets []*models.SetupSheet
	err := k.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sheetPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			s, err := unmarshalSheet(string(data))
			if err != nil {
				continue // Skip invalid entries
			}
			if !matchesFilter(s, filter) {
				continue
			}
			sheets = append(sheets, s)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}

	// Sort by dateTime descending
	sort.SliceStable(sheets, func(i, j int) bool {
		return sheets[i].DateTime > sheets[j].DateTime
	})

	if limit > 0 && len(sheets) > limit {
		sheets = sheets[:limit]
	}
	return sheets, nil
}

// DeleteSheet removes a sheet by full id or unique id fragment.
func (k *KVStore) DeleteSheet(idOrFragment string) error {
	id, err := k.resolveSheetID(idOrFragment)
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	err = k.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sheetPrefix + id))
	})
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	return nil
}

// resolveSheetID matches a full id first, then a unique fragment match
// over all stored keys.
func (k *KVStore) resolveSheetID(idOrFragment string) (string, error) {
	if idOrFragment == "" {
		return "", errors.New("empty sheet id")
	}

	exact := false
	var matches []string
	err := k.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(sheetPrefix + idOrFragment)); err == nil {
			exact = true
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sheetPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id := strings.TrimPrefix(string(it.Item().Key()), sheetPrefix)
			if strings.Contains(id, idOrFragment) {
				matches = append(matches, id)
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("resolve sheet id: %w", err)
	}
	if exact {
		return idOrFragment, nil
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
