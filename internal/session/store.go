// ABOUTME: Session store owning the sheet collection, selection, and draft lifecycle.
// ABOUTME: Drafts are isolated copies; edits reach the collection only via Save.
package session

import (
	"reflect"
	"sort"
	"time"

	"github.com/harperreed/setuplog/internal/format"
	"github.com/harperreed/setuplog/internal/models"
)

// Store owns the authoritative sheet collection, the current selection,
// and the draft/save/revert lifecycle. The collection, draft, and
// committed snapshot are exclusively owned here; every value crossing the
// boundary is an independent deep copy, so draft edits can never leak into
// the committed collection or vice versa.
type Store struct {
	sheets   []*models.SetupSheet
	selected string
	draft    *models.SetupSheet
	snapshot *models.SetupSheet
}

// NewStore builds a store from a seed collection, sorted most recent
// first, and selects the most recent sheet if any. The input is cloned.
func NewStore(sheets []*models.SetupSheet) *Store {
	st := &Store{}
	for _, s := range sheets {
		c := s.Clone()
		c.Normalize()
		st.sheets = append(st.sheets, c)
	}
	st.sortSheets()
	if len(st.sheets) > 0 {
		st.Select(st.sheets[0].ID)
	}
	return st
}

// sortSheets keeps the collection non-increasing by dateTime. Unparseable
// timestamps sort as oldest. Sort is stable so equal timestamps keep
// insertion order.
func (st *Store) sortSheets() {
	sort.SliceStable(st.sheets, func(i, j int) bool {
		return sheetTime(st.sheets[i]).After(sheetTime(st.sheets[j]))
	})
}

func sheetTime(s *models.SetupSheet) time.Time {
	t, err := format.ParseDateTime(s.DateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Len returns the number of sheets in the collection.
func (st *Store) Len() int {
	return len(st.sheets)
}

// Sheets returns a deep copy of the collection, most recent first.
func (st *Store) Sheets() []*models.SetupSheet {
	out := make([]*models.SetupSheet, len(st.sheets))
	for i, s := range st.sheets {
		out[i] = s.Clone()
	}
	return out
}

// Sheet returns a deep copy of the sheet with the given id, or nil.
func (st *Store) Sheet(id string) *models.SetupSheet {
	return st.find(id).Clone()
}

func (st *Store) find(id string) *models.SetupSheet {
	if id == "" {
		return nil
	}
	for _, s := range st.sheets {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SelectedID returns the id of the currently selected sheet, or "".
func (st *Store) SelectedID() string {
	return st.selected
}

// Draft returns a deep copy of the in-progress draft, or nil when nothing
// is selected. Mutation goes through EditDraftField only.
func (st *Store) Draft() *models.SetupSheet {
	return st.draft.Clone()
}

// IsDirty reports whether the draft differs structurally from the
// committed snapshot.
func (st *Store) IsDirty() bool {
	if st.draft == nil || st.snapshot == nil {
		return false
	}
	return !reflect.DeepEqual(st.draft, st.snapshot)
}

// Select opens the sheet with the given id for viewing/editing. The draft
// and snapshot become independent copies of the collection entry; an
// unknown or empty id clears the selection.
func (st *Store) Select(id string) {
	entry := st.find(id)
	if entry == nil {
		st.selected = ""
		st.draft = nil
		st.snapshot = nil
		return
	}
	st.selected = entry.ID
	st.draft = entry.Clone()
	st.snapshot = entry.Clone()
}

// EditDraftField applies a raw string value to a known dot-delimited path
// on the draft. The committed collection and snapshot are untouched. With
// no active draft this is a no-op; unknown paths are rejected.
func (st *Store) EditDraftField(path, value string) error {
	if st.draft == nil {
		return nil
	}
	return st.draft.SetField(path, value)
}

// Save commits the draft: the matching collection entry is replaced, the
// collection re-sorted, and the snapshot reset. No-op without a draft.
func (st *Store) Save() {
	if st.draft == nil {
		return
	}
	for i, s := range st.sheets {
		if s.ID == st.draft.ID {
			st.sheets[i] = st.draft.Clone()
			break
		}
	}
	st.sortSheets()
	st.snapshot = st.draft.Clone()
}

// Revert discards unsaved edits, restoring the draft from the committed
// snapshot. No-op without a draft.
func (st *Store) Revert() {
	if st.draft == nil {
		return
	}
	st.draft = st.snapshot.Clone()
}

// CreateNew inserts a new sheet built from base (deep copy, session type
// suffixed as a copy) or from the blank template, with a fresh id and the
// current wall-clock minute. The new sheet is selected; a copy of it is
// returned.
func (st *Store) CreateNew(base *models.SetupSheet) *models.SetupSheet {
	sheet := models.NewSheet(base)
	st.sheets = append(st.sheets, sheet)
	st.sortSheets()
	st.Select(sheet.ID)
	return sheet.Clone()
}

// DeleteSelected removes the selected sheet from the collection and
// selects the next most recent remaining sheet, or clears the selection.
// No-op without a selection. Confirmation is the caller's responsibility.
func (st *Store) DeleteSelected() {
	if st.selected == "" {
		return
	}
	kept := st.sheets[:0]
	for _, s := range st.sheets {
		if s.ID != st.selected {
			kept = append(kept, s)
		}
	}
	st.sheets = kept
	if len(st.sheets) > 0 {
		st.Select(st.sheets[0].ID)
	} else {
		st.Select("")
	}
}
