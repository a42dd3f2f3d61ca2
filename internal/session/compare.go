// ABOUTME: Bounded multi-selection of sheets for side-by-side comparison.
// ABOUTME: Holds at most four ids; selecting a fifth evicts the oldest.
package session

import "github.com/harperreed/setuplog/internal/models"

// MaxCompare is the comparison selection bound.
const MaxCompare = 4

// Selector maintains an order-preserving selection of up to MaxCompare
// sheet ids, independent of the store's single selection.
type Selector struct {
	ids []string
}

// Toggle removes the id if selected, otherwise appends it. On overflow
// the oldest entry is evicted, not the newest, so the most recently
// picked sessions stay comparable.
func (sel *Selector) Toggle(id string) {
	for i, existing := range sel.ids {
		if existing == id {
			sel.ids = append(sel.ids[:i], sel.ids[i+1:]...)
			return
		}
	}
	sel.ids = append(sel.ids, id)
	if len(sel.ids) > MaxCompare {
		sel.ids = sel.ids[len(sel.ids)-MaxCompare:]
	}
}

// IDs returns the selected ids in insertion order.
func (sel *Selector) IDs() []string {
	out := make([]string, len(sel.ids))
	copy(out, sel.ids)
	return out
}

// Clear empties the selection.
func (sel *Selector) Clear() {
	sel.ids = nil
}

// Resolve maps the selection to current collection entries, silently
// dropping ids no longer present (deleted sheets).
func (sel *Selector) Resolve(st *Store) []*models.SetupSheet {
	var out []*models.SetupSheet
	for _, id := range sel.ids {
		if sheet := st.Sheet(id); sheet != nil {
			out = append(out, sheet)
		}
	}
	return out
}
