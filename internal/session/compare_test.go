// ABOUTME: Tests for the bounded comparison selector.
// ABOUTME: Validates toggle semantics, oldest-first eviction, and stale id resolution.
package session

import (
	"reflect"
	"testing"

	"github.com/harperreed/setuplog/internal/models"
)

func TestToggleAddAndRemove(t *testing.T) {
	var sel Selector

	sel.Toggle("a")
	sel.Toggle("b")
	if !reflect.DeepEqual(sel.IDs(), []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b]", sel.IDs())
	}

	sel.Toggle("a")
	if !reflect.DeepEqual(sel.IDs(), []string{"b"}) {
		t.Errorf("IDs = %v, want [b] after toggling a off", sel.IDs())
	}
}

func TestToggleEvictsOldest(t *testing.T) {
	var sel Selector
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		sel.Toggle(id)
	}

	if !reflect.DeepEqual(sel.IDs(), []string{"b", "c", "d", "e"}) {
		t.Errorf("IDs = %v, want [b c d e]", sel.IDs())
	}
}

func TestClear(t *testing.T) {
	var sel Selector
	sel.Toggle("a")
	sel.Clear()
	if len(sel.IDs()) != 0 {
		t.Errorf("IDs = %v, want empty", sel.IDs())
	}
}

func TestIDsReturnsCopy(t *testing.T) {
	var sel Selector
	sel.Toggle("a")

	ids := sel.IDs()
	ids[0] = "mutated"
	if sel.IDs()[0] != "a" {
		t.Error("IDs should return an independent copy")
	}
}

func TestResolveDropsStale(t *testing.T) {
	st := NewStore([]*models.SetupSheet{
		sheet("session-a", "2024-07-15T13:00"),
		sheet("session-b", "2024-07-16T10:30"),
	})

	var sel Selector
	sel.Toggle("session-a")
	sel.Toggle("session-b")

	st.Select("session-a")
	st.DeleteSelected()

	resolved := sel.Resolve(st)
	if len(resolved) != 1 || resolved[0].ID != "session-b" {
		t.Errorf("Resolve = %d sheets, want just session-b", len(resolved))
	}
}
