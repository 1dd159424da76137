package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/posetviz/pkg/posetfile"
)

func buildTestInstance(t *testing.T) *posetfile.Instance {
	t.Helper()
	f := &posetfile.File{Name: "chain", Ordering: "divisor", Ints: []int{2, 4, 8}}
	inst, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return inst
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(m exploreModel, msg tea.Msg) exploreModel {
	next, _ := m.Update(msg)
	return next.(exploreModel)
}

func TestExploreNavigation(t *testing.T) {
	m := newExploreModel(buildTestInstance(t))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}

	m = update(m, keyMsg("down"))
	m = update(m, keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d after two downs, want 2", m.cursor)
	}
	// Cursor clamps at the last row.
	m = update(m, keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}
	m = update(m, keyMsg("up"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after up, want 1", m.cursor)
	}
}

func TestExploreDeleteReconnects(t *testing.T) {
	m := newExploreModel(buildTestInstance(t))
	m = update(m, keyMsg("down")) // select 4
	m = update(m, keyMsg("d"))

	if m.removed != 1 {
		t.Fatalf("removed = %d, want 1", m.removed)
	}
	if len(m.rows) != 2 {
		t.Fatalf("len(rows) = %d after delete, want 2", len(m.rows))
	}
	// 8 now covers 2 directly, and the check passed silently.
	if m.rows[1].children != "2" {
		t.Errorf("row for 8 = %+v, want child 2", m.rows[1])
	}
	if strings.Contains(m.status, "CHECK FAILED") {
		t.Errorf("status = %q, want clean removal", m.status)
	}
}

func TestExploreDeleteLastElement(t *testing.T) {
	f := &posetfile.File{Ordering: "divisor", Ints: []int{7}}
	inst, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := newExploreModel(inst)
	m = update(m, keyMsg("d"))
	if len(m.rows) != 0 {
		t.Fatalf("len(rows) = %d, want 0", len(m.rows))
	}
	// Deleting on an empty poset is a no-op.
	m = update(m, keyMsg("d"))
	if m.removed != 1 {
		t.Errorf("removed = %d, want 1", m.removed)
	}
	if !strings.Contains(m.View(), "empty poset") {
		t.Errorf("View() should mention the empty poset:\n%s", m.View())
	}
}

func TestExploreViewShowsRelations(t *testing.T) {
	m := newExploreModel(buildTestInstance(t))
	view := m.View()
	for _, want := range []string{"Explore chain", "Element", "Parents", "Children", "8", "4", "2"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
