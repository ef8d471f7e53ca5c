package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mindmap/pkg/i18n"
	"github.com/matzehuels/mindmap/pkg/mindmap"
	"github.com/matzehuels/mindmap/pkg/overlay"
	"github.com/matzehuels/mindmap/pkg/storage"
)

func newTestEditor(t *testing.T) editorModel {
	t.Helper()
	snaps := storage.NewSnapshotStore(storage.NewMemoryBackend())
	store := mindmap.Open(context.Background(), snaps)
	return newEditorModel(context.Background(), store, i18n.English, nil)
}

// keyMsg converts a key name into the message bubbletea would send.
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+up":
		return tea.KeyMsg{Type: tea.KeyCtrlUp}
	case "ctrl+down":
		return tea.KeyMsg{Type: tea.KeyCtrlDown}
	case "ctrl+left":
		return tea.KeyMsg{Type: tea.KeyCtrlLeft}
	case "ctrl+right":
		return tea.KeyMsg{Type: tea.KeyCtrlRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m editorModel, keys ...string) editorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		if m, ok = next.(editorModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestEditorAddChild(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "a")

	if m.store.Len() != 2 {
		t.Fatalf("nodes = %d, want 2", m.store.Len())
	}
	sel, _ := m.selected()
	if sel.ParentID != mindmap.RootID || sel.Text != "New Node" {
		t.Errorf("selected = %+v, want the new child", sel)
	}
}

func TestEditorAddOrphan(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "o")

	sel, _ := m.selected()
	if sel.ParentID != "" || sel.X != 800 {
		t.Errorf("selected = %+v, want the orphan", sel)
	}
	if len(m.store.Connections()) != 0 {
		t.Error("orphan should not be connected")
	}
}

func TestEditorEditText(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "e")
	if !m.editing {
		t.Fatal("e should start editing")
	}
	m.input.SetValue("  Goals  ")
	m = press(t, m, "enter")

	if m.editing {
		t.Error("enter should stop editing")
	}
	root, _ := m.store.Node(mindmap.RootID)
	if root.Text != "Goals" {
		t.Errorf("text = %q, want Goals", root.Text)
	}

	m = press(t, m, "e")
	m.input.SetValue("discarded")
	m = press(t, m, "esc")
	root, _ = m.store.Node(mindmap.RootID)
	if root.Text != "Goals" {
		t.Errorf("esc should keep text, got %q", root.Text)
	}
}

func TestEditorTypingGoesToInput(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "e")
	m.input.SetValue("")
	m = press(t, m, "a", "o", "q")

	if m.store.Len() != 1 {
		t.Errorf("keys typed while editing must not run commands, nodes = %d", m.store.Len())
	}
	if got := m.input.Value(); got != "aoq" {
		t.Errorf("input = %q, want aoq", got)
	}
}

func TestEditorMenuActions(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "m")
	if m.overlay.Kind() != overlay.MenuOpen {
		t.Fatalf("overlay = %s, want menu", m.overlay.Kind())
	}
	if n := len(m.overlay.Actions()); n != 3 {
		t.Errorf("root menu has %d actions, want 3 (no delete)", n)
	}

	m = press(t, m, "enter")
	if m.overlay.IsOpen() {
		t.Error("add child should close the menu")
	}
	if m.store.Len() != 2 {
		t.Fatalf("nodes = %d, want 2", m.store.Len())
	}

	// The new child is selected; its menu has delete as the last entry.
	m = press(t, m, "a")
	m = press(t, m, "up", "m", "down", "down", "down")
	if a := m.overlay.Actions()[m.menuCursor]; a != overlay.ActionDelete {
		t.Fatalf("cursor on %s, want delete", a)
	}
	m = press(t, m, "enter")
	if m.store.Len() != 1 || len(m.store.Connections()) != 0 {
		t.Errorf("delete should cascade: %d nodes, %d connections", m.store.Len(), len(m.store.Connections()))
	}
}

func TestEditorColorPicker(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "m", "down", "enter")
	if m.overlay.Kind() != overlay.ColorPicker {
		t.Fatalf("overlay = %s, want color picker", m.overlay.Kind())
	}
	if m.overlay.Staged() != mindmap.DefaultColor {
		t.Errorf("staged = %s, want current color", m.overlay.Staged())
	}

	m = press(t, m, "right")
	root, _ := m.store.Node(mindmap.RootID)
	if root.Color != mindmap.DefaultColor {
		t.Error("staging must not change the node")
	}

	m = press(t, m, "enter")
	root, _ = m.store.Node(mindmap.RootID)
	if root.Color != overlay.Colors[1] {
		t.Errorf("color = %s, want %s", root.Color, overlay.Colors[1])
	}
	if m.overlay.IsOpen() {
		t.Error("confirm should close everything")
	}

	m = press(t, m, "m", "down", "enter", "right", "esc")
	root, _ = m.store.Node(mindmap.RootID)
	if root.Color != overlay.Colors[1] {
		t.Errorf("cancel changed color to %s", root.Color)
	}
}

func TestEditorIconPicker(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "i", "right", "enter")

	root, _ := m.store.Node(mindmap.RootID)
	if root.Icon != overlay.Icons[1] {
		t.Errorf("icon = %q, want %q", root.Icon, overlay.Icons[1])
	}

	// Opening from the menu starts on the current icon; the slot before the
	// first icon is the remove slot.
	m = press(t, m, "m", "down", "down", "enter", "left", "left", "enter")
	root, _ = m.store.Node(mindmap.RootID)
	if root.Icon != "" {
		t.Errorf("icon = %q, want removed", root.Icon)
	}
}

func TestEditorConnect(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "o", "c")
	if m.connectFrom == "" {
		t.Fatal("c should start a connection")
	}
	m = press(t, m, "k", "c")

	conns := m.store.Connections()
	if len(conns) != 1 || conns[0].Target != mindmap.RootID {
		t.Errorf("connections = %+v", conns)
	}
	if m.connectFrom != "" {
		t.Error("connection mode should end")
	}

	m = press(t, m, "c", "esc")
	if m.connectFrom != "" {
		t.Error("esc should cancel connection mode")
	}
}

func TestEditorRemoveKeepsConnections(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "a", "x")

	if m.store.Len() != 1 {
		t.Errorf("nodes = %d, want 1", m.store.Len())
	}
	if len(m.store.Connections()) != 1 {
		t.Error("canvas removal leaves connections in place")
	}

	m = press(t, m, "x")
	if m.store.Len() != 1 {
		t.Error("root must not be removed")
	}
}

func TestEditorMoveNode(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "L", "J")

	root, _ := m.store.Node(mindmap.RootID)
	if root.X != 410 || root.Y != 310 || !root.Pinned {
		t.Errorf("root = %+v", root)
	}
}

func TestEditorZoom(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "+")
	if z := m.canvas.Viewport().Zoom; z != 1.1 {
		t.Errorf("zoom = %v, want 1.1", z)
	}
	m = press(t, m, "-", "-")
	if z := m.canvas.Viewport().Zoom; z != 0.9 {
		t.Errorf("zoom = %v, want 0.9", z)
	}
	m = press(t, m, "0")
	if z := m.canvas.Viewport().Zoom; z != 1 {
		t.Errorf("zoom = %v, want 1", z)
	}
}

func TestEditorStartsCenteredOnRoot(t *testing.T) {
	m := newTestEditor(t)
	v := m.canvas.Viewport()
	// Root center (475, 340) in a 60x14 preview of 20x40 unit cells.
	if v.PanX != -125 || v.PanY != 60 {
		t.Errorf("viewport = %+v, want pan (-125, 60)", v)
	}
	if !strings.Contains(m.View(), "<Cent…>") {
		t.Errorf("preview should show the selected root:\n%s", m.View())
	}
}

func TestEditorPan(t *testing.T) {
	m := newTestEditor(t)
	start := m.canvas.Viewport()

	m = press(t, m, "ctrl+right", "ctrl+down")
	v := m.canvas.Viewport()
	if v.PanX != start.PanX+100 || v.PanY != start.PanY+200 {
		t.Errorf("pan = (%v, %v), want (%v, %v)", v.PanX, v.PanY, start.PanX+100, start.PanY+200)
	}

	// Panning is in screen cells, so it covers more canvas when zoomed out.
	m = press(t, m, "0", "-", "-", "-", "-", "-")
	before := m.canvas.Viewport()
	m = press(t, m, "ctrl+left")
	if got := m.canvas.Viewport().PanX; got != before.PanX-200 {
		t.Errorf("PanX = %v, want %v", got, before.PanX-200)
	}

	m = press(t, m, "0")
	if v := m.canvas.Viewport(); v != start {
		t.Errorf("reset = %+v, want %+v", v, start)
	}
}

func TestEditorZoomChangesPreview(t *testing.T) {
	m := newTestEditor(t)
	grid := func() string {
		return strings.Join(renderPreview(m.canvas.Scene(), m.canvas.Viewport(), mindmap.RootID, previewCols, previewRows), "\n")
	}
	before := grid()
	m = press(t, m, "+", "+", "+")
	if grid() == before {
		t.Error("zoom should change the preview")
	}
}

func TestEditorFitView(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "o", "f")
	v := m.canvas.Viewport()
	sc := m.canvas.Scene()
	if v.Zoom != 2 {
		t.Errorf("fit zoom = %v, want 2", v.Zoom)
	}
	if v.PanX != sc.Bounds.MinX || v.PanY != sc.Bounds.MinY {
		t.Errorf("fit pan = (%v, %v), want scene origin (%v, %v)", v.PanX, v.PanY, sc.Bounds.MinX, sc.Bounds.MinY)
	}
	// At zoom 2 both labels fit in full.
	view := m.View()
	for _, want := range []string{"<New Node>", "[Central Idea]"} {
		if !strings.Contains(view, want) {
			t.Errorf("fitted preview missing %q:\n%s", want, view)
		}
	}
}

func TestEditorFollowsSelection(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "o")
	sel, _ := m.selected()
	v := m.canvas.Viewport()
	win := v.Window(1200, 560)
	if sel.X < win.MinX || sel.X > win.MaxX {
		t.Errorf("orphan at %v outside view %+v", sel.X, win)
	}
	m = press(t, m, "ctrl+right", "ctrl+right", "ctrl+right", "ctrl+right", "ctrl+right", "ctrl+right", "k")
	sel, _ = m.selected()
	v = m.canvas.Viewport()
	win = v.Window(1200, 560)
	if sel.ID != mindmap.RootID || sel.X < win.MinX || sel.X > win.MaxX {
		t.Errorf("root at %v outside view %+v after moving the cursor", sel.X, win)
	}
}

func TestEditorLanguageToggle(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "l")
	if m.lang != i18n.Portuguese {
		t.Fatalf("lang = %s, want pt", m.lang)
	}
	m = press(t, m, "a")
	sel, _ := m.selected()
	if sel.Text != "Novo Nó" {
		t.Errorf("new node text = %q", sel.Text)
	}
	if !strings.Contains(m.View(), "Novo Mapa") {
		t.Error("help line should be translated")
	}
}

func TestEditorNewMap(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "a", "a", "n", "x")
	if m.store.Len() != 3 {
		t.Fatalf("any key but y cancels, nodes = %d", m.store.Len())
	}

	m = press(t, m, "n", "y")
	if m.store.Len() != 1 {
		t.Errorf("nodes = %d, want 1", m.store.Len())
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestEditorOrderedHandlesParentCycles(t *testing.T) {
	m := newTestEditor(t)
	err := m.store.Replace(context.Background(), mindmap.Snapshot{
		Nodes: []mindmap.Node{
			{ID: "a", Text: "A", ParentID: "b"},
			{ID: mindmap.RootID, Text: "Root"},
			{ID: "b", Text: "B", ParentID: "a"},
			{ID: "c", Text: "C", ParentID: mindmap.RootID},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	nodes, depths := m.ordered()
	var ids []string
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	if got := strings.Join(ids, ","); got != "root,c,a,b" {
		t.Errorf("order = %s, want root,c,a,b", got)
	}
	if depths[1] != 1 {
		t.Errorf("child depth = %d, want 1", depths[1])
	}
}

func TestEditorView(t *testing.T) {
	m := newTestEditor(t)
	m = press(t, m, "a", "m")
	view := m.View()

	for _, want := range []string{"Central Idea", "New Node", "Add Child", "Delete", "zoom 100%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEditorExportDone(t *testing.T) {
	m := newTestEditor(t)
	next, _ := m.Update(exportDoneMsg{path: "mindmap.png"})
	if got := next.(editorModel).status; !strings.Contains(got, "mindmap.png") {
		t.Errorf("status = %q", got)
	}
}

func TestEditorQuit(t *testing.T) {
	m := newTestEditor(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}
