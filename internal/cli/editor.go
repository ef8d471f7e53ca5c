package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/export"
	"github.com/matzehuels/mindmap/pkg/i18n"
	"github.com/matzehuels/mindmap/pkg/mindmap"
	"github.com/matzehuels/mindmap/pkg/overlay"
)

// Editor styles
var (
	editorSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editorNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editorDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	editorPanelStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// One preview cell covers this many canvas units at zoom 1.
const (
	cellWidth  = 20
	cellHeight = 40
)

// moveStep is how far shift+arrow moves the selected node.
const moveStep = 10

// panCells is how many preview cells ctrl+arrow scrolls the view.
const panCells = 5

// =============================================================================
// Messages
// =============================================================================

// exportDoneMsg reports the end of a background export.
type exportDoneMsg struct {
	path string
	err  error
}

// =============================================================================
// EditorModel - Interactive map editor
// =============================================================================

// editorModel is the bubbletea model of the terminal editor. Every change
// goes through the store, which saves it immediately.
type editorModel struct {
	ctx    context.Context
	store  *mindmap.Store
	canvas *export.Canvas
	opts   []export.Option

	lang i18n.Language
	tr   i18n.Translations

	cursor      int
	overlay     overlay.Overlay
	menuCursor  int
	pickCursor  int
	connectFrom string
	confirmNew  bool

	input   textinput.Model
	editing bool

	status        string
	width, height int
}

func newEditorModel(ctx context.Context, store *mindmap.Store, lang i18n.Language, opts []export.Option) editorModel {
	ti := textinput.New()
	ti.CharLimit = errors.MaxTextLength
	ti.Prompt = "› "

	m := editorModel{
		ctx:    ctx,
		store:  store,
		canvas: export.NewCanvas(store),
		opts:   opts,
		lang:   lang,
		tr:     i18n.For(lang),
		input:  ti,
	}
	m.centerOnSelected()
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

// ordered returns the nodes in tree order with their depth. Nodes whose
// parent is missing start a tree of their own.
func (m editorModel) ordered() ([]mindmap.Node, []int) {
	snap := m.store.Snapshot()
	children := make(map[string][]mindmap.Node)
	ids := make(map[string]bool, len(snap.Nodes))
	for _, n := range snap.Nodes {
		ids[n.ID] = true
	}
	var roots []mindmap.Node
	for _, n := range snap.Nodes {
		if n.ParentID == "" || !ids[n.ParentID] || n.ParentID == n.ID {
			roots = append(roots, n)
			continue
		}
		children[n.ParentID] = append(children[n.ParentID], n)
	}

	var (
		nodes  []mindmap.Node
		depths []int
		seen   = make(map[string]bool, len(snap.Nodes))
	)
	var walk func(n mindmap.Node, depth int)
	walk = func(n mindmap.Node, depth int) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		nodes = append(nodes, n)
		depths = append(depths, depth)
		for _, c := range children[n.ID] {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	// Parent cycles are unreachable from any root; list them flat.
	for _, n := range snap.Nodes {
		walk(n, 0)
	}
	return nodes, depths
}

// selected returns the node under the cursor.
func (m editorModel) selected() (mindmap.Node, bool) {
	nodes, _ := m.ordered()
	if len(nodes) == 0 {
		return mindmap.Node{}, false
	}
	return nodes[min(m.cursor, len(nodes)-1)], true
}

// selectID moves the cursor to id.
func (m *editorModel) selectID(id string) {
	nodes, _ := m.ordered()
	if i := slices.IndexFunc(nodes, func(n mindmap.Node) bool { return n.ID == id }); i >= 0 {
		m.cursor = i
	}
}

// previewSize returns the preview grid size and the canvas extent it shows
// at zoom 1.
func (m editorModel) previewSize() (cols, rows int, width, height float64) {
	cols = previewCols
	if m.width > 0 {
		cols = max(previewMinCols, min(previewMaxCols, m.width-4))
	}
	rows = previewRows
	return cols, rows, float64(cols * cellWidth), float64(rows * cellHeight)
}

// centerOnSelected pans the view so the selected node is in the middle of
// the preview.
func (m editorModel) centerOnSelected() {
	sel, ok := m.selected()
	if !ok {
		return
	}
	size := sel.Size()
	_, _, w, h := m.previewSize()
	m.canvas.UpdateViewport(func(v *export.Viewport) {
		v.CenterOn(sel.X+size.Width/2, sel.Y+size.Height/2, w, h)
	})
}

// follow recenters the view when the selected node leaves the preview.
func (m editorModel) follow() {
	sel, ok := m.selected()
	if !ok {
		return
	}
	_, _, w, h := m.previewSize()
	v := m.canvas.Viewport()
	win := v.Window(w, h)
	if sel.X < win.MinX || sel.X > win.MaxX || sel.Y < win.MinY || sel.Y > win.MaxY {
		m.centerOnSelected()
	}
}

func (m *editorModel) clampCursor() {
	nodes, _ := m.ordered()
	m.cursor = max(0, min(m.cursor, len(nodes)-1))
}

// =============================================================================
// Update
// =============================================================================

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.status = StyleWarning.Render(errors.UserMessage(msg.err))
		} else {
			m.status = StyleSuccess.Render(iconSuccess + " " + msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		switch m.overlay.Kind() {
		case overlay.MenuOpen:
			return m.updateMenu(msg), nil
		case overlay.ColorPicker:
			return m.updateColorPicker(msg), nil
		case overlay.IconPicker:
			return m.updateIconPicker(msg), nil
		}
		return m.updateCanvas(msg)
	}
	return m, nil
}

// updateCanvas handles keys while no overlay is open.
func (m editorModel) updateCanvas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.confirmNew {
		m.confirmNew = false
		if key == "y" {
			m.store.ResetMap(m.ctx)
			m.cursor = 0
			m.status = m.tr.NewMap
		} else {
			m.status = ""
		}
		return m, nil
	}

	nodes, _ := m.ordered()
	sel, ok := m.selected()

	switch key {
	case "q", "esc":
		if m.connectFrom != "" {
			m.connectFrom = ""
			m.status = ""
			return m, nil
		}
		if key == "q" {
			return m, tea.Quit
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.follow()
	case "down", "j":
		if m.cursor < len(nodes)-1 {
			m.cursor++
		}
		m.follow()
	case "a":
		if !ok {
			break
		}
		if n, added := m.store.AddNode(m.ctx, sel.ID); added {
			m.selectID(n.ID)
			m.follow()
		}
	case "o":
		if n, added := m.store.AddOrphanNode(m.ctx); added {
			m.selectID(n.ID)
			m.follow()
		}
	case "enter", "e":
		if !ok {
			break
		}
		m.editing = true
		m.input.SetValue(sel.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case " ", "m":
		if ok {
			m.overlay.OpenMenu(sel.ID, sel.X, sel.Y)
			m.menuCursor = 0
		}
	case "i":
		if ok {
			m.overlay.OpenIconPicker(sel.ID)
			m.pickCursor = max(0, slices.Index(overlay.Icons, sel.Icon))
		}
	case "c":
		if !ok {
			break
		}
		if m.connectFrom == "" {
			m.connectFrom = sel.ID
			m.status = "connect " + sel.ID + " " + iconArrow + " ?"
			break
		}
		if conn, added := m.store.AddConnection(m.ctx, m.connectFrom, sel.ID); added {
			m.status = conn.Source + " " + iconArrow + " " + conn.Target
		} else {
			m.status = StyleWarning.Render("already connected")
		}
		m.connectFrom = ""
	case "x", "delete", "backspace":
		if ok && !sel.IsRoot() {
			m.store.ApplyNodeChanges(m.ctx, []mindmap.NodeChange{mindmap.Remove(sel.ID)})
			m.clampCursor()
		}
	case "shift+up", "K":
		m.nudge(sel, ok, 0, -moveStep)
	case "shift+down", "J":
		m.nudge(sel, ok, 0, moveStep)
	case "shift+left", "H":
		m.nudge(sel, ok, -moveStep, 0)
	case "shift+right", "L":
		m.nudge(sel, ok, moveStep, 0)
	case "+", "=":
		m.canvas.UpdateViewport(func(v *export.Viewport) { v.ZoomIn() })
	case "-":
		m.canvas.UpdateViewport(func(v *export.Viewport) { v.ZoomOut() })
	case "0":
		m.canvas.UpdateViewport(func(v *export.Viewport) { *v = export.DefaultViewport() })
		m.centerOnSelected()
	case "f":
		_, _, w, h := m.previewSize()
		m.canvas.FitView(w, h)
	case "ctrl+up":
		m.pan(0, -panCells*cellHeight)
	case "ctrl+down":
		m.pan(0, panCells*cellHeight)
	case "ctrl+left":
		m.pan(-panCells*cellWidth, 0)
	case "ctrl+right":
		m.pan(panCells*cellWidth, 0)
	case "l":
		m.lang = m.lang.Toggle()
		m.tr = i18n.For(m.lang)
		m.store.SetTranslations(m.tr)
	case "n":
		m.confirmNew = true
		m.status = StyleWarning.Render(m.tr.NewMap + "? (y/n)")
	case "p":
		return m, m.exportCmd(export.PNG)
	case "P":
		return m, m.exportCmd(export.PDF)
	}
	return m, nil
}

// pan scrolls the view by (dx, dy) view units.
func (m editorModel) pan(dx, dy float64) {
	m.canvas.UpdateViewport(func(v *export.Viewport) { v.Pan(dx/v.Zoom, dy/v.Zoom) })
}

// nudge moves sel by (dx, dy) as a canvas drag would.
func (m editorModel) nudge(sel mindmap.Node, ok bool, dx, dy float64) {
	if !ok {
		return
	}
	m.store.ApplyNodeChanges(m.ctx, []mindmap.NodeChange{mindmap.MoveTo(sel.ID, sel.X+dx, sel.Y+dy)})
}

// updateEditing routes keys to the text input until enter or esc.
func (m editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if err := errors.ValidateText(text); err != nil {
			m.status = StyleWarning.Render(errors.UserMessage(err))
			return m, nil
		}
		if sel, ok := m.selected(); ok && text != sel.Text {
			m.store.UpdateNode(m.ctx, sel.ID, mindmap.NodeUpdate{Text: &text})
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateMenu handles the node context menu.
func (m editorModel) updateMenu(msg tea.KeyMsg) editorModel {
	actions := m.overlay.Actions()
	switch msg.String() {
	case "esc", "q":
		m.overlay.Close()
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(actions)-1 {
			m.menuCursor++
		}
	case "enter", " ":
		m.runAction(actions[m.menuCursor])
	}
	return m
}

// runAction executes a menu entry for the menu's node.
func (m *editorModel) runAction(a overlay.Action) {
	id := m.overlay.NodeID()
	switch a {
	case overlay.ActionAddChild:
		m.overlay.Close()
		if n, ok := m.store.AddNode(m.ctx, id); ok {
			m.selectID(n.ID)
		}
	case overlay.ActionChangeColor:
		n, _ := m.store.Node(id)
		m.overlay.OpenColorPicker(n.Color)
		m.pickCursor = max(0, slices.Index(overlay.Colors, m.overlay.Staged()))
	case overlay.ActionSelectIcon:
		n, _ := m.store.Node(id)
		m.overlay.OpenIconPicker(id)
		m.pickCursor = max(0, slices.Index(overlay.Icons, n.Icon))
	case overlay.ActionDelete:
		m.overlay.Close()
		m.store.DeleteNode(m.ctx, id)
		m.clampCursor()
	}
}

// updateColorPicker stages colors until confirmed or cancelled.
func (m editorModel) updateColorPicker(msg tea.KeyMsg) editorModel {
	switch msg.String() {
	case "esc", "q":
		m.overlay.Cancel()
	case "left", "h":
		m.pickCursor = (m.pickCursor + len(overlay.Colors) - 1) % len(overlay.Colors)
		m.overlay.Stage(overlay.Colors[m.pickCursor])
	case "right", "l":
		m.pickCursor = (m.pickCursor + 1) % len(overlay.Colors)
		m.overlay.Stage(overlay.Colors[m.pickCursor])
	case "enter":
		if c, ok := m.overlay.Confirm(); ok {
			m.store.UpdateNode(m.ctx, c.NodeID, c.Update())
		}
	}
	return m
}

// updateIconPicker picks an icon; the slot after the last icon removes it.
func (m editorModel) updateIconPicker(msg tea.KeyMsg) editorModel {
	slots := len(overlay.Icons) + 1
	switch msg.String() {
	case "esc", "q":
		m.overlay.Close()
	case "left", "h":
		m.pickCursor = (m.pickCursor + slots - 1) % slots
	case "right", "l":
		m.pickCursor = (m.pickCursor + 1) % slots
	case "enter", " ":
		var (
			c  overlay.Commit
			ok bool
		)
		if m.pickCursor == len(overlay.Icons) {
			c, ok = m.overlay.RemoveIcon()
		} else {
			c, ok = m.overlay.PickIcon(overlay.Icons[m.pickCursor])
		}
		if ok {
			m.store.UpdateNode(m.ctx, c.NodeID, c.Update())
		}
	}
	return m
}

// exportCmd writes the map to the default file for f in the background.
func (m editorModel) exportCmd(f export.Format) tea.Cmd {
	ctx, canvas, opts := m.ctx, m.canvas, m.opts
	return func() tea.Msg {
		path := export.DefaultFilename(f)
		return exportDoneMsg{path: path, err: export.ExportFile(ctx, canvas, f, path, opts...)}
	}
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mind Map"))
	b.WriteString(editorDimStyle.Render(fmt.Sprintf("  %s · zoom %d%%",
		strings.ToUpper(string(m.lang)), int(m.canvas.Viewport().Zoom*100+0.5))))
	b.WriteString("\n\n")

	cols, rows, _, _ := m.previewSize()
	sel, _ := m.selected()
	lines := renderPreview(m.canvas.Scene(), m.canvas.Viewport(), sel.ID, cols, rows)
	b.WriteString(editorPanelStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	nodes, depths := m.ordered()
	for i, n := range nodes {
		cursor := "  "
		style := editorNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = editorSelectedStyle
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(n.Color)).Render("■")
		label := n.Text
		if n.Icon != "" {
			label = n.Icon + " " + label
		}
		if i == m.cursor && m.editing {
			label = m.input.View()
		}
		line := cursor + strings.Repeat("  ", depths[i]) + swatch + " " + style.Render(label)
		if n.ID == m.connectFrom {
			line += " " + StyleHighlight.Render(iconArrow)
		}
		b.WriteString(line + "\n")
	}

	if panel := m.overlayView(); panel != "" {
		b.WriteString("\n" + panel + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(editorDimStyle.Render(m.helpLine()))
	return b.String()
}

// overlayView renders the open menu or picker.
func (m editorModel) overlayView() string {
	var body strings.Builder
	switch m.overlay.Kind() {
	case overlay.MenuOpen:
		for i, a := range m.overlay.Actions() {
			label := m.actionLabel(a)
			if i == m.menuCursor {
				body.WriteString(editorSelectedStyle.Render("▸ " + label))
			} else {
				body.WriteString(editorNormalStyle.Render("  " + label))
			}
			body.WriteString("\n")
		}
	case overlay.ColorPicker:
		body.WriteString(m.tr.ChangeColor + "\n")
		for i, c := range overlay.Colors {
			block := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██")
			if i == m.pickCursor {
				block = "[" + block + "]"
			} else {
				block = " " + block + " "
			}
			body.WriteString(block)
		}
		body.WriteString("\n" + editorDimStyle.Render("⏎ "+m.tr.OK+"  esc "+m.tr.Cancel))
	case overlay.IconPicker:
		body.WriteString(m.tr.SelectIcon + "\n")
		for i, icon := range append(slices.Clone(overlay.Icons), "✗") {
			if i == m.pickCursor {
				body.WriteString("[" + icon + "]")
			} else {
				body.WriteString(" " + icon + " ")
			}
		}
		if m.pickCursor == len(overlay.Icons) {
			body.WriteString("\n" + editorDimStyle.Render(m.tr.RemoveIcon))
		}
	default:
		return ""
	}
	return editorPanelStyle.Render(strings.TrimRight(body.String(), "\n"))
}

func (m editorModel) actionLabel(a overlay.Action) string {
	switch a {
	case overlay.ActionAddChild:
		return m.tr.AddChild
	case overlay.ActionChangeColor:
		return m.tr.ChangeColor
	case overlay.ActionSelectIcon:
		return m.tr.SelectIcon
	case overlay.ActionDelete:
		return m.tr.DeleteNode
	}
	return string(a)
}

func (m editorModel) helpLine() string {
	if m.editing {
		return "⏎ " + m.tr.OK + "  esc " + m.tr.Cancel
	}
	return strings.Join([]string{
		"a " + m.tr.AddChildNode,
		"o " + m.tr.AddOrphanNode,
		"e edit",
		"m menu",
		"c connect",
		"x remove",
		"+/- " + m.tr.ZoomIn + "/" + m.tr.ZoomOut,
		"0 " + m.tr.ResetZoom,
		"f fit",
		"ctrl+arrows pan",
		"p/P " + m.tr.ExportPNG + "/" + m.tr.ExportPDF,
		"l " + strings.ToUpper(string(m.lang.Toggle())),
		"n " + m.tr.NewMap,
		"q quit",
	}, "  ")
}
