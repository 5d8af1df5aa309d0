package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/alexanderramin/tabgroups/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	browseHeaderLines = 2 // header text and its underline
	browseIndent      = 3 // width of one tree connector
	browseMinWidth    = 20

	// mouseActivation is the pointer travel, in cells, before a press
	// turns into a drag. Anything shorter is a click.
	mouseActivation = 0.5
)

type browseMode int

const (
	modeBrowse browseMode = iota
	modeKeyDrag
	modeMouseDrag
)

// browseLoadedMsg signals that the collection has been (re)loaded.
type browseLoadedMsg struct {
	forest reorder.Forest
	err    error
}

// browseDroppedMsg carries the outcome of a drop once it has been saved.
type browseDroppedMsg struct {
	draggedID string
	res       *service.MoveResult
	err       error
}

// browseModel renders the tree one row per line and lets the user drag rows
// with the mouse or the keyboard. Rows are laid out as drop targets in cell
// units, so terminal mouse coordinates feed the same session as pixels do.
type browseModel struct {
	app  *App
	keys browseKeyMap
	help help.Model

	rows      []reorder.Row
	collapsed map[string]bool
	cursor    int
	width     int
	loading   bool
	err       error
	status    string

	mode    browseMode
	session *reorder.Session
	aim     int             // keyboard drag: row being aimed at
	zone    domain.DropZone // chosen with b/i/a; none lets the pointer decide
	hint    reorder.Hint
	hintErr error // why the hinted drop would be rejected
	saving  bool
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{
		app:       app,
		keys:      newBrowseKeyMap(),
		help:      help.New(),
		collapsed: make(map[string]bool),
		width:     80,
		loading:   true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	moves := m.app.Moves
	return func() tea.Msg {
		forest, err := moves.Load(context.Background())
		return browseLoadedMsg{forest: forest, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case browseLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.refresh()
			m.status = reportStatus(msg.forest.Report)
		}
		return m, nil

	case browseDroppedMsg:
		m.finishDrop(msg)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelDrag()
			return m, tea.Quit
		}
		if m.saving || m.loading {
			return m, nil
		}
		if m.mode == modeBrowse {
			return m, m.handleBrowseKey(msg)
		}
		return m, m.handleDragKey(msg)
	}
	return m, nil
}

func (m *browseModel) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.rows) && m.rows[m.cursor].Node.IsFolder {
			id := m.rows[m.cursor].Node.ID
			m.collapsed[id] = !m.collapsed[id]
			m.refresh()
		}
	case key.Matches(msg, m.keys.Grab):
		m.grab()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m.load()
	}
	return nil
}

func (m *browseModel) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag()
		m.status = formatter.Dim("Drag cancelled.")
	case key.Matches(msg, m.keys.Up):
		if m.mode == modeKeyDrag && m.aim > 0 {
			m.aimAt(m.aim - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.mode == modeKeyDrag && m.aim < len(m.rows)-1 {
			m.aimAt(m.aim + 1)
		}
	case key.Matches(msg, m.keys.Before):
		m.chooseZone(domain.ZoneBefore)
	case key.Matches(msg, m.keys.Inside):
		m.chooseZone(domain.ZoneInside)
	case key.Matches(msg, m.keys.After):
		m.chooseZone(domain.ZoneAfter)
	case key.Matches(msg, m.keys.Drop):
		return m.drop()
	}
	return nil
}

func (m *browseModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.saving || m.loading {
		return nil
	}
	p := cellPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.mode != modeBrowse {
			return nil
		}
		i := m.rowAt(msg.Y)
		if i < 0 {
			return nil
		}
		m.cursor = i
		s, err := m.app.Moves.BeginDrag(m.rows[i].Node.ID, p, reorder.WithActivationDistance(mouseActivation))
		if err != nil {
			// Locked rows can still be selected by clicking.
			return nil
		}
		m.startDrag(s, modeMouseDrag)

	case tea.MouseActionMotion:
		if m.mode != modeMouseDrag {
			return nil
		}
		m.track(p)

	case tea.MouseActionRelease:
		if m.mode != modeMouseDrag {
			return nil
		}
		m.track(p)
		if !m.session.Activated() {
			m.cancelDrag()
			return nil
		}
		return m.drop()
	}
	return nil
}

// grab picks up the row under the cursor for a keyboard drag.
func (m *browseModel) grab() {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.cursor]
	center, _ := rowCenter(m.rows, m.metrics(), row.Node.ID)
	s, err := m.app.Moves.BeginDrag(row.Node.ID, center, reorder.WithActivationDistance(0))
	if err != nil {
		m.status = errorStatus(moveError(err))
		return
	}
	m.startDrag(s, modeKeyDrag)
	m.zone = domain.ZoneAfter
	m.aimAt(m.cursor)
}

func (m *browseModel) startDrag(s *reorder.Session, mode browseMode) {
	m.session = s
	m.mode = mode
	m.keys.dragging = true
	m.zone = domain.ZoneNone
	m.hint = reorder.Hint{}
	m.hintErr = nil
	m.status = ""
}

// aimAt points the keyboard drag at row i, synthesizing a pointer inside
// the row that classifies as the chosen zone. The dragged row stays in the
// layout so aiming at it yields no hint.
func (m *browseModel) aimAt(i int) {
	m.aim = i
	targets := reorder.Layout(m.rows, m.metrics())
	p := reorder.DefaultZoneThresholds().ZonePoint(targets[i].Rect, m.rows[i].Node.IsFolder, m.zone)
	m.setHint(m.session.Move(p, targets, m.app.Moves.Index()))
}

// track follows the mouse. A zone chosen with b/i/a overrides the one
// under the pointer while keeping the pointer's target.
func (m *browseModel) track(p domain.Point) {
	targets := m.session.Targets(m.rows, m.metrics())
	m.setHint(m.session.Move(p, targets, m.app.Moves.Index()))
	if m.zone != domain.ZoneNone {
		m.retarget()
	}
}

func (m *browseModel) chooseZone(z domain.DropZone) {
	m.zone = z
	if m.mode == modeKeyDrag {
		m.aimAt(m.aim)
		return
	}
	m.retarget()
}

func (m *browseModel) retarget() {
	if !m.hint.Active() {
		return
	}
	idx := m.app.Moves.Index()
	target, ok := idx.Get(m.hint.TargetID)
	if !ok {
		return
	}
	targets := m.session.Targets(m.rows, m.metrics())
	rect, ok := reorder.RectOf(targets, target.ID)
	if !ok {
		return
	}
	p := reorder.DefaultZoneThresholds().ZonePoint(rect, target.IsFolder, m.zone)
	m.setHint(m.session.Move(p, targets, idx))
}

func (m *browseModel) setHint(h reorder.Hint) {
	m.hint = h
	m.hintErr = nil
	if h.Active() {
		_, m.hintErr = reorder.ValidateMove(m.app.Moves.Index(), m.session.DraggedID(), h.TargetID, h.Zone)
	}
}

func (m *browseModel) drop() tea.Cmd {
	s := m.session
	draggedID := s.DraggedID()
	moves := m.app.Moves
	m.saving = true
	return func() tea.Msg {
		res, err := moves.Drop(context.Background(), s)
		return browseDroppedMsg{draggedID: draggedID, res: res, err: err}
	}
}

func (m *browseModel) finishDrop(msg browseDroppedMsg) {
	m.saving = false
	m.endDrag()
	if msg.err != nil {
		m.refresh()
		m.status = errorStatus(moveError(msg.err))
		return
	}
	if msg.res.Applied {
		m.reveal(msg.draggedID)
	}
	m.refresh()
	m.status = describeMove(m.app.Moves.Index(), msg.res)
	if msg.res.Applied {
		for i, r := range m.rows {
			if r.Node.ID == msg.draggedID {
				m.cursor = i
				break
			}
		}
	}
}

// reveal expands every folder above id.
func (m *browseModel) reveal(id string) {
	idx := m.app.Moves.Index()
	seen := map[string]bool{id: true}
	n, ok := idx.Get(id)
	for ok && n.ParentID != nil && !seen[*n.ParentID] {
		seen[*n.ParentID] = true
		delete(m.collapsed, *n.ParentID)
		n, ok = idx.Get(*n.ParentID)
	}
}

func (m *browseModel) cancelDrag() {
	if m.session != nil {
		_ = m.session.Cancel()
	}
	m.endDrag()
}

func (m *browseModel) endDrag() {
	m.session = nil
	m.mode = modeBrowse
	m.keys.dragging = false
	m.zone = domain.ZoneNone
	m.hint = reorder.Hint{}
	m.hintErr = nil
}

func (m *browseModel) refresh() {
	forest := m.app.Moves.Forest()
	m.rows = reorder.Flatten(forest.Roots, func(n *domain.Node) bool {
		return !m.collapsed[n.ID]
	})
	m.cursor = max(0, min(m.cursor, len(m.rows)-1))
}

func (m *browseModel) metrics() reorder.RowMetrics {
	return reorder.RowMetrics{
		Top:       browseHeaderLines,
		Width:     float64(max(m.width, browseMinWidth)),
		RowHeight: 1,
		Indent:    browseIndent,
	}
}

func (m *browseModel) rowAt(y int) int {
	i := y - browseHeaderLines
	if i < 0 || i >= len(m.rows) {
		return -1
	}
	return i
}

// cellPoint maps a terminal cell to the point at its center.
func cellPoint(x, y int) domain.Point {
	return domain.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Tab groups"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case len(m.rows) == 0:
		b.WriteString(formatter.Dim("No groups yet.") + "\n")
	default:
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	if line := m.statusLine(); line != "" {
		b.WriteString(line + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderRows prints one line per row. Markers go after the title so the
// title column stays where the layout put the row's drop target.
func (m *browseModel) renderRows() string {
	items := make([]formatter.TreeItem, len(m.rows))
	for i, r := range m.rows {
		items[i] = formatter.TreeItem{
			Title:  r.Node.Title,
			Depth:  r.Depth,
			IsLast: r.IsLast,
			Folder: r.Node.IsFolder,
			Locked: r.Node.Locked,
		}
	}
	lines := strings.Split(strings.TrimSuffix(formatter.RenderTree(items), "\n"), "\n")

	dragged := ""
	if m.session != nil {
		dragged = m.session.DraggedID()
	}

	var b strings.Builder
	for i, line := range lines {
		n := m.rows[i].Node
		if n.IsFolder && m.collapsed[n.ID] && len(n.Children) > 0 {
			line += formatter.Dim(fmt.Sprintf(" +%d", len(n.Children)))
		}
		if n.ID == dragged {
			line += formatter.StyleYellowBold.Render("  ✥ moving")
		}
		if m.hint.Active() && n.ID == m.hint.TargetID {
			line += "  " + formatter.ZoneMarker(m.hint.Zone)
			if m.hintErr != nil {
				line += formatter.StyleRed.Render("  ✗ " + m.hintErr.Error())
			}
		}
		switch {
		case m.mode == modeBrowse && i == m.cursor:
			line += formatter.StyleHeader.Render("  ◀")
		case m.mode == modeKeyDrag && i == m.aim:
			line += formatter.Dim("  ◀")
		}
		b.WriteString(ansi.Truncate(line, m.width, "…"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *browseModel) statusLine() string {
	switch {
	case m.saving:
		return formatter.StyleYellow.Render("Saving...")
	case m.session != nil:
		idx := m.app.Moves.Index()
		line := "Dragging " + formatter.Bold(titleOf(idx, m.session.DraggedID()))
		if m.hint.Active() {
			line += "  " + formatter.ZoneMarker(m.hint.Zone) + " " + titleOf(idx, m.hint.TargetID)
		}
		return line
	}
	return m.status
}

func reportStatus(r reorder.Report) string {
	if r.Clean() {
		return ""
	}
	return formatter.StyleYellow.Render(fmt.Sprintf(
		"%d orphan(s) shown at the root, %d node(s) hidden in cycles; run `tabgroups doctor --fix`",
		len(r.Orphans), len(r.Unreachable)))
}

func errorStatus(err error) string {
	return formatter.StyleRed.Render(err.Error())
}
