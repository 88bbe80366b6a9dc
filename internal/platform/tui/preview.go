package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lrconv/internal/level"
	"github.com/vovakirdan/lrconv/internal/textlevel"
)

// tableChrome is the vertical space around the table: title, margins, help bar.
const tableChrome = 8

// PreviewItem pairs a decoded level with its display name.
type PreviewItem struct {
	Level       *level.DecodedLevel
	DisplayName string
}

// NewPreviewItems wraps decoded levels for the browser.
func NewPreviewItems(levels []*level.DecodedLevel) []PreviewItem {
	items := make([]PreviewItem, len(levels))
	for i, d := range levels {
		items[i] = PreviewItem{Level: d, DisplayName: textlevel.DisplayName(d.Name)}
	}
	return items
}

// PreviewKeyMap defines the key bindings for the level browser.
type PreviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultPreviewKeyMap returns default key bindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PreviewModel is the Bubble Tea model for browsing decoded levels: a table
// of levels and a detail view showing the rendered map.
type PreviewModel struct {
	items    []PreviewItem
	table    table.Model
	help     help.Model
	keys     PreviewKeyMap
	width    int
	height   int
	viewing  bool
	quitting bool
}

// NewPreviewModel creates a browser over the given levels.
func NewPreviewModel(items []PreviewItem, width, height int) PreviewModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := PreviewModel{
		items:  items,
		keys:   DefaultPreviewKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the level table with appropriate columns.
func (m *PreviewModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 18},
		{Title: "Encoding", Width: 12},
		{Title: "Gold", Width: 6},
	}

	height := m.height - tableChrome
	if height > len(m.items) {
		height = len(m.items)
	}
	if height < 1 {
		height = 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			item.DisplayName,
			item.Level.Header.Encoding.String(),
			fmt.Sprintf("%d", item.Level.Grid.CountTile(level.TileGold)),
		}
	}
	t.SetRows(rows)

	return t
}

// Cursor returns the index of the selected level.
func (m PreviewModel) Cursor() int {
	return m.table.Cursor()
}

// Init initializes the model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.viewing = false
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				m.viewing = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if m.viewing {
				m.table.MoveUp(1)
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if m.viewing {
				m.table.MoveDown(1)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.items) == 0 {
		return "No levels decoded.\n\n" + m.help.View(m.keys) + "\n"
	}
	if m.viewing {
		return m.levelView()
	}
	return m.listView()
}

// listView renders the level table.
func (m PreviewModel) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Level Browser"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// levelView renders one level's map with styled glyphs.
func (m PreviewModel) levelView() string {
	item := m.items[m.table.Cursor()]
	d := item.Level

	var grid strings.Builder
	for i, row := range d.Rows() {
		if i > 0 {
			grid.WriteString("\n")
		}
		grid.WriteString(styleRow(row))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(item.DisplayName))
	b.WriteString(faintStyle.Render(fmt.Sprintf("  (%d/%d)", m.table.Cursor()+1, len(m.items))))
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(grid.String()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("encoding: %s  enemies: %d  exit ladders: %d  gold: %d",
		d.Header.Encoding, len(d.Header.Enemies), len(d.Header.ExitLadders),
		d.Grid.CountTile(level.TileGold)))
	b.WriteString("\n")
	if len(d.Overlaps) > 0 {
		coords := make([]string, len(d.Overlaps))
		for i, p := range d.Overlaps {
			coords[i] = p.String()
		}
		b.WriteString(fmt.Sprintf("hidden ladders: %s", strings.Join(coords, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
