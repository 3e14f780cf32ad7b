package tui

import (
	"os"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"hexagrid/internal/board"
	"hexagrid/internal/config"
	"hexagrid/internal/hex"
	"hexagrid/internal/storage"
)

type Model struct {
	width  int
	height int

	cfg      config.Config
	store    storage.BlobStore
	savePath string

	board    board.State
	centered bool

	helpVisible bool
	keys        keyMap
	help        help.Model

	status    string
	statusErr bool

	// File picker
	picking pickPurpose
	cwd     string
	l       list.Model
	items   []list.Item

	// edit dialog
	ta textarea.Model

	// content table
	showCells bool
	tbl       table.Model
	cellRows  []hex.Axial

	// pointer state, in terminal cells
	pressing bool
	moved    bool
	pressX   int
	pressY   int

	// hover state
	hovering bool
	hover    hex.Axial
}

// New builds the UI around a board generated from cfg. Documents are read
// from and written to store.
func New(cfg config.Config, store storage.BlobStore) Model {
	b := board.New(cfg.Layout(), cfg.Radius)
	b.ExpandOnSelect = cfg.ExpandOnSelect
	m := Model{
		cfg:         cfg,
		store:       store,
		savePath:    cfg.SaveFile,
		board:       b,
		helpVisible: true,
		keys:        defaultKeys(),
		help:        help.New(),
		status:      "hexagrid ready",
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Write a note for this cell..."
	m.ta.CharLimit = 0
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(40)
	m.ta.SetHeight(5)
	// content table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// NewWithPath uses path as the save document instead of the configured one.
func NewWithPath(cfg config.Config, store storage.BlobStore, path string) Model {
	m := New(cfg, store)
	m.savePath = path
	return m
}

// Board exposes the current board state.
func (m Model) Board() board.State { return m.board }

func (m Model) Init() tea.Cmd {
	return loadCmd(m.store, m.savePath, true)
}

func (m Model) editing() bool { return m.board.Mode() == board.ModeEditing }

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// mapRect returns the map canvas origin and size in terminal cells. It must
// match the layout built in View.
func (m Model) mapRect() (x, y, w, h int) {
	sidebarWidth := 0
	if m.picking != pickNone {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	h = max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = max(10, contentWidth-sidebarWidth-1)
	x = sidebarWidth
	if sidebarWidth > 0 {
		x++
	}
	return x, headerHeight, w, h
}

// relayout pushes the map size into the board and the sidebar.
func (m *Model) relayout() {
	_, _, w, h := m.mapRect()
	m.board = m.board.Resize(float64(w*2), float64(h*4))
	if !m.centered && m.width > 0 {
		m.board = m.board.Center()
		m.centered = true
	}
	if m.picking != pickNone {
		m.l.SetSize(28-2, h-2)
	}
}
