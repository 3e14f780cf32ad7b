package tui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	key "github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"hexagrid/internal/hex"
	"hexagrid/internal/storage"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	case loadedMsg:
		return m.onLoaded(msg), nil
	case savedMsg:
		return m.onSaved(msg), nil
	case sharedMsg:
		if msg.err != nil {
			log.Printf("share: %v", msg.err)
			m.setError("share error: " + msg.err.Error())
		} else {
			m.setStatus(fmt.Sprintf("copied %d bytes to clipboard", msg.bytes))
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.picking != pickNone:
			return m.updatePicker(msg)
		case m.editing():
			return m.updateEditor(msg)
		case m.showCells:
			return m.updateCells(msg)
		}
		return m.updateMap(msg)
	case tea.MouseMsg:
		if m.picking != pickNone || m.editing() || m.showCells {
			return m, nil
		}
		return m.updateMouse(msg), nil
	}
	var cmd tea.Cmd
	switch {
	case m.picking != pickNone:
		m.l, cmd = m.l.Update(msg)
	case m.editing():
		m.ta, cmd = m.ta.Update(msg)
	}
	return m, cmd
}

func (m Model) updateMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := float64(m.cfg.PanStep)
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		m.board = m.board.PanBy(0, -step*4)
	case key.Matches(msg, k.Down):
		m.board = m.board.PanBy(0, step*4)
	case key.Matches(msg, k.Left):
		m.board = m.board.PanBy(-step*2, 0)
	case key.Matches(msg, k.Right):
		m.board = m.board.PanBy(step*2, 0)
	case key.Matches(msg, k.Center):
		m.board = m.board.Center()
		m.setStatus("centered")
	case key.Matches(msg, k.Save):
		m.setStatus("saving...")
		return m, saveCmd(m.store, m.savePath, m.board.Document(), false)
	case key.Matches(msg, k.Export):
		m.setStatus("exporting...")
		return m, saveCmd(m.store, m.cfg.ExportFile, m.board.Document(), true)
	case key.Matches(msg, k.Import):
		m.openPicker(pickImport)
	case key.Matches(msg, k.Share):
		return m, shareCmd(m.board.Document())
	case key.Matches(msg, k.Cells):
		m.showCells = true
		m.refreshCells()
	case key.Matches(msg, k.Prune):
		m.prune()
	case key.Matches(msg, k.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, k.Confirm):
		if m.hovering {
			m.selectCell(m.hover)
		}
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Cancel):
		m.board = m.board.Dismiss()
		m.ta.Blur()
		m.setStatus("edit dismissed")
		return m, nil
	case key.Matches(msg, k.Commit):
		sel, _ := m.board.Selected()
		m.board = m.board.SetDraft(m.ta.Value()).Save()
		m.ta.Blur()
		m.setStatus("saved " + sel.Key())
		return m, saveCmd(m.store, m.savePath, m.board.Document(), false)
	case key.Matches(msg, k.Attach):
		m.openPicker(pickImage)
		return m, nil
	case key.Matches(msg, k.Detach):
		sel, _ := m.board.Selected()
		if c, ok := m.board.Cell(sel); ok && c.Image != "" {
			m.board = m.board.DetachImage()
			m.setStatus("image removed from " + sel.Key())
		} else {
			m.setStatus("no image on " + sel.Key())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	m.board = m.board.SetDraft(m.ta.Value())
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, keys belong to the list.
	if m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.l.FilterState() == list.FilterApplied {
			m.l.ResetFilter()
			return m, nil
		}
		m.closePicker()
		m.setStatus("pick cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		p, ok := m.pickSelected()
		if !ok {
			return m, nil
		}
		purpose := m.picking
		m.closePicker()
		switch purpose {
		case pickImage:
			sel, _ := m.board.Selected()
			m.board = m.board.AttachImage(imageRef(p))
			m.setStatus(fmt.Sprintf("image %s attached to %s", filepath.Base(p), sel.Key()))
		case pickImport:
			m.setStatus("importing " + filepath.Base(p) + "...")
			return m, loadCmd(m.store, p, false)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) updateCells(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Cancel), key.Matches(msg, k.Cells):
		m.showCells = false
		return m, nil
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Prune):
		m.prune()
		if m.showCells {
			m.refreshCells()
		}
		return m, nil
	case key.Matches(msg, k.Confirm):
		i := m.tbl.Cursor()
		if i < 0 || i >= len(m.cellRows) {
			return m, nil
		}
		a := m.cellRows[i]
		if !m.board.Grid().Contains(a) {
			m.setError(a.Key() + " is not on the grid")
			return m, nil
		}
		m.showCells = false
		m.selectCell(a)
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// updateMouse turns press/motion/release into drags and taps. Motion with
// the button held is a drag; press and release on the same cell is a tap.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	ox, oy, w, h := m.mapRect()
	inMap := msg.X >= ox && msg.X < ox+w && msg.Y >= oy && msg.Y < oy+h
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inMap {
			return m
		}
		m.pressing = true
		m.moved = false
		m.pressX, m.pressY = msg.X, msg.Y
		m.board = m.board.BeginDrag()
	case tea.MouseActionMotion:
		if m.pressing {
			dx, dy := msg.X-m.pressX, msg.Y-m.pressY
			if dx != 0 || dy != 0 {
				m.moved = true
			}
			m.board = m.board.DragMove(float64(dx*2), float64(dy*4))
		}
		m.trackHover(msg.X-ox, msg.Y-oy, inMap)
	case tea.MouseActionRelease:
		if !m.pressing {
			return m
		}
		m.pressing = false
		m.board = m.board.DragEnd()
		if !m.moved && inMap {
			if a, ok := m.cellAt(msg.X-ox, msg.Y-oy); ok {
				m.selectCell(a)
			}
		}
	}
	return m
}

// cellAt hit-tests a map cell position using the centre of its braille block.
func (m Model) cellAt(cx, cy int) (hex.Axial, bool) {
	p := hex.Point{X: float64(cx*2 + 1), Y: float64(cy*4 + 2)}
	a, ok := m.board.CellAt(p)
	if !ok || !m.board.Visible(a) {
		return a, false
	}
	return a, true
}

func (m *Model) trackHover(cx, cy int, inMap bool) {
	if !inMap {
		m.hovering = false
		return
	}
	m.hover, m.hovering = m.cellAt(cx, cy)
}

func (m *Model) selectCell(a hex.Axial) {
	nb, ok := m.board.Select(a)
	if !ok {
		return
	}
	m.board = nb
	m.ta.SetValue(nb.Draft())
	m.ta.Focus()
	m.setStatus(fmt.Sprintf("editing %s  (%d cells)", a.Key(), nb.Grid().Len()))
}

func (m *Model) prune() {
	nb, n := m.board.Prune()
	m.board = nb
	m.setStatus(fmt.Sprintf("pruned %d orphaned cells", n))
}

func (m Model) onLoaded(msg loadedMsg) Model {
	name := filepath.Base(msg.path)
	if msg.err != nil {
		if msg.startup && errors.Is(msg.err, storage.ErrNotFound) {
			m.setStatus(fmt.Sprintf("new grid: %d cells", m.board.Grid().Len()))
			return m
		}
		log.Printf("load %s: %v", msg.path, msg.err)
		m.setError("load error: " + msg.err.Error())
		return m
	}
	nb, err := m.board.Replace(msg.doc, m.cfg.OrphanPolicy())
	if err != nil {
		log.Printf("load %s: %v", msg.path, err)
		m.setError("load error: " + err.Error())
		return m
	}
	m.board = nb.Center()
	m.ta.Blur()
	m.hovering = false
	// Replace ended any drag; a press held across the load must not resume it.
	m.pressing = false
	m.moved = false
	if m.showCells {
		m.refreshCells()
	}
	m.setStatus(fmt.Sprintf("loaded: %s  cells=%d notes=%d orphans=%d",
		name, m.board.Grid().Len(), len(m.board.Cells()), len(m.board.Orphans())))
	return m
}

func (m Model) onSaved(msg savedMsg) Model {
	if msg.err != nil {
		log.Printf("save %s: %v", msg.path, msg.err)
		m.setError("save error: " + msg.err.Error())
		return m
	}
	if msg.export {
		m.setStatus("exported to " + msg.path)
	} else {
		m.setStatus("saved to " + msg.path)
	}
	return m
}
