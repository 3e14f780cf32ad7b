package board

import "hexagrid/internal/hex"

// Select opens a cell for editing. It only succeeds from idle and only for
// cells on the grid.
func (s State) Select(a hex.Axial) (State, bool) {
	if s.mode == ModeEditing || !s.grid.Contains(a) {
		return s, false
	}
	s.mode = ModeEditing
	s.selected = a
	s.draft = s.cells[a].Text
	if s.ExpandOnSelect {
		s = s.withGrid(s.grid.Expand(a))
	}
	return s, true
}

// SetDraft replaces the in-progress text of the cell being edited.
func (s State) SetDraft(text string) State {
	if s.mode != ModeEditing {
		return s
	}
	s.draft = text
	return s
}

// Save commits the draft text to the selected cell and returns to idle.
func (s State) Save() State {
	if s.mode != ModeEditing {
		return s
	}
	c := s.cells[s.selected]
	c.Text = s.draft
	s = s.withCell(s.selected, c)
	return s.idle()
}

// Dismiss returns to idle without committing the draft.
func (s State) Dismiss() State {
	if s.mode != ModeEditing {
		return s
	}
	return s.idle()
}

// AttachImage stores an image reference on the selected cell right away,
// independent of Save.
func (s State) AttachImage(ref string) State {
	if s.mode != ModeEditing || ref == "" {
		return s
	}
	c := s.cells[s.selected]
	c.Image = ref
	return s.withCell(s.selected, c)
}

// DetachImage removes the image of the selected cell. With no image stored
// it does nothing.
func (s State) DetachImage() State {
	if s.mode != ModeEditing {
		return s
	}
	c, ok := s.cells[s.selected]
	if !ok || c.Image == "" {
		return s
	}
	c.Image = ""
	return s.withCell(s.selected, c)
}

func (s State) idle() State {
	s.mode = ModeIdle
	s.selected = hex.Axial{}
	s.draft = ""
	return s
}
