package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"hexagrid/internal/board"
	"hexagrid/internal/storage"
)

type loadedMsg struct {
	path    string
	doc     board.Document
	err     error
	startup bool
}

type savedMsg struct {
	path   string
	err    error
	export bool
}

type sharedMsg struct {
	bytes int
	err   error
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func loadCmd(store storage.BlobStore, path string, startup bool) tea.Cmd {
	return func() tea.Msg {
		d, err := storage.Load(store, path)
		return loadedMsg{path: path, doc: d, err: err, startup: startup}
	}
}

func saveCmd(store storage.BlobStore, path string, d board.Document, export bool) tea.Cmd {
	return func() tea.Msg {
		err := storage.Save(store, path, d, export)
		return savedMsg{path: path, err: err, export: export}
	}
}

func shareCmd(d board.Document) tea.Cmd {
	return func() tea.Msg {
		data, err := d.Encode(true)
		if err != nil {
			return sharedMsg{err: err}
		}
		if err := clipboardWrite(string(data)); err != nil {
			return sharedMsg{err: fmt.Errorf("clipboard: %w", err)}
		}
		return sharedMsg{bytes: len(data)}
	}
}
