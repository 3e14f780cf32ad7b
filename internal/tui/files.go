package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
)

type pickPurpose int

const (
	pickNone pickPurpose = iota
	pickImage
	pickImport
)

var pickExts = map[pickPurpose]map[string]bool{
	pickImage:  {".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".bmp": true},
	pickImport: {".json": true, ".csv": true},
}

type fileItem struct {
	title, desc string
	path        string
	isDir       bool
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// openPicker shows the sidebar listing files for the given purpose.
func (m *Model) openPicker(p pickPurpose) {
	m.picking = p
	switch p {
	case pickImage:
		m.l.Title = "Images"
	case pickImport:
		m.l.Title = "Import"
	}
	m.ta.Blur()
	m.refreshDir()
	m.relayout()
}

// closePicker hides the sidebar. Closing without a pick is a cancellation,
// not an error.
func (m *Model) closePicker() {
	m.picking = pickNone
	m.l.ResetFilter()
	if m.editing() {
		m.ta.Focus()
	}
	m.relayout()
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.setError("read dir error: " + err.Error())
		return
	}
	exts := pickExts[m.picking]
	var dirs, files []list.Item
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			dirs = append(dirs, fileItem{title: name + "/", desc: "dir", path: p, isDir: true})
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if exts[ext] {
			files = append(files, fileItem{title: name, desc: ext, path: p})
		}
	}
	byTitle := func(items []list.Item) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	}
	byTitle(dirs)
	byTitle(files)
	items := make([]list.Item, 0, len(dirs)+len(files)+1)
	if parent := filepath.Dir(m.cwd); parent != m.cwd {
		items = append(items, fileItem{title: "../", desc: "dir", path: parent, isDir: true})
	}
	items = append(items, dirs...)
	items = append(items, files...)
	m.items = items
	m.l.SetItems(items)
	m.l.Select(0)
	if len(files) == 0 {
		m.setStatus("no matching files in " + filepath.Base(m.cwd))
	}
}

// pickSelected acts on the highlighted entry: directories are entered,
// files are handed to the purpose the picker was opened for.
func (m *Model) pickSelected() (string, bool) {
	it, ok := m.l.SelectedItem().(fileItem)
	if !ok {
		return "", false
	}
	if it.isDir {
		m.cwd = it.path
		m.l.ResetFilter()
		m.refreshDir()
		return "", false
	}
	return it.path, true
}

// imageRef turns a picked file into the opaque reference stored on a cell.
func imageRef(path string) string {
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	return "file://" + filepath.ToSlash(path)
}
