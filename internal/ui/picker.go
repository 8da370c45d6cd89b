package ui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// filePicker adapts the bubbles filepicker to the zone's Picker control
type filePicker struct {
	model   filepicker.Model
	open    bool
	pending tea.Cmd // directory read queued by Open
}

func newFilePicker(dir string) *filePicker {
	fp := filepicker.New()
	if dir != "" {
		fp.CurrentDirectory = dir
	}
	fp.FileAllowed = true
	fp.DirAllowed = false
	return &filePicker{model: fp}
}

// Open shows the picker and queues a read of its directory
func (p *filePicker) Open() {
	p.open = true
	p.pending = p.model.Init()
}

// Reset clears the picked path so the same file can be picked again
func (p *filePicker) Reset() {
	p.model.Path = ""
}

func (p *filePicker) Close() {
	p.open = false
}

func (p *filePicker) IsOpen() bool { return p.open }

// takeCmd returns and clears the command queued by Open
func (p *filePicker) takeCmd() tea.Cmd {
	cmd := p.pending
	p.pending = nil
	return cmd
}

// update forwards msg to the picker and returns the picked path, if any
func (p *filePicker) update(msg tea.Msg) (string, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	if ok, path := p.model.DidSelectFile(msg); ok {
		return path, cmd
	}
	return "", cmd
}

func (p *filePicker) view() string {
	return p.model.View()
}

func (p *filePicker) dir() string {
	return p.model.CurrentDirectory
}
