package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dropzone/internal/config"
	"dropzone/internal/domain"
	"dropzone/internal/dropzone"
	"dropzone/internal/eventbus"
	"dropzone/internal/ui/views"
)

// pickerTop is the first screen row below the zone box and status line
const pickerTop = views.ZoneTop + views.ZoneInnerHeight + 2 + 2

// Model hosts a single drop zone in the terminal
type Model struct {
	zone   *dropzone.Zone
	picker *filePicker
	bus    eventbus.EventBus
	logger *slog.Logger

	width  int
	height int
	keys   keyMap
	help   help.Model
	status string

	pressInside bool // left button went down inside the zone
	quitting    bool

	renderer *views.Renderer
	pager    *PagerOps
	unsubs   []func()
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, logger *slog.Logger) *Model {
	if bus == nil {
		bus = eventbus.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	picker := newFilePicker(cfg.StartDir)
	zone := dropzone.New(cfg.ZoneOptions(), bus, picker)
	zone.SetLogger(logger)

	m := &Model{
		zone:     zone,
		picker:   picker,
		bus:      bus,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
		pager:    NewPagerOps(),
	}

	m.unsubs = append(m.unsubs,
		bus.Subscribe(eventbus.EventChange, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ChangeEvent); ok && ev.Source == zone.ID() {
				m.status = selectionStatus(len(ev.Files))
			}
		}),
		bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ErrorEvent); ok && ev.Source == zone.ID() {
				m.status = ""
			}
		}),
	)

	return m
}

func selectionStatus(n int) string {
	if n == 1 {
		return "1 file selected"
	}
	return fmt.Sprintf("%d files selected", n)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Zone returns the hosted zone
func (m *Model) Zone() *dropzone.Zone { return m.zone }

// Selected returns the files selected when the program ended
func (m *Model) Selected() []domain.File {
	return m.zone.Selection().Files()
}

// RequirementMet reports whether a required zone has files
func (m *Model) RequirementMet() bool {
	return !m.zone.Options().Required || m.zone.Selection().HasFiles()
}

// Close drops the model's bus subscriptions
func (m *Model) Close() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, cmd := m.picker.update(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-pickerTop, 3)})
		return m, cmd

	case tea.KeyMsg:
		if msg.Paste {
			m.drop(parseDroppedPaths(string(msg.Runes)))
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case pagerMsg:
		if msg.err != nil {
			m.logger.Error("pager failed", "error", msg.err)
		}
		return m, nil
	}

	if m.picker.IsOpen() {
		_, cmd := m.picker.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}

	if m.picker.IsOpen() {
		if key.Matches(msg, m.keys.Close) {
			m.picker.Close()
			return nil
		}
		path, cmd := m.picker.update(msg)
		if path != "" {
			m.pick(path)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Browse):
		m.zone.Activate(dropzone.OriginZone)
		return m.picker.takeCmd()
	case key.Matches(msg, m.keys.View):
		return m.showPager()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	inside := views.ZoneContains(m.width, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pressInside = inside
		}

	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		ev := &dropzone.DragEvent{X: msg.X, Y: msg.Y}
		switch {
		case inside && m.zone.DragActive():
			m.zone.DragOver(ev)
		case inside:
			m.zone.DragEnter(ev)
		case m.zone.DragActive():
			m.zone.DragLeave(ev)
		}

	case tea.MouseActionRelease:
		pressed := m.pressInside
		m.pressInside = false
		if m.zone.DragActive() {
			m.zone.DragLeave(&dropzone.DragEvent{X: msg.X, Y: msg.Y})
			return nil
		}
		if !pressed {
			return nil
		}
		if inside {
			m.zone.Activate(dropzone.OriginZone)
			return m.picker.takeCmd()
		}
		if m.picker.IsOpen() {
			m.zone.Activate(dropzone.OriginPicker)
		}
	}
	return nil
}

// pick hands a file chosen in the picker to the zone
func (m *Model) pick(path string) {
	f, err := domain.NewLocalFile(path)
	if err != nil {
		m.logger.Warn("picked file unavailable", "path", path, "error", err)
		m.status = fmt.Sprintf("cannot open %s", path)
		return
	}

	_ = m.zone.PickerCompleted(dropzone.Files{f})
	if !m.zone.Options().Multiple {
		m.picker.Close()
	}
}

// drop delivers pasted paths to the zone as a drag gesture
func (m *Model) drop(paths []string) {
	var files dropzone.Files
	for _, p := range paths {
		f, err := domain.NewLocalFile(p)
		if err != nil {
			m.logger.Warn("dropped path skipped", "path", p, "error", err)
			continue
		}
		files = append(files, f)
	}

	m.zone.DragEnter(&dropzone.DragEvent{})
	if len(files) == 0 {
		m.zone.Drop(&dropzone.DragEvent{})
		m.status = "nothing to drop"
		return
	}
	_ = m.zone.Drop(&dropzone.DragEvent{Files: files})
}

func (m *Model) showPager() tea.Cmd {
	files := m.zone.Selection().Files()
	if len(files) == 0 {
		m.status = "No files selected"
		return nil
	}

	content := renderSelection(m.zone.Options().Name, files)
	return func() tea.Msg {
		return pagerMsg{err: m.pager.ShowInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sel := m.zone.Selection()
	opts := m.zone.Options()
	flags := m.zone.Flags()

	rows := make([]views.FileRow, 0, sel.Count())
	for _, f := range sel.Files() {
		row := views.FileRow{Name: f.Name(), Type: f.Type()}
		if lf, ok := f.(*domain.LocalFile); ok {
			row.Size = lf.Size()
			row.Path = lf.Path()
		}
		rows = append(rows, row)
	}

	state := views.ViewState{
		Width:      m.width,
		Height:     m.height,
		Name:       opts.Name,
		Accept:     opts.Accept,
		Multiple:   opts.Multiple,
		Required:   opts.Required,
		DragActive: flags.DragActive,
		Errored:    flags.Errored,
		HasFiles:   flags.HasFiles,
		Files:      rows,
		Status:     m.status,
		PickerOpen: m.picker.IsOpen(),
		HelpView:   m.help.View(m.keys),
	}
	if err := sel.LastError(); err != nil {
		state.ErrorText = err.Error()
	}
	if last := sel.LastFile(); last != nil {
		state.LastFile = last.Name()
	}
	if state.PickerOpen {
		state.PickerView = m.picker.view()
		state.PickerDir = m.picker.dir()
	}

	return m.renderer.Render(state)
}
