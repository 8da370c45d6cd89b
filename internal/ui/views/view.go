package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Layout of the zone box on screen
const (
	ZoneTop         = 2 // title line plus its margin
	ZoneInnerHeight = 5
	zoneHeight      = ZoneInnerHeight + 2 // borders
	defaultWidth    = 80
)

// FileRow is one selected file as shown below the zone
type FileRow struct {
	Name string
	Type string
	Size int64
	Path string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Name       string
	Accept     []string
	Multiple   bool
	Required   bool
	DragActive bool
	Errored    bool
	HasFiles   bool
	Files      []FileRow
	ErrorText  string
	Status     string
	PickerOpen bool
	PickerView string
	HelpView   string
	PickerDir  string
	LastFile   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// ZoneContains reports whether the screen cell x, y lies inside the zone box
func ZoneContains(width, x, y int) bool {
	if width <= 0 {
		width = defaultWidth
	}
	return x >= 0 && x < width && y >= ZoneTop && y < ZoneTop+zoneHeight
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}

	content := &strings.Builder{}

	title := "dropzone"
	if state.Name != "" {
		title = fmt.Sprintf("dropzone · %s", state.Name)
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")

	content.WriteString(r.renderZone(state, width))
	content.WriteString("\n")

	if state.ErrorText != "" {
		content.WriteString(r.styles.StatusError.Render("✗ " + state.ErrorText))
		content.WriteString("\n")
	} else if state.Status != "" {
		content.WriteString(r.styles.StatusOK.Render(state.Status))
		content.WriteString("\n")
	}

	if state.PickerOpen {
		content.WriteString(r.styles.Dim.Render(state.PickerDir))
		content.WriteString("\n")
		content.WriteString(state.PickerView)
	} else {
		content.WriteString(r.renderFiles(state))
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}

func (r *Renderer) renderZone(state ViewState, width int) string {
	var lines []string
	switch {
	case state.DragActive:
		lines = append(lines, "Release to drop")
	case state.HasFiles && state.Multiple:
		lines = append(lines, fmt.Sprintf("%d files selected", len(state.Files)))
	case state.HasFiles:
		lines = append(lines, state.LastFile)
	default:
		lines = append(lines, "Drop files here or press enter to browse")
	}

	if len(state.Accept) > 0 {
		lines = append(lines, r.styles.Dim.Render("accepts "+strings.Join(state.Accept, ", ")))
	}
	if state.Multiple {
		lines = append(lines, r.styles.Dim.Render("multiple files allowed"))
	}
	if state.Required && !state.HasFiles {
		lines = append(lines, r.styles.Required.Render("required"))
	}

	return r.styles.ZoneStyle(state.DragActive, state.Errored, state.HasFiles).
		Width(width - 2).
		Height(ZoneInnerHeight).
		Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderFiles(state ViewState) string {
	if len(state.Files) == 0 {
		return r.styles.Dim.Render("No files selected.")
	}

	nameWidth := 0
	for _, f := range state.Files {
		if w := lipgloss.Width(f.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for i, f := range state.Files {
		if i > 0 {
			b.WriteString("\n")
		}
		name := f.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(f.Name))
		b.WriteString(r.styles.FileName.Render(name))
		b.WriteString("  ")
		b.WriteString(r.styles.FileMeta.Render(describe(f)))
	}
	return b.String()
}

func describe(f FileRow) string {
	mimeType := f.Type
	if mimeType == "" {
		mimeType = "unknown type"
	}
	if f.Path == "" {
		return mimeType
	}
	return fmt.Sprintf("%s  %s", mimeType, FormatSize(f.Size))
}

// FormatSize renders a byte count for humans
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
