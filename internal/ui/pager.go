package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"dropzone/internal/domain"
	"dropzone/internal/ui/views"
)

// PagerOps shows the selection in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// renderSelection lists every selected file with its metadata
func renderSelection(name string, files []domain.File) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d selected", name, len(files))))
	b.WriteString("\n")

	for i, f := range files {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%3d  %s", i+1, f.Name())))
		b.WriteString("\n")

		mimeType := f.Type()
		if mimeType == "" {
			mimeType = "unknown"
		}
		b.WriteString(descStyle.Render("     type: " + mimeType))
		b.WriteString("\n")

		if lf, ok := f.(*domain.LocalFile); ok && lf.Path() != "" {
			b.WriteString(descStyle.Render("     size: " + views.FormatSize(lf.Size())))
			b.WriteString("\n")
			b.WriteString(descStyle.Render("     path: " + lf.Path()))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
