package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// OpenDocumentFormResult contains the values entered in the open dialog
type OpenDocumentFormResult struct {
	Cancelled bool
	Path      string
	Title     string
}

// OpenDocumentForm asks for the file to open and an optional title
type OpenDocumentForm struct {
	Completed bool
	form      *huh.Form
	result    OpenDocumentFormResult
}

// NewOpenDocumentForm creates a new open document form
func NewOpenDocumentForm(extensions []string) *OpenDocumentForm {
	f := &OpenDocumentForm{}

	pathDescription := "Absolute path or path relative to the working directory"
	if len(extensions) > 0 {
		pathDescription = fmt.Sprintf("Supported: %s", strings.Join(extensions, ", "))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Description(pathDescription).
				Value(&f.result.Path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file path required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Title").
				Description("Leave empty to use the file name").
				Value(&f.result.Title),
		),
	)
	return f
}

func (f *OpenDocumentForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *OpenDocumentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.result.Path = strings.TrimSpace(f.result.Path)
		f.result.Title = strings.TrimSpace(f.result.Title)
		f.Completed = true
		return f, nil
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
		return f, nil
	}
	return f, cmd
}

func (f *OpenDocumentForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *OpenDocumentForm) Result() OpenDocumentFormResult {
	return f.result
}
