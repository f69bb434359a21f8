package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ConfirmForm is a yes/no question
type ConfirmForm struct {
	Completed bool
	confirmed bool
	form      *huh.Form
}

// NewConfirmForm creates a confirmation defaulting to no
func NewConfirmForm(title, description string) *ConfirmForm {
	f := &ConfirmForm{}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&f.confirmed),
		),
	)
	return f
}

func (f *ConfirmForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ConfirmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		f.confirmed = false
		f.Completed = true
		return f, nil
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State != huh.StateNormal {
		if f.form.State == huh.StateAborted {
			f.confirmed = false
		}
		f.Completed = true
		return f, nil
	}
	return f, cmd
}

func (f *ConfirmForm) View() string {
	return f.form.View()
}

// Confirmed reports whether the user answered yes
func (f *ConfirmForm) Confirmed() bool {
	return f.confirmed
}
