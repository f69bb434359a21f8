package ui

import (
	"time"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
	"github.com/renato0307/docdesk/internal/services"
)

// Action messages. Each key definition carries a prototype of one of these;
// Model handles them in updateCanvas.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// RefreshMsg requests reloading the workspace from storage
type RefreshMsg struct{}

// OpenDocumentMsg requests showing the open document dialog
type OpenDocumentMsg struct{}

// CloseDocumentMsg requests closing the active document
type CloseDocumentMsg struct{}

// CloseAllDocumentsMsg requests closing every document, after confirmation
type CloseAllDocumentsMsg struct{}

// CycleDocumentMsg activates the next (Delta 1) or previous (Delta -1) document
type CycleDocumentMsg struct {
	Delta int
}

// ReloadDocumentMsg requests reloading the active document
type ReloadDocumentMsg struct{}

// ViewDocumentMsg opens the active document in the external viewer
type ViewDocumentMsg struct{}

// MoveDocumentMsg moves the active document by one step per unit
type MoveDocumentMsg struct {
	DX, DY int
}

// ResizeDocumentMsg resizes the active document by one step per unit
type ResizeDocumentMsg struct {
	DH, DW int
}

// SwitchLayoutMsg requests an animated switch to Mode
type SwitchLayoutMsg struct {
	Mode domain.LayoutMode
}

// ArrangeMsg requests a non-overlapping arrangement
type ArrangeMsg struct{}

// SnapMsg requests snapping every document to the grid
type SnapMsg struct{}

// ApplySuggestionMsg switches to the suggested layout mode
type ApplySuggestionMsg struct{}

// Internal messages produced by commands

type layoutLoadedMsg struct {
	animated []layout.AnimatedLayoutResult
	notice   string
	report   services.LayoutReport
	rewatch  bool
}

type errMsg struct {
	err error
}

type watchStartedMsg struct {
	updates <-chan services.WatchUpdate
}

type watchUpdateMsg struct {
	update  services.WatchUpdate
	updates <-chan services.WatchUpdate
}

type animationTickMsg struct {
	at time.Time
}

type clearErrorMsg struct {
	id int
}
