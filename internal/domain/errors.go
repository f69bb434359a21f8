package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrDocumentUnavailable = errors.New("document file unavailable")
	ErrInvalidGeometry     = errors.New("invalid geometry")
	ErrInvalidName         = errors.New("workspace name must not be empty")
	ErrInvalidSnapshot     = errors.New("invalid workspace snapshot")
	ErrInvalidState        = errors.New("invalid caddy state")
	ErrUnknownLayoutMode   = errors.New("unknown layout mode")
	ErrWorkspaceExists     = errors.New("workspace already exists")
	ErrWorkspaceNotFound   = errors.New("workspace not found")
)

// GeometryError reports an invalid Position or Dimensions construction
type GeometryError struct {
	Kind    string
	Message string
}

func newGeometryError(kind, format string, args ...any) *GeometryError {
	return &GeometryError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Message)
}

// Is matches ErrInvalidGeometry
func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// CaddyStateError reports an operation that is illegal in the caddy's current state
type CaddyStateError struct {
	CaddyID   string
	Operation string
	State     CaddyState
}

func (e *CaddyStateError) Error() string {
	return fmt.Sprintf("cannot %s document %s while %s", e.Operation, e.CaddyID, e.State)
}

// Is matches ErrInvalidState
func (e *CaddyStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// DocumentNotFoundError reports an unknown caddy id passed to a workspace operation
type DocumentNotFoundError struct {
	DocumentID  string
	WorkspaceID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %s not found in workspace %s", e.DocumentID, e.WorkspaceID)
}

// Is matches ErrDocumentNotFound
func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}
