package dossier

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that stop a build.
var (
	ErrInvalidGeometry = errors.New("dossier: invalid geometry")
	ErrInvalidVariant  = errors.New("dossier: invalid variant")
	ErrNoMeasurer      = errors.New("dossier: no text measurer")
)

// BuildError represents an error that stopped the build of a section.
// It wraps the underlying error and names the section for context.
type BuildError struct {
	Section string // section name, e.g. "cover", "gallery"
	Err     error  // underlying error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dossier.%s: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("dossier.%s: unknown error", e.Section)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// newBuildError creates a new BuildError wrapping err with section context.
func newBuildError(section string, err error) *BuildError {
	return &BuildError{Section: section, Err: err}
}
