package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrNoFace is returned when no font face is available for measuring.
	ErrNoFace = errors.New("text: no font face")
)

// FaceError is returned when the face function has no face for a style.
type FaceError struct {
	Style Style
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("text: no font face for style %v", e.Style)
}

// Unwrap returns [ErrNoFace].
func (e *FaceError) Unwrap() error {
	return ErrNoFace
}
