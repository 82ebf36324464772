package export

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrEncoding means the drawing could not be turned into image bytes.
	ErrEncoding = errors.New("encoding failed")
	// ErrWrite means the destination could not take the bytes.
	ErrWrite = errors.New("write failed")
	// ErrPermissionDenied means the platform refused access to storage.
	ErrPermissionDenied = errors.New("permission denied")
)

// WriteError classifies a failure to open, write or close a destination.
func WriteError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", ErrWrite, err)
}

// Notification is the short text shown to the user for an export outcome.
func Notification(err error) string {
	switch {
	case err == nil:
		return "Saved painting"
	case errors.Is(err, ErrEncoding):
		return "Failed to save the image"
	case errors.Is(err, ErrPermissionDenied):
		return "Permission Denied"
	default:
		return "Something went wrong"
	}
}
