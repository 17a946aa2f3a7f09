package qr

import "errors"

// Configuration errors, matchable with errors.Is. I/O and encoding
// failures are returned as wrapped os/encoder errors instead, so callers
// can tell a bad style apart from a bad disk.
var (
	ErrInvalidColor      = errors.New("invalid color")
	ErrUnknownOverlay    = errors.New("unknown overlay kind")
	ErrInvalidStyle      = errors.New("invalid style")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
