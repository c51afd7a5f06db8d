package models

import "errors"

// Error kinds shared by the file operations and the interactive menu.
var (
	// ErrLoadFailure means a path does not exist or is not a decodable image
	ErrLoadFailure = errors.New("image could not be loaded")
	// ErrMissingExtension means an output path has no file suffix to infer a format from
	ErrMissingExtension = errors.New("output path must include a file name with a valid extension (e.g., .png, .jpg)")
	// ErrWriteFailure means an output image could not be encoded or written
	ErrWriteFailure = errors.New("image could not be written")
	// ErrInvalidChoice means the menu selection was not recognized
	ErrInvalidChoice = errors.New("invalid choice")
)
