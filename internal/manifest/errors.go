package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the descriptor file does not exist
	ErrFileNotFound = errors.New("descriptor file not found")

	// ErrInvalidFormat indicates the descriptor file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("descriptor must be valid YAML or JSON")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")

	// ErrNoTargets indicates the descriptor has no target application
	ErrNoTargets = errors.New("descriptor must contain at least one target application")

	// ErrInvalidDescriptor indicates a descriptor field failed validation
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)
