package sortable

import (
	"errors"

	"github.com/grindlemire/go-sortable/internal/layout"
)

var (
	// ErrInvalidOffset reports a malformed offset or percentage string.
	ErrInvalidOffset = layout.ErrInvalidOffset

	// ErrInvalidConfig reports a configuration value out of range.
	ErrInvalidConfig = errors.New("sortable: invalid config")

	// ErrDuplicateKey reports an item key given more than once.
	ErrDuplicateKey = errors.New("sortable: duplicate item key")
)
