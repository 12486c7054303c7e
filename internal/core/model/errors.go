package model

import "errors"

// ErrMissingEntity indicates a card configuration without an entity reference.
var ErrMissingEntity = errors.New("entity is required (e.g. sensor.time)")

// ErrUnsupportedGrid indicates a cols/rows pair outside the legacy grid table.
var ErrUnsupportedGrid = errors.New("unsupported grid size")

// ErrInvalidMode indicates an unknown sizing mode or corner source.
var ErrInvalidMode = errors.New("invalid mode")
