package render

import "errors"

var (
	// ErrFigureKind indicates an operation that does not apply to the figure's kind.
	ErrFigureKind = errors.New("render: operation not supported for figure kind")

	// ErrUnknownColormap indicates a colour map name with no palette behind it.
	ErrUnknownColormap = errors.New("render: unknown colormap")

	// ErrMissingCoords indicates a field without the coordinates a renderer needs.
	ErrMissingCoords = errors.New("render: field lacks required coordinates")
)
