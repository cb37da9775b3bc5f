// SPDX-License-Identifier: MIT

package graphfile

import "errors"

var (
	// ErrBadFormat indicates that the input does not follow the graph file layout.
	ErrBadFormat = errors.New("graphfile: bad format")

	// ErrUnsupportedFormat indicates an unknown file extension.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported format")
)
