// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrDecode wraps any failure to turn loaded bytes into a recording.
	ErrDecode = errors.New("engine: decode failed")

	// ErrExport wraps any failure of an offline export.
	ErrExport = errors.New("engine: export failed")

	// ErrNoBuffer means no recording is loaded.
	ErrNoBuffer = errors.New("engine: no audio loaded")

	// ErrDisposed is returned by loads after Dispose.
	ErrDisposed = errors.New("engine: disposed")

	// ErrInvalidSettings reports an effect parameter outside its range.
	ErrInvalidSettings = errors.New("engine: invalid effect settings")

	// ErrInvalidNode is returned when connecting unknown nodes or wiring a
	// node to one that runs before it.
	ErrInvalidNode = errors.New("engine: invalid node")

	// ErrGraphTorn is returned when wiring a graph after Teardown.
	ErrGraphTorn = errors.New("engine: graph torn down")
)
