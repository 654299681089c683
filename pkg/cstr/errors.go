// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstr

import (
	"errors"
	"fmt"
)

// ErrEmpty means that a constant has no backing bytes at all, not even the
// terminator.
var ErrEmpty = errors.New("empty C string")

// ErrNotTerminated means that a byte sequence does not end with a NUL byte.
var ErrNotTerminated = errors.New("not NUL-terminated")

// ErrInteriorNul means that a byte sequence contains a NUL byte before its
// terminator.
var ErrInteriorNul = errors.New("interior NUL byte")

// ErrInvalidUTF8 means that the text of a C string is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

func notTerminated(s string) error {
	return fmt.Errorf("%q is %w", s, ErrNotTerminated)
}

func interiorNul(pos int) error {
	return fmt.Errorf("%w at position %d", ErrInteriorNul, pos)
}

func invalidUTF8(pos int) error {
	return fmt.Errorf("%w at position %d", ErrInvalidUTF8, pos)
}
