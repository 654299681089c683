// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstr

import (
	"fmt"
	"strings"
	"unsafe"
)

// Const is a static C-compatible string. The underlying string includes the
// NUL terminator.
//
// Prefer gen-cstr over converting a string to Const by hand. The generator
// appends the NUL byte for you.
type Const string

// String returns the wrapped string, without the NUL terminator.
//
// String panics if c is empty.
func (c Const) String() string {
	if len(c) == 0 {
		panic(ErrEmpty)
	}
	return string(c[:len(c)-1])
}

// Bytes returns the wrapped string as a byte slice, without the NUL
// terminator. The slice aliases the constant's storage and must not be
// modified.
func (c Const) Bytes() []byte {
	return bytesOf(c.String())
}

// BytesWithNul returns the wrapped string as a byte slice, including the NUL
// terminator. The slice aliases the constant's storage and must not be
// modified.
func (c Const) BytesWithNul() []byte {
	return bytesOf(string(c))
}

// Len returns the length of the string, not counting the NUL terminator. Len
// panics with [ErrEmpty] if c is empty.
func (c Const) Len() int {
	return len(c.String())
}

// Valid returns true if c ends with a NUL byte.
func (c Const) Valid() bool {
	return len(c) > 0 && c[len(c)-1] == 0
}

// Ptr returns a pointer to the first byte of the string, suitable for any
// function that expects a C string. If c is a declared constant the pointer is
// valid for the lifetime of the process. The pointed-to memory is read-only.
//
// Ptr panics if c is not NUL-terminated.
func (c Const) Ptr() *byte {
	c.mustBeTerminated()
	return unsafe.StringData(string(c))
}

// UnsafePointer returns [Const.Ptr] as an unsafe.Pointer, for conversion to
// `*C.char`.
func (c Const) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(c.Ptr())
}

// View returns c as a [View]. Unlike [FromPtr], View does not scan for the
// terminator since the length is already known.
//
// View panics if c is not NUL-terminated.
func (c Const) View() View {
	c.mustBeTerminated()

	// Interior NULs are a logic error, not a memory safety issue, so checking
	// the last byte is enough.
	return FromBytesWithNulUnchecked(c.BytesWithNul())
}

// Compare compares c and d bytewise.
func (c Const) Compare(d Const) int {
	return strings.Compare(string(c), string(d))
}

// GoString implements fmt.GoStringer.
func (c Const) GoString() string {
	return fmt.Sprintf("cstr.Const(%q)", string(c))
}

func (c Const) mustBeTerminated() {
	if !c.Valid() {
		panic(notTerminated(string(c)))
	}
}

func bytesOf(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
