// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstr

import (
	"bytes"
	"unicode/utf8"
	"unsafe"
)

// View is a borrowed, NUL-terminated byte sequence. It never owns its storage.
// The zero value corresponds to a null pointer.
type View struct {
	b []byte
}

// FromBytesWithNul returns a view of b. b must end with a NUL byte and must
// not contain any other NUL byte.
func FromBytesWithNul(b []byte) (View, error) {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return View{}, notTerminated(string(b))
	}
	if i := bytes.IndexByte(b, 0); i != len(b)-1 {
		return View{}, interiorNul(i)
	}
	return View{b}, nil
}

// FromBytesUntilNul returns a view of b up to and including the first NUL
// byte. Anything after the first NUL is ignored.
func FromBytesUntilNul(b []byte) (View, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return View{}, notTerminated(string(b))
	}
	return View{b[:i+1]}, nil
}

// FromBytesWithNulUnchecked returns a view of b without checking anything. The
// caller must guarantee that b is non-empty and ends with a NUL byte.
// Use [FromBytesWithNul] for bytes that come from anywhere else.
func FromBytesWithNulUnchecked(b []byte) View {
	return View{b}
}

// FromPtr returns a view of the C string at p, scanning for the terminator to
// discover its length. FromPtr returns the zero view if p is nil. The memory at
// p must remain valid for as long as the view is used.
func FromPtr(p *byte) View {
	if p == nil {
		return View{}
	}

	var n int
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return View{unsafe.Slice(p, n+1)}
}

// IsNil returns true if v is the zero view.
func (v View) IsNil() bool { return v.b == nil }

// Len returns the length of the string, not counting the NUL terminator.
func (v View) Len() int {
	if len(v.b) == 0 {
		return 0
	}
	return len(v.b) - 1
}

// Bytes returns the bytes of the string, without the NUL terminator.
func (v View) Bytes() []byte {
	if len(v.b) == 0 {
		return nil
	}
	return v.b[:len(v.b)-1]
}

// BytesWithNul returns the bytes of the string, including the NUL terminator.
func (v View) BytesWithNul() []byte {
	return v.b
}

// String returns the text of the string without copying it. The result shares
// memory with the view, so the view's storage must not be modified while the
// string is in use.
func (v View) String() string {
	b := v.Bytes()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// ToString returns a copy of the text of the string. ToString returns an error
// if the text is not valid UTF-8.
func (v View) ToString() (string, error) {
	b := v.Bytes()
	if !utf8.Valid(b) {
		for i := 0; i < len(b); {
			r, n := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError && n <= 1 {
				return "", invalidUTF8(i)
			}
			i += n
		}
	}
	return string(b), nil
}

// Ptr returns a pointer to the first byte of the string, or nil for the zero
// view.
func (v View) Ptr() *byte {
	if len(v.b) == 0 {
		return nil
	}
	return &v.b[0]
}

// Equal returns true if v and u contain the same bytes.
func (v View) Equal(u View) bool {
	return bytes.Equal(v.b, u.b)
}

// Compare compares v and u bytewise.
func (v View) Compare(u View) int {
	return bytes.Compare(v.b, u.b)
}
