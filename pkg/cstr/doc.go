// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package cstr provides static, NUL-terminated strings that can be handed to C
// (or any other foreign function interface) without allocating or copying.
//
// A [Const] is a string constant whose last byte is NUL. Constants are
// declared by gen-cstr from a list of name/literal pairs:
//
//	//go:generate go run gitlab.com/accumulatenetwork/constcstr/tools/cmd/gen-cstr --package main strings.cstr
//
// where strings.cstr contains
//
//	pub Hello = "Hello, world!";
//	pub Goodnight = "Goodnight, sun!";
//
// which expands to
//
//	const Hello cstr.Const = "Hello, world!\x00"
//	const Goodnight cstr.Const = "Goodnight, sun!\x00"
//
// The constants live in the program image, so [Const.Ptr] is valid for the
// lifetime of the process and may be passed to C as a `const char *`:
//
//	C.puts((*C.char)(Hello.UnsafePointer()))
//
// Converting an arbitrary string to Const bypasses the generator. The pointer
// and view accessors check that the last byte is NUL and panic if it is not.
package cstr
