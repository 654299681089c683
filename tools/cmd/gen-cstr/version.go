// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import "runtime/debug"

const unknownVersion = "version unknown"

// Version is set with -ldflags "-X main.Version=...".
var Version = unknownVersion

func IsVersionKnown() bool {
	return Version != unknownVersion
}

func version() string {
	if IsVersionKnown() {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return unknownVersion
}
