// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

import "unsafe"

// aliases reports whether a and b's first bytes share the same address,
// the cheap proxy the reference implementation uses for "src == dst".
func aliases(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return unsafe.Pointer(&a[0]) == unsafe.Pointer(&b[0])
}
