// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

// LZAV format constants: window/back-reference bounds and hash-table sizing.

const (
	// winLen bounds the back-reference window (23-bit offset field); the
	// largest distance emitted is winLen-1.
	winLen = 1 << 23

	// refMin is the minimum back-reference length the default compressor emits,
	// and the absolute floor for any reference's distance validity.
	refMin = 6

	// refLen is the maximum back-reference length either compressor will emit.
	refLen = 530

	// litFin is the literal length carried by the stream's mandatory terminating block.
	litFin = 6

	// fmtCur is the wire format tag this package writes into the stream's prefix byte.
	fmtCur = 2

	// fmtMin is the lowest wire format tag this decoder accepts.
	fmtMin = 2

	// hiMref is the minimum back-reference length the high-ratio compressor emits.
	hiMref = 5

	// hashTableMinSize is the smallest hash table allocated for the default compressor, in bytes.
	hashTableMinSize = 1 << 14 // 16KiB

	// hashTableMaxSize is the largest hash table allocated for the default compressor, in bytes.
	hashTableMaxSize = 1 << 20 // 1MiB

	// hiHashTableMaxSize is the largest hash table allocated for the high-ratio compressor, in bytes.
	hiHashTableMaxSize = 1 << 23 // 8MiB

	// slotRefreshDistance gates when a matched hash slot is refreshed with a new position.
	slotRefreshDistance = 273
)

// ocsh maps a reference block's type (1..3) to the carry shift threaded
// into the next reference's distance decoding; only type 3 donates bits.
var ocsh = [4]uint{0, 0, 0, 3}
