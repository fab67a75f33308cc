// SPDX-License-Identifier: GPL-2.0-only

package lzav

import "errors"

// Sentinel errors returned by the compressors and decompressors.
var (
	// ErrParams is returned when the caller's arguments are individually invalid
	// (nil decompress options, negative lengths, a compress destination smaller
	// than CompressBound/CompressBoundHi of the source length).
	ErrParams = errors.New("lzav: invalid parameters")
	// ErrSrcOOB is returned when the decoder would read past the end of src.
	ErrSrcOOB = errors.New("lzav: source buffer overrun")
	// ErrDstOOB is returned when the decoder would write past the end of dst.
	ErrDstOOB = errors.New("lzav: destination buffer overrun")
	// ErrRefOOB is returned when a back-reference points before the start of dst
	// or its distance is below the minimum reference distance.
	ErrRefOOB = errors.New("lzav: reference points out of bounds")
	// ErrUnknownFmt is returned when the stream's format tag is not supported.
	ErrUnknownFmt = errors.New("lzav: unsupported stream format")

	// ErrSrcEqualsDst is returned by the compressors when src and dst start at
	// the same address. Partial overlap is not detected.
	ErrSrcEqualsDst = errors.New("lzav: src and dst must not alias")
)
