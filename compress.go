// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

// Compress compresses src using the mode selected by opts (default if opts
// is nil). The returned slice is newly allocated and sized to the actual
// compressed length.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if opts.Mode == ModeHi {
		dst := make([]byte, CompressBoundHi(len(src)))
		n, err := CompressHi(src, dst, opts.ExternalBuffer)
		if err != nil {
			return nil, err
		}
		return dst[:n], nil
	}

	dst := make([]byte, CompressBound(len(src)))
	n, err := CompressDefault(src, dst, opts.ExternalBuffer)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// compressTrivial implements the srcl < 16 raw path shared by both
// compressors: a single terminal literal block carrying the whole input,
// zero-padded up to litFin when srcLen is shorter than that. mref is the
// calling compressor's minimum reference length, written into the prefix
// byte's low nibble even though a trivial stream carries no references.
func compressTrivial(src, dst []byte, mref int) int {
	op := 0
	dst[op] = byte(fmtCur<<4 | mref)
	op++
	dst[op] = byte(len(src))
	op++
	copy(dst[op:op+len(src)], src)

	if len(src) > litFin-1 {
		return op + len(src)
	}

	for i := len(src); i < litFin; i++ {
		dst[op+i] = 0
	}
	return op + litFin
}
