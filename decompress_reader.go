// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

import "io"

// DecompressFromReader reads the full stream then calls Decompress. It adds
// no decoding logic of its own; maxInputSize, if > 0, bounds how much of r
// is read before giving up.
func DecompressFromReader(r io.Reader, opts *DecompressOptions, maxInputSize int) ([]byte, error) {
	if opts == nil {
		return nil, ErrParams
	}

	var src []byte
	var err error
	if maxInputSize > 0 {
		src, err = io.ReadAll(io.LimitReader(r, int64(maxInputSize)+1))
		if err == nil && len(src) > maxInputSize {
			return nil, ErrParams
		}
	} else {
		src, err = io.ReadAll(r)
	}
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}
