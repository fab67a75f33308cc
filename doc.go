// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzav implements an in-memory LZ77-family lossless compressor and
decompressor. Two compressors share one wire format and one decoder: a
single-pass default compressor tuned for throughput, and a lazy-matching
high-ratio compressor tuned for smaller output at the cost of more CPU.

# Compress

	out, err := lzav.Compress(data, nil)                              // default compressor
	out, err := lzav.Compress(data, &lzav.CompressOptions{Mode: lzav.ModeHi}) // high-ratio

Destination sizing uses CompressBound / CompressBoundHi:

	dst := make([]byte, lzav.CompressBound(len(data)))

# Decompress

OutLen must equal the original uncompressed length:

	out, err := lzav.Decompress(compressed, lzav.DefaultDecompressOptions(origLen))

DecompressPartial is lenient: on truncated or malformed input it returns as
many correctly-decoded bytes as it could recover instead of an error.

	out, n, err := lzav.DecompressPartial(compressed, origLen)
*/
package lzav
