package lzav

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lzav test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "small-16", data: bytes.Repeat([]byte{0x5A}, 16)},
		{name: "small-15", data: bytes.Repeat([]byte{0x5A}, 15)},
	}
}

func TestCompressDecompress_RoundTripAcrossModes(t *testing.T) {
	modes := []Mode{ModeDefault, ModeHi}

	for _, in := range testInputSet() {
		for _, mode := range modes {
			name := fmt.Sprintf("%s/mode-%d", in.name, mode)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(in.data, &CompressOptions{Mode: mode})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}

				out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}
			})
		}
	}
}

func TestCompress_DefaultMode(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}

	cmpExplicit, err := Compress(data, &CompressOptions{Mode: ModeDefault})
	if err != nil {
		t.Fatalf("Compress mode=default failed: %v", err)
	}

	if !bytes.Equal(cmpDefault, cmpExplicit) {
		t.Fatal("nil options should behave like explicit ModeDefault")
	}
}

func TestCompressHi_SmallerOrEqualOutput(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 500)

	cmpDefault, err := Compress(data, &CompressOptions{Mode: ModeDefault})
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}

	cmpHi, err := Compress(data, &CompressOptions{Mode: ModeHi})
	if err != nil {
		t.Fatalf("Compress hi failed: %v", err)
	}

	if len(cmpHi) > len(cmpDefault) {
		t.Fatalf("hi-ratio output (%d) larger than default (%d) for compressible input", len(cmpHi), len(cmpDefault))
	}
}

func TestCompressBound_Monotonic(t *testing.T) {
	prevB, prevH := CompressBound(0), CompressBoundHi(0)
	for n := 1; n <= 1<<16; n *= 2 {
		b := CompressBound(n)
		h := CompressBoundHi(n)
		if b < prevB || h < prevH {
			t.Fatalf("bound not monotonic at n=%d", n)
		}
		if b < n || h < n {
			t.Fatalf("bound smaller than input at n=%d: bound=%d boundHi=%d", n, b, h)
		}
		prevB, prevH = b, h
	}
}

func TestCompress_ExternalBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("external buffer reuse test data "), 400)

	dst := make([]byte, CompressBound(len(data)))
	ext := make([]byte, hashTableMinSize)

	n, err := CompressDefault(data, dst, ext)
	if err != nil {
		t.Fatalf("CompressDefault with external buffer failed: %v", err)
	}

	out, err := Decompress(dst[:n], DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch using external hash-table buffer")
	}
}

func TestCompress_DestinationTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 1000)
	dst := make([]byte, 4)

	if _, err := CompressDefault(data, dst, nil); err == nil {
		t.Fatal("expected error for undersized destination")
	}
}

func TestCompress_SrcEqualsDst(t *testing.T) {
	buf := make([]byte, CompressBound(64))
	for i := range buf[:64] {
		buf[i] = byte(i)
	}

	if _, err := CompressDefault(buf[:64], buf, nil); err != ErrSrcEqualsDst {
		t.Fatalf("expected ErrSrcEqualsDst, got %v", err)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(1))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, mode uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		m := ModeDefault
		if mode%2 == 1 {
			m = ModeHi
		}

		cmp, err := Compress(data, &CompressOptions{Mode: m})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
