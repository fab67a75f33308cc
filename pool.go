// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

import "sync"

// defaultHashTablePool recycles the default compressor's hash-table buffer
// across calls, avoiding an allocation on every Compress call.
var defaultHashTablePool = sync.Pool{
	New: func() any {
		buf := make([]byte, hashTableMaxSize)
		return &buf
	},
}

func acquireDefaultHashTable() *[]byte {
	return defaultHashTablePool.Get().(*[]byte)
}

func releaseDefaultHashTable(buf *[]byte) {
	if buf == nil {
		return
	}
	defaultHashTablePool.Put(buf)
}

// hiHashTablePool recycles the high-ratio compressor's hash-table buffer.
var hiHashTablePool = sync.Pool{
	New: func() any {
		buf := make([]byte, hiHashTableMaxSize)
		return &buf
	},
}

func acquireHiHashTable() *[]byte {
	return hiHashTablePool.Get().(*[]byte)
}

func releaseHiHashTable(buf *[]byte) {
	if buf == nil {
		return
	}
	hiHashTablePool.Put(buf)
}
