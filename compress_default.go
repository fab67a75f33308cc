// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

// CompressDefault compresses src into dst using the single-pass default
// compressor. dst must be at least CompressBound(len(src)) bytes. extBuf,
// if non-nil, is used as hash-table scratch space instead of a pooled
// allocation; its prior contents are irrelevant and it is overwritten.
// Returns the number of bytes written to dst.
func CompressDefault(src, dst []byte, extBuf []byte) (int, error) {
	srcl := len(src)
	if srcl == 0 {
		return 0, nil
	}
	if srcl < 0 || len(dst) < CompressBound(srcl) {
		return 0, ErrParams
	}
	if aliases(src, dst) {
		return 0, ErrSrcEqualsDst
	}

	if srcl < 16 {
		return compressTrivial(src, dst, refMin), nil
	}

	var pooled *[]byte
	var ht []byte
	if extBuf != nil {
		_, ht = htSizeDefault(srcl, extBuf)
	} else {
		pooled = acquireDefaultHashTable()
		defer releaseDefaultHashTable(pooled)
		_, ht = htSizeDefault(srcl, *pooled)
	}
	htsize := len(ht)
	hmask := uint32(htsize-1) &^ 15

	op := 0
	dst[op] = byte(fmtCur<<4 | refMin)
	op++

	ipe := srcl - litFin
	ipet := ipe - 9
	ipa := 0
	ip := 0

	cs := &carryState{pos: op, shf: 0}

	mavg := int64(100) << 21
	var rndb uint32

	ip += 16

	var initv0 uint32
	initv1 := uint32(16)
	if ip < ipet {
		initv0 = le32(src[ip : ip+4])
	}

	for i := 0; i+16 <= htsize; i += 16 {
		putLE32(ht[i:i+4], initv0)
		putLE32(ht[i+4:i+8], initv1)
		putLE32(ht[i+8:i+12], initv0)
		putLE32(ht[i+12:i+16], initv1)
	}

	for ip < ipet {
		iw1 := le32(src[ip : ip+4])
		iw2 := le16(src[ip+4 : ip+6])
		hv := hashWords(iw1, iw2, hmask)
		hp := ht[hv : hv+16]
		ipo := uint32(ip)

		tuple0Word := le32(hp[0:4])
		tuple0Off := le32(hp[4:8])
		tuple1Word := le32(hp[8:12])
		tuple1Off := le32(hp[12:16])

		matchedTuple := -1
		var wp int

		if iw1 == tuple0Word && le16(src[tuple0Off+4:tuple0Off+6]) == iw2 {
			matchedTuple = 0
			wp = int(tuple0Off)
		} else if iw1 == tuple1Word && le16(src[tuple1Off+4:tuple1Off+6]) == iw2 {
			matchedTuple = 1
			wp = int(tuple1Off)
		}

		if matchedTuple == -1 {
			putLE32(hp[8:12], iw1)
			putLE32(hp[12:16], ipo)

			mavg -= mavg >> 11

			if mavg < (200<<14) && ip != ipa {
				ip += 1 + int(rndb)
				rndb = ipo & 1

				if mavg < (130 << 14) {
					ip++

					if mavg < (100 << 14) {
						ip += 100 - int(mavg>>14)
					}
				}
			}

			ip++
			continue
		}

		d := ip - wp

		if d < refMin {
			ip++
			continue
		}
		if d > winLen-1 {
			ip++
			if matchedTuple == 0 {
				putLE32(hp[4:8], ipo)
			} else {
				putLE32(hp[12:16], ipo)
			}
			continue
		}

		ml := refLen
		if d < ml {
			ml = d
		}
		if ip+ml > ipe {
			ml = ipe - ip
		}

		if d > slotRefreshDistance {
			if matchedTuple == 0 {
				putLE32(hp[4:8], ipo)
			} else {
				putLE32(hp[8:12], tuple0Word)
				putLE32(hp[12:16], tuple0Off)
				putLE32(hp[0:4], iw1)
				putLE32(hp[4:8], ipo)
			}
		}

		rc := refMin + matchLen(src[ip+refMin:ip+ml], src[wp+refMin:wp+ml], ml-refMin)
		lc := ip - ipa

		if lc != 0 {
			budget := ml - rc
			cap16 := lc
			if cap16 > 16 {
				cap16 = 16
			}
			if budget > cap16 {
				budget = cap16
			}

			bmc := matchLenR(src, ip, wp, budget)
			if bmc != 0 {
				rc += bmc
				ip -= bmc
				lc -= bmc
			}
		}

		op = writeBlockPair(dst, op, lc, rc, d, src[ipa:ipa+lc], cs, refMin)
		ip += rc
		ipa = ip
		mavg += ((int64(rc) << 21) - mavg) >> 10
	}

	finalLen := srcl - ipa
	op = writeFinalBlock(dst, op, finalLen, src[ipa:srcl])

	return op, nil
}
