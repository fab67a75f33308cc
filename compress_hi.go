// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CompressHi compresses src into dst using the lazy-matching, higher-ratio
// compressor. dst must be at least CompressBoundHi(len(src)) bytes. extBuf,
// if non-nil and at least as large as the hash table this input needs, is
// used as hash-table scratch space instead of a pooled allocation; a smaller
// extBuf is ignored. Returns the number of bytes written to dst.
func CompressHi(src, dst []byte, extBuf []byte) (int, error) {
	srcl := len(src)
	if srcl == 0 {
		return 0, nil
	}
	if srcl < 0 || len(dst) < CompressBoundHi(srcl) {
		return 0, ErrParams
	}
	if aliases(src, dst) {
		return 0, ErrSrcEqualsDst
	}

	const mref = hiMref
	const mlen = refLen - refMin + mref

	if srcl < 16 {
		return compressTrivial(src, dst, mref), nil
	}

	var pooled *[]byte
	var ht []byte
	htsize := htSizeHi(srcl)
	if extBuf != nil && len(extBuf) >= htsize {
		ht = extBuf[:htsize]
	} else {
		pooled = acquireHiHashTable()
		defer releaseHiHashTable(pooled)
		ht = (*pooled)[:htsize]
	}

	hmask := uint32(htsize-1) &^ 63

	op := 0
	dst[op] = byte(fmtCur<<4 | mref)
	op++

	ipe := srcl - litFin
	ipet := ipe - 9
	ipa := 0
	ip := 0

	cs := &carryState{pos: op, shf: 0}

	initv0 := le32(src[0:4])

	for i := 0; i+8 <= htsize; i += 8 {
		putLE32(ht[i:i+4], initv0)
		putLE32(ht[i+4:i+8], 0)
	}

	prc := 0
	pd := 0
	pip := ip

	for ip < ipet {
		iw1 := le32(src[ip : ip+4])
		hm := uint64(0x243F6A88^iw1) * uint64(uint32(0x85A308D3)^uint32(src[ip+4]))
		hval := uint32(hm) ^ uint32(hm>>32)

		hp := ht[hval&hmask : hval&hmask+64]
		ipo := ip
		ti0 := int(le32(hp[60:64]))

		wp := ip
		rc := 0
		d := 0
		ti := ti0

		guarded := ip+mlen >= ipe

		for i1 := 0; i1 < 7; i1++ {
			off := ti * 4
			ww1 := le32(hp[off : off+4])
			wp0 := int(le32(hp[off+4 : off+8]))
			d = ip - wp0
			if ti == 12 {
				ti = 0
			} else {
				ti += 2
			}

			if iw1 != ww1 {
				continue
			}

			var rc0 int
			if !guarded {
				ml := mlen
				if d < ml {
					ml = d
				}
				rc0 = 4 + matchLen(src[ip+4:], src[wp0+4:], ml-4)
			} else {
				ml := mlen
				if d < ml {
					ml = d
				}
				if ip+ml > ipe {
					ml = ipe - ip
				}
				rc0 = 4 + matchLen(src[ip+4:], src[wp0+4:], ml-4)
			}

			if rc0 > rc+btoi(d > (1<<18)) {
				wp = wp0
				rc = rc0
			}
		}

		if rc == 0 || d > 273 {
			if ti0 == 0 {
				ti0 = 12
			} else {
				ti0 -= 2
			}
			off := ti0 * 4
			putLE32(hp[off:off+4], iw1)
			putLE32(hp[off+4:off+8], uint32(ipo))
			putLE32(hp[60:64], uint32(ti0))
		}

		d = ip - wp

		extra := btoi(d > (1 << 18))
		if rc < mref+extra || d < refMin || d > winLen-1 {
			ip++
			continue
		}

		ip0 := ip
		lc := ip - ipa

		if lc != 0 {
			ml := mlen
			if d < ml {
				ml = d
			}
			if ip+ml > ipe {
				ml = ipe - ip
			}
			ml -= rc

			wpo := wp
			if ml > lc {
				ml = lc
			}
			if ml > wpo {
				ml = wpo
			}

			bmc := matchLenR(src, ip, wp, ml)
			if bmc != 0 {
				rc += bmc
				ip -= bmc
				lc -= bmc
			}
		}

		if prc == 0 {
			prc = rc
			pd = d
			pip = ip
			ip = ip0 + 1
			continue
		}

		lb := btoi(lc != 0)
		sh0 := 10
		if cs.shf != 0 {
			sh0 = 13
		}
		sh := sh0 + lb*2
		ov := lc + lb + btoi(lc > 15) + 2 + btoi(d >= (1<<uint(sh))) + btoi(d >= (1<<uint(sh+8)))

		plc := pip - ipa
		plb := btoi(plc != 0)
		psh := sh0 + plb*2
		pov := plc + plb + btoi(plc > 15) + 2 + btoi(pd >= (1<<uint(psh))) + btoi(pd >= (1<<uint(psh+8)))

		if prc*ov > rc*pov {
			if pip+prc <= ip {
				op = writeBlockPair(dst, op, plc, prc, pd, src[ipa:ipa+plc], cs, mref)
				ipa = pip + prc
				prc = rc
				pd = d
				pip = ip
				ip++
				continue
			}

			rc = prc
			d = pd
			ip = pip
			lc = plc
		}

		op = writeBlockPair(dst, op, lc, rc, d, src[ipa:ipa+lc], cs, mref)
		ip += rc
		ipa = ip
		prc = 0
	}

	if prc != 0 {
		op = writeBlockPair(dst, op, pip-ipa, prc, pd, src[ipa:ipa+(pip-ipa)], cs, mref)
		ipa = pip + prc
	}

	finalLen := srcl - ipa
	op = writeFinalBlock(dst, op, finalLen, src[ipa:srcl])

	return op, nil
}
