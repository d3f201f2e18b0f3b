// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmapindex

// rankIndexEntrySize is the in-memory footprint of a rankIndexEntry.
const rankIndexEntrySize = 12

// rankIndexEntry summarizes one block of eight words. absOnes is the count
// of all ones before the block; the relative counts give the ones within
// the block up to each word boundary.
//
// Three consecutive words hold at most 192 ones, so the relative counts for
// words 1..3 fit in a byte apiece. The count for word 4 can reach 256 and
// gets 16 bits; it also serves as the first split point of the in-block
// decision tree, where the wider field saves an addition. The counts for
// words 5..7 are stored as their difference from the word-4 count (at most
// 64, 128 and 192, so a byte apiece), which puts the whole entry at 12
// bytes: 12/64 = 18.75% overhead.
//
// Setters for counts 5..7 subtract the stored word-4 count, so
// setRelativeOnesCount4 must be called first.
type rankIndexEntry struct {
	absOnes uint32
	rel4    uint16
	relLo   [3]uint8 // counts for words 1..3
	relHi   [3]uint8 // counts for words 5..7, less rel4
}

func (e *rankIndexEntry) absoluteOnesCount() uint32 { return e.absOnes }

func (e *rankIndexEntry) relativeOnesCount1() uint32 { return uint32(e.relLo[0]) }
func (e *rankIndexEntry) relativeOnesCount2() uint32 { return uint32(e.relLo[1]) }
func (e *rankIndexEntry) relativeOnesCount3() uint32 { return uint32(e.relLo[2]) }
func (e *rankIndexEntry) relativeOnesCount4() uint32 { return uint32(e.rel4) }
func (e *rankIndexEntry) relativeOnesCount5() uint32 { return uint32(e.rel4) + uint32(e.relHi[0]) }
func (e *rankIndexEntry) relativeOnesCount6() uint32 { return uint32(e.rel4) + uint32(e.relHi[1]) }
func (e *rankIndexEntry) relativeOnesCount7() uint32 { return uint32(e.rel4) + uint32(e.relHi[2]) }

// relativeOnesCount returns the count of ones in the block before word k,
// for k in 0..7. k == 0 is always 0.
func (e *rankIndexEntry) relativeOnesCount(k uint32) uint32 {
	switch k {
	case 0:
		return 0
	case 1, 2, 3:
		return uint32(e.relLo[k-1])
	case 4:
		return uint32(e.rel4)
	default:
		return uint32(e.rel4) + uint32(e.relHi[k-5])
	}
}

func (e *rankIndexEntry) setAbsoluteOnesCount(v uint32) { e.absOnes = v }

func (e *rankIndexEntry) setRelativeOnesCount1(v uint32) { e.relLo[0] = uint8(v) }
func (e *rankIndexEntry) setRelativeOnesCount2(v uint32) { e.relLo[1] = uint8(v) }
func (e *rankIndexEntry) setRelativeOnesCount3(v uint32) { e.relLo[2] = uint8(v) }
func (e *rankIndexEntry) setRelativeOnesCount4(v uint32) { e.rel4 = uint16(v) }
func (e *rankIndexEntry) setRelativeOnesCount5(v uint32) { e.relHi[0] = uint8(v - uint32(e.rel4)) }
func (e *rankIndexEntry) setRelativeOnesCount6(v uint32) { e.relHi[1] = uint8(v - uint32(e.rel4)) }
func (e *rankIndexEntry) setRelativeOnesCount7(v uint32) { e.relHi[2] = uint8(v - uint32(e.rel4)) }
