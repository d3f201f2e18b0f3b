// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmapindex

import mathbits "math/bits"

// Select1 returns the position of the k-th (zero-based) set bit, or Bits()
// when k is at least OnesCount().
func (b *BitmapIndex) Select1(k uint64) uint64 {
	if k >= b.OnesCount() {
		return b.numBits
	}
	blockIndex := b.findRankIndexEntry(k)
	e := &b.rankIndex[blockIndex]
	wordIndex := uint64(blockIndex) * wordsPerBlock

	// Pick the word holding the target: one comparison per level, three
	// levels, visiting the relative counts in the order 4, 2|6, 1|3|5|7.
	rembits := uint32(k - uint64(e.absoluteOnesCount()))
	if rembits < e.relativeOnesCount4() {
		if rembits < e.relativeOnesCount2() {
			if rembits >= e.relativeOnesCount1() {
				wordIndex += 1
				rembits -= e.relativeOnesCount1()
			}
		} else if rembits < e.relativeOnesCount3() {
			wordIndex += 2
			rembits -= e.relativeOnesCount2()
		} else {
			wordIndex += 3
			rembits -= e.relativeOnesCount3()
		}
	} else if rembits < e.relativeOnesCount6() {
		if rembits < e.relativeOnesCount5() {
			wordIndex += 4
			rembits -= e.relativeOnesCount4()
		} else {
			wordIndex += 5
			rembits -= e.relativeOnesCount5()
		}
	} else if rembits < e.relativeOnesCount7() {
		wordIndex += 6
		rembits -= e.relativeOnesCount6()
	} else {
		wordIndex += 7
		rembits -= e.relativeOnesCount7()
	}

	return wordBits*wordIndex + uint64(nthBit(b.bits[wordIndex], rembits))
}

// Select0 returns the position of the k-th (zero-based) clear bit, or
// Bits() when k is at least ZerosCount().
func (b *BitmapIndex) Select0(k uint64) uint64 {
	if k >= b.ZerosCount() {
		return b.numBits
	}
	wordIndex, remzeros := b.select0Word(k)
	return wordBits*wordIndex + uint64(nthBit(^b.bits[wordIndex], remzeros))
}

// select0Word locates the word holding the k-th clear bit, returning the
// word index and the rank of the target zero within that word. Requires
// k < ZerosCount().
func (b *BitmapIndex) select0Word(k uint64) (uint64, uint32) {
	blockIndex := b.findInvertedRankIndexEntry(k)
	e := &b.rankIndex[blockIndex]
	wordIndex := uint64(blockIndex) * wordsPerBlock

	// Same shape as the Select1 tree, on zero counts: the count of zeros
	// before word j of the block is 64*j minus the relative ones count.
	entryZeros := uint32(wordBits*wordIndex - uint64(e.absoluteOnesCount()))
	remzeros := uint32(k) - entryZeros
	if remzeros < 4*wordBits-e.relativeOnesCount4() {
		if remzeros < 2*wordBits-e.relativeOnesCount2() {
			if remzeros >= wordBits-e.relativeOnesCount1() {
				wordIndex += 1
				remzeros -= wordBits - e.relativeOnesCount1()
			}
		} else if remzeros < 3*wordBits-e.relativeOnesCount3() {
			wordIndex += 2
			remzeros -= 2*wordBits - e.relativeOnesCount2()
		} else {
			wordIndex += 3
			remzeros -= 3*wordBits - e.relativeOnesCount3()
		}
	} else if remzeros < 6*wordBits-e.relativeOnesCount6() {
		if remzeros < 5*wordBits-e.relativeOnesCount5() {
			wordIndex += 4
			remzeros -= 4*wordBits - e.relativeOnesCount4()
		} else {
			wordIndex += 5
			remzeros -= 5*wordBits - e.relativeOnesCount5()
		}
	} else if remzeros < 7*wordBits-e.relativeOnesCount7() {
		wordIndex += 6
		remzeros -= 6*wordBits - e.relativeOnesCount6()
	} else {
		wordIndex += 7
		remzeros -= 7*wordBits - e.relativeOnesCount7()
	}
	return wordIndex, remzeros
}

// Select0s returns the positions of the k-th and (k+1)-th clear bits.
// Equivalent to calling Select0 twice, but when both zeros land in the same
// word (31 of 32 calls at density 1/2) the second needs no extra search.
// Either element is Bits() when the zeros are exhausted.
func (b *BitmapIndex) Select0s(k uint64) (uint64, uint64) {
	zerosCount := b.ZerosCount()
	if k >= zerosCount {
		return b.numBits, b.numBits
	}
	if k+1 >= zerosCount {
		return b.Select0(k), b.numBits
	}

	wordIndex, remzeros := b.select0Word(k)
	invWord := ^b.bits[wordIndex]
	nth := nthBit(invWord, remzeros)
	pos := wordBits*wordIndex + uint64(nth)

	// Knock out the target zero and everything below it, then the next
	// zero is the lowest bit left. The mask is ~((2 << nth) - 1) written
	// without a shift count of 64 at nth == 63.
	mask := -(uint64(2) << nth)
	masked := invWord & mask
	if masked != 0 {
		return pos, wordBits*wordIndex + uint64(mathbits.TrailingZeros64(masked))
	}
	return pos, b.Select0(k + 1)
}
