// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package bitmapindex implements a succinct rank/select index over a plain
// []uint64 bit vector.
//
// The index answers Rank1/Rank0 in constant time and Select1/Select0 in a
// small bounded number of comparisons plus one hardware "n-th set bit"
// operation. It does so by keeping a running popcount summary of the bit
// vector, divided into blocks that cover one cache line (eight 64-bit
// words). Each summary entry holds one absolute count of the ones before
// the block and seven packed relative counts at the word boundaries inside
// the block.
//
// Rank queries read the summary directly. Select queries binary search it,
// or, when the optional select acceleration arrays are built, only search
// the handful of blocks those arrays narrow them to. The select arrays
// record every 512th set (respectively clear) bit position, so their size
// is proportional to the density of the bit they index.
//
// Absolute counts are stored as uint32, so bit vectors must be shorter
// than 1<<32 bits. The summary costs 12 bytes per 64 bytes of bit vector
// (18.75%); each select array adds 6.25% scaled by the density of its bit.
//
// The bit vector itself is borrowed, never copied: the caller owns the
// words and must not mutate them while the index is in use. BuildIndex is
// the only mutating operation; a built index is safe for concurrent
// readers.
package bitmapindex

import (
	mathbits "math/bits"
	"sort"
)

const (
	// wordBits is the bit width of one storage word.
	wordBits    = 64
	wordLogBits = 6
	wordMask    = wordBits - 1

	// wordsPerBlock is the number of words summarized by one rank index
	// entry. Eight words is one cache line on both x86-64 and ARM.
	wordsPerBlock = 8
	bitsPerBlock  = wordsPerBlock * wordBits

	// bitsPerSelect0Block and bitsPerSelect1Block are the strides of the
	// select acceleration arrays. Must not be below bitsPerBlock: the
	// build loop records at most one crossing per block.
	bitsPerSelect0Block = 512
	bitsPerSelect1Block = 512
)

// MaxLinearSearchBlocks is the largest rank-entry span that findRankIndexEntry
// scans linearly before switching to binary search. Eight was the fastest
// value on our benchmarks.
const MaxLinearSearchBlocks = 8

// BitmapIndex is a rank/select index over a borrowed bit vector.
//
// The zero value is unbuilt; call BuildIndex (or use New) before querying.
// Queries on an unbuilt index have undefined results (OnesCount and the
// selects panic).
type BitmapIndex struct {
	bits    []uint64
	numBits uint64

	// rankIndex has one entry per block plus a terminator whose absolute
	// count is the total number of ones.
	rankIndex []rankIndexEntry

	// select0Index[i] is Select0(bitsPerSelect0Block * i), terminated by
	// numBits. Nil when the select-0 acceleration is disabled. Likewise
	// select1Index for set bits.
	select0Index []uint32
	select1Index []uint32
}

// New builds an index over bits, which holds numBits bits. The two flags
// independently enable the select-0 and select-1 acceleration arrays.
func New(bits []uint64, numBits uint64, enableSelect0, enableSelect1 bool) (*BitmapIndex, error) {
	b := &BitmapIndex{}
	if err := b.BuildIndex(bits, numBits, enableSelect0, enableSelect1); err != nil {
		return nil, err
	}
	return b, nil
}

// Bits returns the length of the indexed bit vector in bits.
func (b *BitmapIndex) Bits() uint64 { return b.numBits }

// Get reports whether bit i of the indexed vector is set.
func (b *BitmapIndex) Get(i uint64) bool { return Get(b.bits, i) }

// ArraySize returns the number of words in the indexed bit vector.
func (b *BitmapIndex) ArraySize() uint64 { return StorageSize(b.numBits) }

// ArrayBytes returns the number of bytes used by the bit vector itself.
func (b *BitmapIndex) ArrayBytes() uint64 { return b.ArraySize() * 8 }

// IndexBytes returns the number of bytes used by the index arrays.
func (b *BitmapIndex) IndexBytes() uint64 {
	return uint64(len(b.rankIndex))*rankIndexEntrySize +
		uint64(len(b.select0Index))*4 +
		uint64(len(b.select1Index))*4
}

// OnesCount returns the total number of set bits.
func (b *BitmapIndex) OnesCount() uint64 {
	// The terminator entry holds the grand total.
	return uint64(b.rankIndex[len(b.rankIndex)-1].absoluteOnesCount())
}

// ZerosCount returns the total number of clear bits.
func (b *BitmapIndex) ZerosCount() uint64 { return b.numBits - b.OnesCount() }

// Rank1 returns the number of set bits in positions [0, end).
// end may be anywhere in [0, Bits()]; end == Bits() counts the whole vector.
func (b *BitmapIndex) Rank1(end uint64) uint64 {
	if end == 0 {
		return 0
	}
	// Tolerate the inclusive upper bound; the terminator already has the
	// answer and indexOnesCount would read past the last block.
	if end >= b.numBits {
		return b.OnesCount()
	}
	endWord := end >> wordLogBits
	sum := uint64(b.indexOnesCount(endWord))
	bit := end & wordMask
	if bit == 0 {
		// Entire answer is in the index.
		return sum
	}
	return sum + uint64(mathbits.OnesCount64(b.bits[endWord]&(1<<bit-1)))
}

// Rank0 returns the number of clear bits in positions [0, end).
func (b *BitmapIndex) Rank0(end uint64) uint64 { return end - b.Rank1(end) }

// indexOnesCount returns, from the index alone, the count of ones in words
// [0, wordIndex).
func (b *BitmapIndex) indexOnesCount(wordIndex uint64) uint32 {
	e := &b.rankIndex[wordIndex/wordsPerBlock]
	return e.absoluteOnesCount() + e.relativeOnesCount(uint32(wordIndex%wordsPerBlock))
}

// findRankIndexEntry returns the index of the rank entry for the block
// containing the k-th set bit. Requires k < OnesCount().
func (b *BitmapIndex) findRankIndexEntry(k uint64) uint32 {
	lo, hi := 0, len(b.rankIndex)
	if len(b.select1Index) > 0 {
		// The k-th set bit lies between two recorded positions; only the
		// blocks spanning them need searching.
		// TODO: when k is a multiple of the stride the answer is
		// select1Index[si] itself; returning it would need a second return
		// value threaded through Select1.
		si := k / bitsPerSelect1Block
		loBit := uint64(b.select1Index[si])
		hiBit := uint64(b.select1Index[si+1])
		lo = int(loBit / bitsPerBlock)
		hi = int((hiBit + bitsPerBlock - 1) / bitsPerBlock)
	}

	if hi-lo <= MaxLinearSearchBlocks {
		for ; lo < hi; lo++ {
			if uint64(b.rankIndex[lo].absoluteOnesCount()) > k {
				break
			}
		}
		return uint32(lo - 1)
	}
	// Upper bound: first entry whose absolute count exceeds k, minus one.
	n := sort.Search(hi-lo, func(i int) bool {
		return uint64(b.rankIndex[lo+i].absoluteOnesCount()) > k
	})
	return uint32(lo + n - 1)
}

// findInvertedRankIndexEntry returns the index of the rank entry for the
// block containing the k-th clear bit. Requires k < ZerosCount().
//
// The zeros-before-block function is monotone but not strictly so (an
// all-ones block contributes nothing), which is fine for binary search.
// Linear search never benchmarked faster here, so there is no linear path.
func (b *BitmapIndex) findInvertedRankIndexEntry(k uint64) uint32 {
	var lo, hi uint64
	if len(b.select0Index) == 0 {
		hi = (b.numBits + bitsPerBlock - 1) / bitsPerBlock
	} else {
		si := k / bitsPerSelect0Block
		lo = uint64(b.select0Index[si]) / bitsPerSelect0Block
		hi = (uint64(b.select0Index[si+1]) + bitsPerSelect0Block - 1) / bitsPerSelect0Block
	}

	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if k < bitsPerBlock*mid-uint64(b.rankIndex[mid].absoluteOnesCount()) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return uint32(lo)
}
