// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmapindex

import (
	mathbits "math/bits"

	"github.com/pkg/errors"
)

// ErrTooManyBits is returned by BuildIndex when the bit vector does not fit
// the index's 32-bit absolute counts.
var ErrTooManyBits = errors.New("bitmapindex: bit vector must be shorter than 1<<32 bits")

// rankIndexSize returns the number of rank entries for the current vector:
// one per block, rounded up, plus the terminator.
func (b *BitmapIndex) rankIndexSize() uint64 {
	return (b.ArraySize()+wordsPerBlock-1)/wordsPerBlock + 1
}

// BuildIndex indexes bits, which holds numBits bits, replacing any index
// built earlier. Words of bits past numBits must be zero in their tail
// bits; whole words past the end are not read. The two flags independently
// enable the select-0 and select-1 acceleration arrays.
//
// The words are borrowed for the lifetime of the index. Mutating them, or
// calling BuildIndex concurrently with any other method, leaves query
// results undefined.
func (b *BitmapIndex) BuildIndex(bits []uint64, numBits uint64, enableSelect0, enableSelect1 bool) error {
	// Absolute counts are uint32s. Checking the input bit count keeps the
	// rule simple, at the cost of rejecting some long vectors with fewer
	// than 1<<32 ones that a count-of-ones check would allow.
	if numBits >= 1<<32 {
		return ErrTooManyBits
	}
	if uint64(len(bits)) < StorageSize(numBits) {
		return errors.Errorf("bitmapindex: %d bits need %d words, have %d", numBits, StorageSize(numBits), len(bits))
	}
	b.bits = bits
	b.numBits = numBits
	b.rankIndex = make([]rankIndexEntry, b.rankIndexSize())

	b.select0Index = nil
	if enableSelect0 {
		// Reserve approximately enough for density 1/2.
		b.select0Index = make([]uint32, 0, numBits/(2*bitsPerSelect0Block)+1)
	}
	b.select1Index = nil
	if enableSelect1 {
		b.select1Index = make([]uint32, 0, numBits/(2*bitsPerSelect1Block)+1)
	}

	arraySize := b.ArraySize()
	var onesCount, zerosCount uint32
	for wordIndex := uint64(0); wordIndex < arraySize; wordIndex += wordsPerBlock {
		// The final block may overhang the vector; overhang words read as
		// zero.
		var word [wordsPerBlock]uint64
		var wordOnes [wordsPerBlock]uint32
		for i := range word {
			if wordIndex+uint64(i) < arraySize {
				word[i] = bits[wordIndex+uint64(i)]
			}
			wordOnes[i] = uint32(mathbits.OnesCount64(word[i]))
		}

		e := &b.rankIndex[wordIndex/wordsPerBlock]
		absOnes := onesCount
		e.setAbsoluteOnesCount(absOnes)
		onesCount += wordOnes[0]
		e.setRelativeOnesCount1(onesCount - absOnes)
		onesCount += wordOnes[1]
		e.setRelativeOnesCount2(onesCount - absOnes)
		onesCount += wordOnes[2]
		e.setRelativeOnesCount3(onesCount - absOnes)
		onesCount += wordOnes[3]
		e.setRelativeOnesCount4(onesCount - absOnes)
		onesCount += wordOnes[4]
		e.setRelativeOnesCount5(onesCount - absOnes)
		onesCount += wordOnes[5]
		e.setRelativeOnesCount6(onesCount - absOnes)
		onesCount += wordOnes[6]
		e.setRelativeOnesCount7(onesCount - absOnes)
		onesCount += wordOnes[7]

		if enableSelect0 {
			s0 := zerosCount
			for i := 0; i < wordsPerBlock; i++ {
				bitOffset := (wordIndex + uint64(i)) * wordBits
				if bitOffset >= numBits {
					break
				}
				// The final word has zeros past numBits that must not be
				// counted, so clip its width before subtracting the ones.
				remaining := uint32(wordBits)
				if numBits-bitOffset < wordBits {
					remaining = uint32(numBits - bitOffset)
				}
				wordZeros := remaining - wordOnes[i]

				// An entry is recorded every bitsPerSelect0Block zeros, so
				// the next recording point is -s0 mod the stride.
				zerosToSkip := -s0 % bitsPerSelect0Block
				if wordZeros > zerosToSkip {
					nth := nthBit(^word[i], zerosToSkip)
					b.select0Index = append(b.select0Index, uint32(bitOffset)+nth)
					// The stride is no smaller than the block, so a block
					// holds at most one recording point.
					break
				}
				s0 += wordZeros
			}
			zerosCount += bitsPerBlock - (onesCount - absOnes)
		}

		if enableSelect1 {
			s1 := absOnes
			for i := 0; i < wordsPerBlock; i++ {
				onesToSkip := -s1 % bitsPerSelect1Block
				if wordOnes[i] > onesToSkip {
					bitOffset := (wordIndex + uint64(i)) * wordBits
					nth := nthBit(word[i], onesToSkip)
					b.select1Index = append(b.select1Index, uint32(bitOffset)+nth)
					break
				}
				s1 += wordOnes[i]
			}
		}
	}

	// Terminators: the grand total in the last rank entry, the vector
	// length in each select array.
	b.rankIndex[len(b.rankIndex)-1].setAbsoluteOnesCount(onesCount)
	if enableSelect0 {
		b.select0Index = append(b.select0Index, uint32(numBits))
	}
	if enableSelect1 {
		b.select1Index = append(b.select1Index, uint32(numBits))
	}
	return nil
}
