// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmapindex

import (
	mathbits "math/bits"
	"math/rand"
	"testing"
)

// nthBitSlow is the obvious loop, the reference for both real
// implementations.
func nthBitSlow(w uint64, k uint32) uint32 {
	for pos := uint32(0); ; pos++ {
		if w&(1<<pos) != 0 {
			if k == 0 {
				return pos
			}
			k--
		}
	}
}

func TestNthBitTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		n := mathbits.OnesCount8(uint8(b))
		for k := 0; k < n; k++ {
			want := nthBitSlow(uint64(b), uint32(k))
			if got := uint32(nthBitTable[b][k]); got != want {
				t.Fatalf("nthBitTable[%#02x][%d] = %d, want %d", b, k, got, want)
			}
		}
	}
}

func TestNthBitGeneric(t *testing.T) {
	words := []uint64{
		1,
		1 << 63,
		^uint64(0),
		0xAAAAAAAAAAAAAAAA,
		0x5555555555555555,
		0x8000000000000001,
		0x0000000100000000,
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		words = append(words, rng.Uint64())
	}
	for _, w := range words {
		n := mathbits.OnesCount64(w)
		for k := 0; k < n; k++ {
			want := nthBitSlow(w, uint32(k))
			if got := nthBitGeneric(w, uint32(k)); got != want {
				t.Fatalf("nthBitGeneric(%#016x, %d) = %d, want %d", w, k, got, want)
			}
			if got := nthBit(w, uint32(k)); got != want {
				t.Fatalf("nthBit(%#016x, %d) = %d, want %d", w, k, got, want)
			}
		}
	}
}
