// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

//go:build amd64

package bitmapindex

import "github.com/klauspost/cpuid/v2"

var hasBMI2 = cpuid.CPU.Has(cpuid.BMI2)

// nthBitPDEP is tzcnt(pdep(1<<k, w)): depositing the k-th bit of the mask
// 1<<k into the set positions of w lands it exactly on the k-th set bit.
//
//go:noescape
func nthBitPDEP(w, k uint64) uint64

// nthBit returns the position of the k-th (zero-based) set bit of w.
// Requires k < popcount(w).
func nthBit(w uint64, k uint32) uint32 {
	if hasBMI2 {
		return uint32(nthBitPDEP(w, uint64(k)))
	}
	return nthBitGeneric(w, k)
}
