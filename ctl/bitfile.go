// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/featurebasedb/bitmapindex"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Bit-vector files carry a fixed header followed by the raw words in
// little-endian order. The index itself owns no serialization; this framing
// belongs to the tools. Files ending in .gz are gzip-compressed.
const (
	bitFileMagic   = uint32(0x43455642) // "BVEC", little-endian
	bitFileVersion = uint32(1)
)

type bitFileHeader struct {
	Magic   uint32
	Version uint32
	NumBits uint64
}

// WriteBitVector writes bits, holding numBits bits, to the file at path.
func WriteBitVector(path string, bits []uint64, numBits uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating bit-vector file")
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	hdr := bitFileHeader{Magic: bitFileMagic, Version: bitFileVersion, NumBits: numBits}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return errors.Wrap(err, "writing header")
	}
	words := bits[:bitmapindex.StorageSize(numBits)]
	if err := binary.Write(w, binary.LittleEndian, words); err != nil {
		return errors.Wrap(err, "writing words")
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return errors.Wrap(err, "flushing gzip stream")
		}
	}
	return errors.Wrap(f.Close(), "closing bit-vector file")
}

// ReadBitVector reads a bit-vector file, returning the words and the bit
// count.
func ReadBitVector(path string) ([]uint64, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "opening bit-vector file")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, 0, errors.Wrap(err, "opening gzip stream")
		}
		defer gz.Close()
		r = gz
	}

	var hdr bitFileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, 0, errors.Wrap(err, "reading header")
	}
	if hdr.Magic != bitFileMagic {
		return nil, 0, errors.Errorf("not a bit-vector file: magic %#08x", hdr.Magic)
	}
	if hdr.Version != bitFileVersion {
		return nil, 0, errors.Errorf("unsupported bit-vector file version %d", hdr.Version)
	}
	if hdr.NumBits >= 1<<32 {
		return nil, 0, errors.Errorf("bit count %d out of range", hdr.NumBits)
	}
	words := make([]uint64, bitmapindex.StorageSize(hdr.NumBits))
	if err := binary.Read(r, binary.LittleEndian, words); err != nil {
		return nil, 0, errors.Wrap(err, "reading words")
	}
	return words, hdr.NumBits, nil
}
