package clumpset

import (
	"bytes"

	"github.com/forestrie/go-clumpfind/kmer"
)

// DecodeHeaderV1 decodes a V1 header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}

	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return HeaderV1{}, false, nil
	}

	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h.BitOrder = region[5]
	h.K = region[6]
	rankCount := readU64BE(region[8:16])
	h.NSet = readU32BE(region[16:20])

	if h.BitOrder != BitOrderLSB0 {
		return HeaderV1{}, false, ErrBadBitOrder
	}
	if err := CheckK(h.K); err != nil {
		return HeaderV1{}, false, err
	}
	if rankCount != kmer.RankCount(int(h.K)) {
		return HeaderV1{}, false, ErrBadRankCount
	}

	return h, true, nil
}

// EncodeHeaderV1 writes a V1 header into region.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if h.BitOrder != BitOrderLSB0 {
		return ErrBadBitOrder
	}
	if err := CheckK(h.K); err != nil {
		return err
	}

	copy(region[0:4], []byte(MagicV1))
	region[4] = VersionV1
	region[5] = h.BitOrder
	region[6] = h.K
	region[7] = 0
	writeU64BE(region[8:16], kmer.RankCount(int(h.K)))
	writeU32BE(region[16:20], h.NSet)
	clear(region[20:HeaderBytesV1])
	return nil
}
