package clumpset

import "github.com/forestrie/go-clumpfind/kmer"

// CheckK validates k for flag set sizing.
func CheckK(k uint8) error {
	if kmer.CheckTableK(int(k)) != nil {
		return ErrBadK
	}
	return nil
}

// BitsetBytesV1 returns ceil(4^k/8).
//
// The caller is responsible for ensuring CheckK(k) == nil.
func BitsetBytesV1(k uint8) uint64 {
	return (kmer.RankCount(int(k)) + 7) / 8
}

// RegionBytesV1 returns the required byte length for a flag set region:
//
//	HeaderBytesV1 + ceil(4^k/8)
func RegionBytesV1(k uint8) (uint64, error) {
	if err := CheckK(k); err != nil {
		return 0, err
	}
	return uint64(HeaderBytesV1) + BitsetBytesV1(k), nil
}

// NewV1 allocates and initializes a region for k.
func NewV1(k uint8) ([]byte, error) {
	n, err := RegionBytesV1(k)
	if err != nil {
		return nil, err
	}
	region := make([]byte, n)
	if err := InitV1(region, k); err != nil {
		return nil, err
	}
	return region, nil
}
