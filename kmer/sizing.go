package kmer

import "fmt"

// RankCount returns 4^k, the number of distinct patterns of length k.
//
// The caller is responsible for ensuring 1 <= k <= MaxK. CheckK can be used to
// check this.
func RankCount(k int) uint64 {
	return uint64(1) << (SymbolBits * uint(k))
}

// RankMask returns the mask covering the 2k low bits of a rank.
func RankMask(k int) Rank {
	return Rank(RankCount(k) - 1)
}

// CheckK validates k for codec use.
func CheckK(k int) error {
	if k < 1 || k > MaxK {
		return fmt.Errorf("%w: k=%d not in [1, %d]", ErrInvalidK, k, MaxK)
	}
	return nil
}

// CheckTableK validates k for dense table and array use.
func CheckTableK(k int) error {
	if k < 1 || k > MaxTableK {
		return fmt.Errorf("%w: k=%d not in [1, %d] for dense tables", ErrInvalidK, k, MaxTableK)
	}
	return nil
}
