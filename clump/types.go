package clump

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWindow    = errors.New("clump: invalid window")
	ErrInvalidThreshold = errors.New("clump: invalid threshold")
	ErrCountsSize       = errors.New("clump: frequency array does not have 4^k entries")
)

// Counts is a frequency array: one counter per rank.
type Counts []uint32

// Bounds selects which k-mer start positions a span of text contributes.
type Bounds uint8

const (
	// BoundsInclusive counts every start 0 .. n-k, n-k+1 positions.
	BoundsInclusive Bounds = iota

	// BoundsReference counts starts 0 .. n-k-1, n-k positions. It reproduces
	// line scanners that kept the line terminator on each record and stopped
	// one start short to keep it out of the last k-mer.
	BoundsReference
)

func (b Bounds) String() string {
	switch b {
	case BoundsInclusive:
		return "inclusive"
	case BoundsReference:
		return "reference"
	}
	return fmt.Sprintf("Bounds(%d)", uint8(b))
}

// ParseBounds is the inverse of Bounds.String.
func ParseBounds(s string) (Bounds, error) {
	switch s {
	case "inclusive", "":
		return BoundsInclusive, nil
	case "reference":
		return BoundsReference, nil
	}
	return 0, fmt.Errorf("clump: unknown bounds %q", s)
}

// Starts returns how many k-mer start positions a span of length n
// contributes under b.
func (b Bounds) Starts(n, k int) int {
	s := n - k + 1
	if b == BoundsReference {
		s--
	}
	return max(s, 0)
}
