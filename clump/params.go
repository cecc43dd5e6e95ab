package clump

import (
	"fmt"
	"math"

	"github.com/forestrie/go-clumpfind/kmer"
)

// Params are the clump parameters: pattern length K, window length L and
// threshold T.
type Params struct {
	K int
	L int
	T int
}

// Validate checks 1 <= K <= kmer.MaxTableK, L >= K and 1 <= T <= math.MaxUint32.
// T is compared against uint32 counters, so larger values cannot be honoured.
func (p Params) Validate() error {
	if err := kmer.CheckTableK(p.K); err != nil {
		return err
	}
	if p.L < p.K {
		return fmt.Errorf("%w: L=%d is shorter than k=%d", ErrInvalidWindow, p.L, p.K)
	}
	if p.T < 1 || uint64(p.T) > math.MaxUint32 {
		return fmt.Errorf("%w: t=%d", ErrInvalidThreshold, p.T)
	}
	return nil
}

// Threshold returns T as a counter value. It is only meaningful for
// validated params.
func (p Params) Threshold() uint32 { return uint32(p.T) }

func (p Params) String() string {
	return fmt.Sprintf("k=%d L=%d t=%d", p.K, p.L, p.T)
}
