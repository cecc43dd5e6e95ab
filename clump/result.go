package clump

import (
	"github.com/forestrie/go-clumpfind/clumpset"
	"github.com/forestrie/go-clumpfind/kmer"
)

// Result is the outcome of scanning one record.
type Result struct {
	Params Params
	Bounds Bounds

	// Windows is the number of window positions examined.
	Windows int

	// Distinct is the number of distinct patterns that formed a clump.
	Distinct int

	// Flags is a clumpset V1 region with one bit per rank.
	Flags []byte
}

// Ranks returns the clumping ranks in ascending order.
func (r Result) Ranks() ([]kmer.Rank, error) {
	return clumpset.RanksV1(r.Flags)
}

// Patterns decodes the clumping ranks with t, in rank order.
func (r Result) Patterns(t *kmer.RankTable) ([]string, error) {
	ranks, err := r.Ranks()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		p, err := t.Pattern(rank)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Has reports whether the pattern with rank r formed a clump.
func (r Result) Has(rank kmer.Rank) bool {
	set, err := clumpset.IsSetV1(r.Flags, rank)
	return err == nil && set
}
