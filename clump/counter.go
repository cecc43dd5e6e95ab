package clump

import (
	"fmt"

	"github.com/forestrie/go-clumpfind/kmer"
)

// CountWindow returns a frequency array of 4^k counters holding the number
// of occurrences of every pattern in text, overlapping occurrences included.
func CountWindow(text []byte, r kmer.Ranker, bounds Bounds) (Counts, error) {
	k := r.K()
	if err := kmer.CheckTableK(k); err != nil {
		return nil, err
	}
	counts := make(Counts, kmer.RankCount(k))
	if err := CountInto(counts, text, r, bounds); err != nil {
		return nil, err
	}
	return counts, nil
}

// CountInto adds the occurrences of every pattern in text to counts. counts
// must have exactly 4^k entries; it is normally zeroed by the caller.
func CountInto(counts Counts, text []byte, r kmer.Ranker, bounds Bounds) error {
	k := r.K()
	if uint64(len(counts)) != kmer.RankCount(k) {
		return fmt.Errorf("%w: have %d, k=%d", ErrCountsSize, len(counts), k)
	}

	n := bounds.Starts(len(text), k)
	for i := 0; i < n; i++ {
		rank, err := r.RankOf(text[i : i+k])
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		counts[rank]++
	}
	return nil
}
