// Package motif holds the simple pattern utilities that sit beside clump
// finding: naive occurrence search, reverse complement and most frequent
// words.
package motif

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/forestrie/go-clumpfind/clump"
	"github.com/forestrie/go-clumpfind/kmer"
)

// Positions returns the start of every, possibly overlapping, occurrence of
// pattern in text. It compares bytes directly and never encodes.
func Positions(text, pattern []byte) []int {
	return PositionsFrom(text, pattern, 0)
}

// PositionsFrom is Positions for occurrences starting at or after start.
// Offsets are still relative to the beginning of text.
func PositionsFrom(text, pattern []byte, start int) []int {
	m := len(pattern)
	if m == 0 {
		return nil
	}
	var ret []int

searching:
	for i := max(start, 0); i < len(text)-m+1; i++ {
		for j := 0; j < m; j++ {
			if text[i+j] != pattern[j] {
				continue searching
			}
		}
		ret = append(ret, i)
	}
	return ret
}

// Count returns the number of occurrences of pattern in text.
func Count(text, pattern []byte) int {
	return len(Positions(text, pattern))
}

func complement(b byte) (byte, bool) {
	switch b {
	case 'A':
		return 'T', true
	case 'C':
		return 'G', true
	case 'G':
		return 'C', true
	case 'T':
		return 'A', true
	case 'a':
		return 't', true
	case 'c':
		return 'g', true
	case 'g':
		return 'c', true
	case 't':
		return 'a', true
	}
	return 0, false
}

// ReverseComplement returns the reverse complement of a DNA sequence. Case
// is preserved; anything other than ACGT (either case) is an error.
func ReverseComplement(nts []byte) ([]byte, error) {
	ret := make([]byte, len(nts))
	for i, b := range nts {
		c, ok := complement(b)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", kmer.ErrInvalidSymbol, b, i)
		}
		ret[len(nts)-i-1] = c
	}
	return ret, nil
}

// FrequentWords returns the most frequent patterns of length table.K() in
// text, in rank order, and how often each occurs. A text with no k-mers
// returns (nil, 0, nil).
func FrequentWords(text []byte, table *kmer.RankTable, bounds clump.Bounds) ([]string, uint32, error) {
	counts, err := clump.CountWindow(text, table, bounds)
	if err != nil {
		return nil, 0, err
	}
	var best uint32
	for _, c := range counts {
		best = max(best, c)
	}
	if best == 0 {
		return nil, 0, nil
	}

	var words []string
	for r, c := range counts {
		if c != best {
			continue
		}
		p, err := table.Pattern(kmer.Rank(r))
		if err != nil {
			return nil, 0, err
		}
		words = append(words, p)
	}
	return words, best, nil
}

// WordCount is a pattern and its number of occurrences.
type WordCount struct {
	Pattern string
	Count   uint32
}

// CountTable lists every pattern with a non-zero count, most frequent first.
// Patterns with equal counts stay in rank order.
func CountTable(counts clump.Counts, table *kmer.RankTable) ([]WordCount, error) {
	if len(counts) != table.Len() {
		return nil, fmt.Errorf("%w: have %d, k=%d", clump.ErrCountsSize, len(counts), table.K())
	}
	var out []WordCount
	for r, c := range counts {
		if c == 0 {
			continue
		}
		p, err := table.Pattern(kmer.Rank(r))
		if err != nil {
			return nil, err
		}
		out = append(out, WordCount{Pattern: p, Count: c})
	}
	slices.SortStableFunc(out, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out, nil
}
