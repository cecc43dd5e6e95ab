package kmer

import "fmt"

// RankTable holds both directions of the pattern <-> rank mapping for every
// one of the 4^k ranks. It is built once per k, is immutable afterwards and
// may be shared by any number of concurrent readers.
type RankTable struct {
	codec    *Codec
	patterns []string
	ranks    map[string]Rank
}

// BuildTables enumerates every rank in [0, 4^k), decodes it with c and
// records both directions. The cost is O(4^k * k).
func BuildTables(c *Codec) (*RankTable, error) {
	if err := CheckTableK(c.k); err != nil {
		return nil, err
	}

	n := c.Count()
	t := &RankTable{
		codec:    c,
		patterns: make([]string, n),
		ranks:    make(map[string]Rank, n),
	}
	for r := Rank(0); uint64(r) < n; r++ {
		p, err := c.Decode(r)
		if err != nil {
			return nil, err
		}
		t.patterns[r] = p
		t.ranks[p] = r
	}
	return t, nil
}

// K returns the pattern length.
func (t *RankTable) K() int { return t.codec.k }

// Len returns 4^k.
func (t *RankTable) Len() int { return len(t.patterns) }

// Codec returns the codec the table was built from.
func (t *RankTable) Codec() *Codec { return t.codec }

// Pattern returns the pattern for r.
func (t *RankTable) Pattern(r Rank) (string, error) {
	if uint64(r) >= uint64(len(t.patterns)) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRank, r, len(t.patterns))
	}
	return t.patterns[r], nil
}

// RankString returns the rank for pattern.
func (t *RankTable) RankString(pattern string) (Rank, error) {
	r, ok := t.ranks[pattern]
	if ok {
		return r, nil
	}
	// Folded case variants are not in the table but the codec accepts them.
	return t.codec.EncodeString(pattern)
}

// RankOf implements Ranker by table lookup.
func (t *RankTable) RankOf(pattern []byte) (Rank, error) {
	r, ok := t.ranks[string(pattern)]
	if ok {
		return r, nil
	}
	return t.codec.Encode(pattern)
}

// Roll implements Ranker with the codec.
func (t *RankTable) Roll(prev Rank, b byte) (Rank, error) {
	return t.codec.Roll(prev, b)
}
