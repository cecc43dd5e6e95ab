package kmer

import "fmt"

// Codec converts between patterns of a fixed length k and their ranks.
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	alpha Alphabet
	k     int
	mask  Rank
}

// NewCodec returns a codec for patterns of length k over alpha.
func NewCodec(alpha Alphabet, k int) (*Codec, error) {
	if !alpha.Valid() {
		return nil, ErrInvalidAlphabet
	}
	if err := CheckK(k); err != nil {
		return nil, err
	}
	return &Codec{alpha: alpha, k: k, mask: RankMask(k)}, nil
}

// K returns the pattern length.
func (c *Codec) K() int { return c.k }

// Alphabet returns the alphabet the codec was built with.
func (c *Codec) Alphabet() Alphabet { return c.alpha }

// Count returns 4^k.
func (c *Codec) Count() uint64 { return uint64(c.mask) + 1 }

// Encode folds pattern left to right, shifting the accumulator left by 2 bits
// and adding each symbol's code.
func (c *Codec) Encode(pattern []byte) (Rank, error) {
	if len(pattern) != c.k {
		return 0, fmt.Errorf("%w: length %d, k=%d", ErrInvalidPattern, len(pattern), c.k)
	}
	var r Rank
	for i, b := range pattern {
		code, ok := c.alpha.Code(b)
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, b, i)
		}
		r = r<<SymbolBits | Rank(code)
	}
	return r, nil
}

// EncodeString is Encode for string patterns.
func (c *Codec) EncodeString(pattern string) (Rank, error) {
	return c.Encode([]byte(pattern))
}

// RankOf implements Ranker by direct computation.
func (c *Codec) RankOf(pattern []byte) (Rank, error) {
	return c.Encode(pattern)
}

// Decode is the inverse of Encode. The low 2 bits are taken as the last
// symbol, then the rank is shifted right, k times.
func (c *Codec) Decode(r Rank) (string, error) {
	if r > c.mask {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRank, r, c.Count())
	}
	buf := make([]byte, c.k)
	for i := c.k - 1; i >= 0; i-- {
		buf[i] = c.alpha.Symbol(uint8(r))
		r >>= SymbolBits
	}
	return string(buf), nil
}

// Roll returns the rank of the pattern obtained by dropping the first symbol
// of prev and appending b.
func (c *Codec) Roll(prev Rank, b byte) (Rank, error) {
	code, ok := c.alpha.Code(b)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, b)
	}
	return (prev<<SymbolBits | Rank(code)) & c.mask, nil
}
