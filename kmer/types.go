package kmer

import "errors"

// Rank is the dense integer encoding of a pattern. For a given k every rank
// is in [0, 4^k).
type Rank uint64

const (
	// SymbolBits is the width of one encoded symbol.
	SymbolBits = 2

	// AlphabetSize is the fixed number of symbols in an Alphabet.
	AlphabetSize = 1 << SymbolBits

	// MaxK is the largest pattern length whose ranks fit a Rank.
	MaxK = 31

	// MaxTableK is the largest pattern length for which dense tables (and
	// dense per-rank arrays) are built.
	MaxTableK = 12
)

var (
	ErrInvalidSymbol   = errors.New("kmer: symbol not in alphabet")
	ErrInvalidRank     = errors.New("kmer: rank out of range")
	ErrInvalidK        = errors.New("kmer: invalid pattern length k")
	ErrInvalidPattern  = errors.New("kmer: pattern length does not match k")
	ErrInvalidAlphabet = errors.New("kmer: alphabet must have 4 distinct symbols")
)

// Ranker maps patterns of a fixed length to their ranks. Both *Codec (direct
// computation) and *RankTable (lookup) implement it.
//
// Roll advances a rank by one symbol: the first symbol of prev is dropped
// and b is appended.
type Ranker interface {
	K() int
	RankOf(pattern []byte) (Rank, error)
	Roll(prev Rank, b byte) (Rank, error)
}
