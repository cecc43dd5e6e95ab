package kmer

import "fmt"

// Alphabet is the fixed symbol <-> 2-bit code mapping used by a Codec. It is a
// small value type, copying it is cheap and it is never mutated after
// construction.
type Alphabet struct {
	symbols [AlphabetSize]byte
	codes   [256]int8
	ok      bool
}

// DNA is the uppercase nucleotide alphabet with A=0, C=1, G=2, T=3.
var DNA = MustAlphabet("ACGT")

// NewAlphabet returns the alphabet whose symbol i is symbols[i] and encodes to
// the 2-bit code i.
func NewAlphabet(symbols string) (Alphabet, error) {
	if len(symbols) != AlphabetSize {
		return Alphabet{}, fmt.Errorf("%w: got %q", ErrInvalidAlphabet, symbols)
	}

	var a Alphabet
	for i := range a.codes {
		a.codes[i] = -1
	}
	for i := 0; i < AlphabetSize; i++ {
		c := symbols[i]
		if a.codes[c] >= 0 {
			return Alphabet{}, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, c)
		}
		a.symbols[i] = c
		a.codes[c] = int8(i)
	}
	a.ok = true
	return a, nil
}

// MustAlphabet is NewAlphabet for package level declarations.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// FoldCase returns a copy of a that additionally accepts the other case of
// each ASCII letter symbol. Decoding still produces the canonical symbols.
func (a Alphabet) FoldCase() Alphabet {
	for i, c := range a.symbols {
		var other byte
		switch {
		case c >= 'A' && c <= 'Z':
			other = c + ('a' - 'A')
		case c >= 'a' && c <= 'z':
			other = c - ('a' - 'A')
		default:
			continue
		}
		// Never steal a byte that is itself a canonical symbol.
		if a.codes[other] < 0 {
			a.codes[other] = int8(i)
		}
	}
	return a
}

// Valid reports whether a was built by NewAlphabet.
func (a Alphabet) Valid() bool { return a.ok }

// Code returns the 2-bit code for b, and false if b is not in the alphabet.
func (a Alphabet) Code(b byte) (uint8, bool) {
	c := a.codes[b]
	return uint8(c), c >= 0
}

// Symbol returns the canonical symbol for the low 2 bits of code.
func (a Alphabet) Symbol(code uint8) byte {
	return a.symbols[code&(AlphabetSize-1)]
}

// Symbols returns the canonical symbols in code order.
func (a Alphabet) Symbols() string {
	return string(a.symbols[:])
}
