package kmer

/*

# Dense rank encoding for DNA k-mers

This package maps patterns of k symbols over a 4 letter alphabet onto dense,
zero based integer ranks and back. Every symbol takes exactly 2 bits, so a
pattern of length k occupies the low 2k bits of a uint64 and the ranks for a
given k are precisely the integers in [0, 4^k).

It follows the same "functional primitives" style as the rest of the module:

- small, composable functions
- explicit bit layouts
- no hidden state, the alphabet is a value passed to the codec
- a burden of knowledge on the caller for hot paths

## Bit layout

Packing is big-endian: the first symbol of the pattern lands in the most
significant occupied bits. With the DNA alphabet (A=0, C=1, G=2, T=3):

	pattern   A  C  G  T
	bits     00 01 10 11
	rank     0b00011011 = 27

Because the packing is big-endian, numeric rank order is also the
lexicographic order of the patterns under the alphabet's symbol order.

## Limits

Ranks are uint64, so the codec accepts 1 <= k <= MaxK (31). 4^32 would need
65 bits.

RankTable materialises both directions of the mapping for all 4^k ranks.
That, and the dense frequency arrays built on top of it, grow exponentially, so
table construction is limited to k <= MaxTableK (12, or 16,777,216 ranks).
Callers needing larger k should use the Codec directly.

*/
