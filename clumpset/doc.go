package clumpset

/*

# Clump flag sets

This package stores the clump flag array, one bit per rank of a fixed k, in a
preallocated byte region.

It mirrors the `kmer` style:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## Semantics

A set bit means "a clump of the pattern with this rank was found". Bits are
only ever set. Nothing in the package clears an individual bit, which keeps
the flag array monotonic for the lifetime of a scan. InitV1 is the only way to
reset a region.

## Layout

	+----------------------+  32B header (magic, version, params)
	| HeaderV1             |
	+----------------------+  ceil(4^k / 8) bytes
	| rank bitset          |
	+----------------------+

Header fields (big endian):

	[0:4]   magic "KCS1"
	[4]     version (1)
	[5]     bit order (0 = LSB0)
	[6]     k
	[7]     reserved, zero
	[8:16]  rank count, 4^k
	[16:20] number of set bits
	[20:32] reserved, zero

## Bit numbering

Rank r is bit (r & 7) of byte (r >> 3), where bit 0 is the least significant
bit of a byte (LSB0).

## API versioning

As with the other formats in this module, the `V1` suffix names the region
layout the function implements. An incompatible layout gets a `V2` side by side
rather than silently changing persisted reports.

*/
