package clumpset

import (
	"math/bits"

	"github.com/forestrie/go-clumpfind/kmer"
)

// InitV1 initializes a region with an empty flag set for k.
//
// The caller must allocate region with at least RegionBytesV1(k) bytes.
func InitV1(region []byte, k uint8) error {
	need, err := RegionBytesV1(k)
	if err != nil {
		return err
	}
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// Ensure clean initialization even if region is reused.
	clear(region[:need])

	return EncodeHeaderV1(region, HeaderV1{
		BitOrder: BitOrderLSB0,
		K:        k,
		NSet:     0,
	})
}

// View is a decoded handle on an initialized region. It avoids re-decoding
// the header on every access, which matters inside a scan loop.
//
// A View writes through to the region it was opened on.
type View struct {
	region []byte
	bitset []byte
	k      uint8
	nRanks uint64
	nSet   uint32
}

// OpenV1 decodes the header of region and returns a View over it.
func OpenV1(region []byte) (View, error) {
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return View{}, err
	}
	if !ok {
		return View{}, ErrNotInitialized
	}
	end := uint64(HeaderBytesV1) + BitsetBytesV1(h.K)
	if uint64(len(region)) < end {
		return View{}, ErrBadRegionSize
	}
	return View{
		region: region,
		bitset: region[HeaderBytesV1:end],
		k:      h.K,
		nRanks: kmer.RankCount(int(h.K)),
		nSet:   h.NSet,
	}, nil
}

// K returns the pattern length the set was sized for.
func (v *View) K() uint8 { return v.k }

// Count returns the number of set ranks.
func (v *View) Count() int { return int(v.nSet) }

// Region returns the underlying region.
func (v *View) Region() []byte { return v.region }

// Has reports whether r is set. Out of range ranks are never set.
func (v *View) Has(r kmer.Rank) bool {
	if uint64(r) >= v.nRanks {
		return false
	}
	return v.bitset[r>>3]&(1<<uint8(r&7)) != 0
}

// Set sets r and reports whether it was newly set.
//
// The caller is responsible for r < 4^k. Use SetV1 for a checked variant.
func (v *View) Set(r kmer.Rank) bool {
	byteIdx := r >> 3
	bit := uint8(r & 7)
	if v.bitset[byteIdx]&(1<<bit) != 0 {
		return false
	}
	v.bitset[byteIdx] |= 1 << bit
	v.nSet++
	writeU32BE(v.region[16:20], v.nSet)
	return true
}

// Ranks returns the set ranks in ascending order.
func (v *View) Ranks() []kmer.Rank {
	out := make([]kmer.Rank, 0, v.nSet)
	for i, b := range v.bitset {
		for b != 0 {
			j := bits.TrailingZeros8(b)
			out = append(out, kmer.Rank(uint64(i)<<3|uint64(j)))
			b &= b - 1
		}
	}
	return out
}

// SetV1 sets rank r in region and reports whether it was newly set.
func SetV1(region []byte, r kmer.Rank) (bool, error) {
	v, err := OpenV1(region)
	if err != nil {
		return false, err
	}
	if uint64(r) >= v.nRanks {
		return false, ErrRankRange
	}
	return v.Set(r), nil
}

// IsSetV1 reports whether rank r is set in region.
func IsSetV1(region []byte, r kmer.Rank) (bool, error) {
	v, err := OpenV1(region)
	if err != nil {
		return false, err
	}
	if uint64(r) >= v.nRanks {
		return false, ErrRankRange
	}
	return v.Has(r), nil
}

// RanksV1 returns the set ranks of region in ascending order.
func RanksV1(region []byte) ([]kmer.Rank, error) {
	v, err := OpenV1(region)
	if err != nil {
		return nil, err
	}
	return v.Ranks(), nil
}

// UnionV1 sets in dst every rank that is set in src. Both regions must be
// initialized for the same k.
func UnionV1(dst, src []byte) error {
	d, err := OpenV1(dst)
	if err != nil {
		return err
	}
	s, err := OpenV1(src)
	if err != nil {
		return err
	}
	if d.k != s.k {
		return ErrKMismatch
	}

	var n uint32
	for i := range d.bitset {
		d.bitset[i] |= s.bitset[i]
		n += uint32(bits.OnesCount8(d.bitset[i]))
	}
	writeU32BE(dst[16:20], n)
	return nil
}
