package clump

import (
	"fmt"

	"github.com/forestrie/go-clumpfind/clumpset"
	"github.com/forestrie/go-clumpfind/kmer"
)

// Detector finds clumps in individual records. It holds no per-record state
// and is safe for concurrent use if its Ranker is.
type Detector struct {
	ranker kmer.Ranker
	params Params
	opts   Options
}

// NewDetector returns a detector for p. r is typically a *kmer.RankTable built
// for p.K.
func NewDetector(r kmer.Ranker, p Params, opts ...Option) (*Detector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r.K() != p.K {
		return nil, fmt.Errorf("%w: ranker k=%d, params k=%d", kmer.ErrInvalidK, r.K(), p.K)
	}

	d := &Detector{ranker: r, params: p}
	for _, o := range opts {
		o(&d.opts)
	}
	if d.opts.bounds > BoundsReference {
		return nil, fmt.Errorf("clump: unsupported %v", d.opts.bounds)
	}
	return d, nil
}

func (d *Detector) Params() Params { return d.params }
func (d *Detector) Bounds() Bounds { return d.opts.bounds }

// Start seeds a scan of record: the first window, record[0:L], is counted
// from scratch and every rank already at the threshold is flagged.
//
// A record shorter than L cannot be seeded and is rejected with
// ErrInvalidWindow.
func (d *Detector) Start(record []byte) (*Scan, error) {
	k, l := d.params.K, d.params.L
	if len(record) < l {
		return nil, fmt.Errorf("%w: record length %d is shorter than L=%d", ErrInvalidWindow, len(record), l)
	}

	counts, err := CountWindow(record[:l], d.ranker, d.opts.bounds)
	if err != nil {
		return nil, err
	}

	region, err := clumpset.NewV1(uint8(k))
	if err != nil {
		return nil, err
	}
	flags, err := clumpset.OpenV1(region)
	if err != nil {
		return nil, err
	}

	t := d.params.Threshold()
	for rank, c := range counts {
		if c >= t {
			flags.Set(kmer.Rank(rank))
		}
	}

	var tail kmer.Rank
	span := d.opts.bounds.Starts(l, k)
	if span > 0 {
		tail, err = d.ranker.RankOf(record[span-1 : span-1+k])
		if err != nil {
			return nil, err
		}
	}

	s := &Scan{
		d:      d,
		record: record,
		last:   len(record) - l,
		span:   span,
		tail:   tail,
		counts: counts,
		flags:  flags,
	}
	return s, nil
}

// Detect scans record from its first to its last window.
func (d *Detector) Detect(record []byte) (Result, error) {
	s, err := d.Start(record)
	if err != nil {
		return Result{}, err
	}
	for s.Next() {
	}
	if err := s.Err(); err != nil {
		return Result{}, err
	}
	return s.Result(), nil
}
