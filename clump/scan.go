package clump

import (
	"fmt"

	"github.com/forestrie/go-clumpfind/clumpset"
	"github.com/forestrie/go-clumpfind/kmer"
)

// Scan is the sliding state for one record. It is not safe for concurrent
// use.
//
//	for s.Next() {
//		// s.Counts() describes s.Window()
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Scan struct {
	d      *Detector
	record []byte
	pos    int       // left edge of the current window
	last   int       // left edge of the final window
	span   int       // k-mer starts counted per window
	tail   kmer.Rank // rank of the last k-mer counted in the current window
	counts Counts
	flags  clumpset.View
	err    error
}

// Next slides the window one position to the right. It returns false once
// the final window has been reached, or if the record holds a symbol outside
// the alphabet. Err distinguishes the two.
func (s *Scan) Next() bool {
	if s.err != nil || s.pos >= s.last {
		return false
	}
	s.pos++
	if s.span == 0 {
		// L == k under reference bounds: no window counts anything.
		return true
	}

	k := s.d.params.K
	leaving := s.pos - 1
	entering := leaving + s.span

	out, err := s.d.ranker.RankOf(s.record[leaving : leaving+k])
	if err != nil {
		s.err = fmt.Errorf("position %d: %w", leaving, err)
		return false
	}
	in, err := s.d.ranker.Roll(s.tail, s.record[entering+k-1])
	if err != nil {
		s.err = fmt.Errorf("position %d: %w", entering+k-1, err)
		return false
	}
	s.tail = in

	s.counts[out]--
	s.counts[in]++
	if s.counts[in] >= s.d.params.Threshold() {
		s.flags.Set(in)
	}
	return true
}

// Err returns the error that stopped the scan, if any.
func (s *Scan) Err() error { return s.err }

// Pos returns the left edge of the current window.
func (s *Scan) Pos() int { return s.pos }

// Window returns the current window. It aliases the record.
func (s *Scan) Window() []byte { return s.record[s.pos : s.pos+s.d.params.L] }

// Counts returns the live frequency array for the current window. It is
// owned by the scan and must not be modified.
func (s *Scan) Counts() Counts { return s.counts }

// Flagged reports whether r has formed a clump in any window so far.
func (s *Scan) Flagged(r kmer.Rank) bool { return s.flags.Has(r) }

// Distinct returns the number of distinct clumping patterns so far.
func (s *Scan) Distinct() int { return s.flags.Count() }

// Result snapshots the scan. The flag region is copied, so the result stays
// valid if the scan continues.
func (s *Scan) Result() Result {
	region := s.flags.Region()
	return Result{
		Params:   s.d.params,
		Bounds:   s.d.opts.bounds,
		Windows:  s.pos + 1,
		Distinct: s.flags.Count(),
		Flags:    append([]byte(nil), region...),
	}
}
