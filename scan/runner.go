// Package scan runs clump detection over every record of a sequence source
// and collects the per record results into a Report.
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-clumpfind/clump"
	"github.com/forestrie/go-clumpfind/clumpset"
	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/forestrie/go-clumpfind/seqio"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner holds the rank tables and detector for one configuration. The
// tables are built once and shared, read only, by all workers.
type Runner struct {
	log   logger.Logger
	cfg   Config
	opts  Options
	table *kmer.RankTable
	det   *clump.Detector
}

func NewRunner(log logger.Logger, cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{log: log, cfg: cfg}
	for _, opt := range opts {
		opt(&r.opts)
	}

	alpha := kmer.DNA
	if cfg.FoldCase {
		alpha = alpha.FoldCase()
	}
	codec, err := kmer.NewCodec(alpha, cfg.K)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	r.table, err = kmer.BuildTables(codec)
	if err != nil {
		return nil, err
	}
	log.Infof("rank tables: k=%d ranks=%d built in %v", cfg.K, r.table.Len(), time.Since(start))

	r.det, err = clump.NewDetector(r.table, cfg.Params(), clump.WithBounds(cfg.Bounds))
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runner) Config() Config            { return r.cfg }
func (r *Runner) Table() *kmer.RankTable    { return r.table }
func (r *Runner) Detector() *clump.Detector { return r.det }

// Run scans every record from src. Records are scanned concurrently, up to
// Config.Workers at a time, and reported in input order. The first failing
// record cancels the remaining work unless SkipInvalid covers the failure.
func (r *Runner) Run(ctx context.Context, src seqio.Reader) (*Report, error) {
	start := time.Now()

	report := &Report{
		RunID:  uuid.NewString(),
		K:      r.cfg.K,
		L:      r.cfg.L,
		T:      r.cfg.T,
		Bounds: r.det.Bounds().String(),
	}
	union, err := clumpset.NewV1(uint8(r.cfg.K))
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	var records []*RecordReport
	for gctx.Err() == nil && src.Next() {
		rec := &RecordReport{
			Index:  len(records),
			ID:     src.Identifier(),
			Length: len(src.Record()),
		}
		seq := src.Record()
		records = append(records, rec)
		g.Go(func() error {
			return r.detect(gctx, rec, seq)
		})
	}
	readErr := src.Err()

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, readErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	report.Records = make([]RecordReport, 0, len(records))
	for _, rec := range records {
		if rec.Skipped {
			report.Skipped++
		} else if err := clumpset.UnionV1(union, rec.flags); err != nil {
			return nil, err
		}
		rec.flags = nil
		report.Records = append(report.Records, *rec)
	}

	ranks, err := clumpset.RanksV1(union)
	if err != nil {
		return nil, err
	}
	report.Clumps = make([]string, 0, len(ranks))
	for _, rank := range ranks {
		p, err := r.table.Pattern(rank)
		if err != nil {
			return nil, err
		}
		report.Clumps = append(report.Clumps, p)
	}
	report.Flags = union
	report.ElapsedMS = time.Since(start).Milliseconds()

	r.log.Infof(
		"run %s: records=%d skipped=%d clumps=%d %s in %v",
		report.RunID, len(report.Records), report.Skipped, len(report.Clumps),
		r.cfg.Params(), time.Since(start))
	return report, nil
}

func (r *Runner) detect(ctx context.Context, rec *RecordReport, seq []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := r.det.Detect(seq)
	if err != nil {
		if !r.cfg.SkipInvalid || !skippable(err) {
			return fmt.Errorf("record %d (%s): %w", rec.Index, rec.ID, err)
		}
		r.log.Infof("skipping record %d (%s): %v", rec.Index, rec.ID, err)
		rec.Skipped = true
		rec.Reason = err.Error()
		r.progress(rec)
		return nil
	}

	rec.Windows = res.Windows
	rec.Distinct = res.Distinct
	rec.Patterns, err = res.Patterns(r.table)
	if err != nil {
		return fmt.Errorf("record %d (%s): %w", rec.Index, rec.ID, err)
	}
	rec.flags = res.Flags

	r.log.Debugf("record %d (%s): length=%d windows=%d clumps=%d",
		rec.Index, rec.ID, rec.Length, rec.Windows, rec.Distinct)
	r.progress(rec)
	return nil
}

func (r *Runner) progress(rec *RecordReport) {
	if r.opts.progress == nil {
		return
	}
	out := *rec
	out.flags = nil
	r.opts.progress(out)
}

func skippable(err error) bool {
	return errors.Is(err, kmer.ErrInvalidSymbol) || errors.Is(err, clump.ErrInvalidWindow)
}
