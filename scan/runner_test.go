package scan

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-clumpfind/clump"
	"github.com/forestrie/go-clumpfind/clumpset"
	"github.com/forestrie/go-clumpfind/clumptesting"
	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/forestrie/go-clumpfind/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(k, l, t int) Config {
	cfg := DefaultConfig()
	cfg.K, cfg.L, cfg.T = k, l, t
	cfg.Workers = 1
	return cfg
}

func lines(records ...string) seqio.Reader {
	return seqio.NewLineReader(strings.NewReader(strings.Join(records, "\n")))
}

func TestRunConcreteScenario(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunConcreteScenario"})

	r, err := NewRunner(tc.GetLog(), testConfig(2, 10, 4))
	require.NoError(t, err)

	report, err := r.Run(context.Background(), lines("AAAACCCCAAAACCCCCAAAACCCCC"))
	require.NoError(t, err)

	require.NotEmpty(t, report.RunID)
	assert.Equal(t, "inclusive", report.Bounds)
	require.Len(t, report.Records, 1)
	assert.Equal(t, RecordReport{
		Index: 0, ID: "line:1", Length: 26,
		Windows: 17, Distinct: 2, Patterns: []string{"AA", "CC"},
	}, report.Records[0])
	assert.Equal(t, []string{"AA", "CC"}, report.Clumps)

	ranks, err := clumpset.RanksV1(report.Flags)
	require.NoError(t, err)
	assert.Equal(t, []kmer.Rank{0, 5}, ranks)
}

func TestRunUnionAcrossRecords(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunUnionAcrossRecords"})

	r, err := NewRunner(tc.GetLog(), testConfig(3, 12, 3))
	require.NoError(t, err)

	report, err := r.Run(context.Background(), lines(
		string(clumptesting.PlantedRecord(60, 'T', "ACG", 4)),
		string(clumptesting.PlantedRecord(60, 'A', "GGC", 4)),
		"ACGTTGCAATCG",
	))
	require.NoError(t, err)
	require.Len(t, report.Records, 3)

	assert.Contains(t, report.Records[0].Patterns, "ACG")
	assert.Contains(t, report.Records[1].Patterns, "GGC")
	assert.Empty(t, report.Records[2].Patterns)

	want := map[string]bool{}
	for _, rec := range report.Records {
		for _, p := range rec.Patterns {
			want[p] = true
		}
	}
	require.Len(t, report.Clumps, len(want))
	for _, p := range report.Clumps {
		assert.True(t, want[p], p)
	}
}

func TestRunWorkersKeepInputOrder(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{
		Seed: 11, TestLabelPrefix: "TestRunWorkersKeepInputOrder"})

	var records []string
	for i := 0; i < 24; i++ {
		records = append(records, string(tc.BiasedRecord(100+i*7, "ACG")))
	}

	cfg := testConfig(3, 30, 3)
	serial, err := NewRunner(tc.GetLog(), cfg)
	require.NoError(t, err)
	want, err := serial.Run(context.Background(), lines(records...))
	require.NoError(t, err)

	cfg.Workers = 6
	var mu sync.Mutex
	seen := map[int]bool{}
	parallel, err := NewRunner(tc.GetLog(), cfg, WithProgress(func(rec RecordReport) {
		mu.Lock()
		defer mu.Unlock()
		seen[rec.Index] = true
	}))
	require.NoError(t, err)
	got, err := parallel.Run(context.Background(), lines(records...))
	require.NoError(t, err)

	require.Len(t, got.Records, len(records))
	for i, rec := range got.Records {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, want.Records[i], rec)

		res, err := parallel.Detector().Detect([]byte(records[i]))
		require.NoError(t, err)
		patterns, err := res.Patterns(parallel.Table())
		require.NoError(t, err)
		assert.Equal(t, patterns, rec.Patterns)
	}
	assert.Equal(t, want.Clumps, got.Clumps)
	assert.Equal(t, want.Flags, got.Flags)
	assert.Len(t, seen, len(records))
}

func TestRunSkipInvalid(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunSkipInvalid"})

	cfg := testConfig(2, 10, 4)
	cfg.SkipInvalid = true
	r, err := NewRunner(tc.GetLog(), cfg)
	require.NoError(t, err)

	report, err := r.Run(context.Background(), lines(
		"AAAACCCCNAAAACCCCC",
		"AAAACCCCAAAACCCCCAAAACCCCC",
		"ACGT",
	))
	require.NoError(t, err)
	require.Len(t, report.Records, 3)
	assert.Equal(t, 2, report.Skipped)

	assert.True(t, report.Records[0].Skipped)
	assert.Contains(t, report.Records[0].Reason, "symbol not in alphabet")
	assert.False(t, report.Records[1].Skipped)
	assert.True(t, report.Records[2].Skipped)
	assert.Contains(t, report.Records[2].Reason, "window")

	assert.Equal(t, []string{"AA", "CC"}, report.Clumps)
}

func TestRunAbortsOnInvalidRecord(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunAbortsOnInvalidRecord"})

	r, err := NewRunner(tc.GetLog(), testConfig(2, 10, 4))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), lines(
		"AAAACCCCAAAACCCCCAAAACCCCC",
		"AAAACCCCNAAAACCCCC",
	))
	require.ErrorIs(t, err, kmer.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "record 1 (line:2)")

	_, err = r.Run(context.Background(), lines("ACGT"))
	require.ErrorIs(t, err, clump.ErrInvalidWindow)
}

func TestRunFoldCase(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunFoldCase"})

	cfg := testConfig(2, 10, 4)
	_, err := mustRunner(t, tc.GetLog(), cfg).Run(context.Background(), lines("aaaaccccaaaacccccaaaaccccc"))
	require.ErrorIs(t, err, kmer.ErrInvalidSymbol)

	cfg.FoldCase = true
	report, err := mustRunner(t, tc.GetLog(), cfg).Run(context.Background(), lines("aaaaccccaaaacccccaaaaccccc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "CC"}, report.Clumps)
}

func TestRunNoRecords(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunNoRecords"})

	r := mustRunner(t, tc.GetLog(), testConfig(2, 10, 4))
	_, err := r.Run(context.Background(), lines("", "  "))
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestRunCanceled(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunCanceled"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := mustRunner(t, tc.GetLog(), testConfig(2, 10, 4))
	_, err := r.Run(ctx, lines("AAAACCCCAAAACCCCCAAAACCCCC"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunFasta(t *testing.T) {
	tc := clumptesting.NewTestContext(t, clumptesting.TestConfig{TestLabelPrefix: "TestRunFasta"})

	var buf bytes.Buffer
	buf.WriteString(">chr1 test\nAAAACCCCAAAAC\nCCCCAAAACCCCC\n>chr2\nACGTACGTACGTACGT\n")

	r := mustRunner(t, tc.GetLog(), testConfig(2, 10, 4))
	report, err := r.Run(context.Background(), seqio.NewFastaReader(&buf))
	require.NoError(t, err)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "chr1 test", report.Records[0].ID)
	assert.Equal(t, []string{"AA", "CC"}, report.Records[0].Patterns)
	assert.Equal(t, "chr2", report.Records[1].ID)
}

func mustRunner(t *testing.T, log logger.Logger, cfg Config, opts ...Option) *Runner {
	t.Helper()
	r, err := NewRunner(log, cfg, opts...)
	require.NoError(t, err)
	return r
}
