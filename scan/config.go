package scan

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/forestrie/go-clumpfind/clump"
	"github.com/spf13/pflag"
)

var (
	ErrInvalidWorkers = errors.New("scan: workers must be at least 1")
	ErrNoRecords      = errors.New("scan: input holds no records")
)

// Config is the run configuration. The zero value is not usable, start from
// DefaultConfig.
type Config struct {
	K int
	L int
	T int

	Bounds clump.Bounds

	// Workers bounds the number of records scanned concurrently.
	Workers int

	// SkipInvalid reports records with symbols outside the alphabet, or
	// shorter than the window, as skipped instead of failing the run.
	SkipInvalid bool

	// FoldCase accepts lowercase nucleotides.
	FoldCase bool
}

func DefaultConfig() Config {
	return Config{
		K:       9,
		L:       500,
		T:       3,
		Bounds:  clump.BoundsInclusive,
		Workers: runtime.NumCPU(),
	}
}

func (c Config) Params() clump.Params {
	return clump.Params{K: c.K, L: c.L, T: c.T}
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	return c.Params().Validate()
}

// BindFlags registers the fields of cfg on fs. The current values of cfg are
// used as the flag defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.K, "kmer", "k", cfg.K, "pattern length k")
	fs.IntVarP(&cfg.L, "window", "L", cfg.L, "window length L")
	fs.IntVarP(&cfg.T, "threshold", "t", cfg.T, "occurrences inside one window that make a clump")
	fs.Var((*boundsValue)(&cfg.Bounds), "bounds", "k-mer start convention, inclusive or reference")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "records scanned concurrently")
	fs.BoolVar(&cfg.SkipInvalid, "skip-invalid", cfg.SkipInvalid, "skip records with bad symbols or shorter than the window")
	fs.BoolVar(&cfg.FoldCase, "fold-case", cfg.FoldCase, "accept lowercase nucleotides")
}

type boundsValue clump.Bounds

func (b *boundsValue) String() string { return clump.Bounds(*b).String() }
func (b *boundsValue) Type() string   { return "bounds" }

func (b *boundsValue) Set(s string) error {
	v, err := clump.ParseBounds(s)
	if err != nil {
		return err
	}
	*b = boundsValue(v)
	return nil
}
