package clumptesting

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
}

type TestConfig struct {
	// We seed the RNG from Seed. It is normal to force it to some fixed value
	// so that the generated records are the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomRecord returns n uniformly random symbols from kmer.DNA.
func (c *TestContext) RandomRecord(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = kmer.DNA.Symbol(uint8(c.Rand.Intn(kmer.AlphabetSize)))
	}
	return out
}

// BiasedRecord returns n random symbols drawn from symbols only. Small
// alphabets make repeats, and so clumps, likely.
func (c *TestContext) BiasedRecord(n int, symbols string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = symbols[c.Rand.Intn(len(symbols))]
	}
	return out
}

// PlantedRecord returns a record of length n made of filler with pattern
// written at every multiple of every. filler must not contain pattern.
func PlantedRecord(n int, filler byte, pattern string, every int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = filler
	}
	for i := 0; i+len(pattern) <= n; i += every {
		copy(out[i:], pattern)
	}
	return out
}

// WriteFile writes content to name under a per test temporary directory and
// returns the full path.
func (c *TestContext) WriteFile(name string, content []byte) string {
	path := filepath.Join(c.T.TempDir(), name)
	require.NoError(c.T, os.WriteFile(path, content, 0o644))
	return path
}
