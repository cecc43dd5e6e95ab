package motif

import (
	"testing"

	"github.com/forestrie/go-clumpfind/clump"
	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/stretchr/testify/require"
)

func TestPositions(t *testing.T) {
	type args struct {
		text, pattern string
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"overlapping", args{"GATATATGCATATACTT", "ATAT"}, []int{1, 3, 9}},
		{"at end", args{"CCGTT", "TT"}, []int{3}},
		{"absent", args{"CCGTT", "A"}, nil},
		{"longer than text", args{"CC", "CCC"}, nil},
		{"empty pattern", args{"CC", ""}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Positions([]byte(tt.args.text), []byte(tt.args.pattern))
			require.Equal(t, tt.want, got)
			require.Equal(t, len(tt.want), Count([]byte(tt.args.text), []byte(tt.args.pattern)))
		})
	}
}

func TestReverseComplement(t *testing.T) {
	got, err := ReverseComplement([]byte("AAAACCCGGT"))
	require.NoError(t, err)
	require.Equal(t, "ACCGGGTTTT", string(got))

	got, err = ReverseComplement([]byte("acGT"))
	require.NoError(t, err)
	require.Equal(t, "ACgt", string(got))

	again, err := ReverseComplement(got)
	require.NoError(t, err)
	require.Equal(t, "acGT", string(again))

	_, err = ReverseComplement([]byte("ACNT"))
	require.ErrorIs(t, err, kmer.ErrInvalidSymbol)
}

func TestFrequentWords(t *testing.T) {
	c, err := kmer.NewCodec(kmer.DNA, 4)
	require.NoError(t, err)
	table, err := kmer.BuildTables(c)
	require.NoError(t, err)

	words, n, err := FrequentWords([]byte("ACGTTGCATGTCGCATGATGCATGAGAGCT"), table, clump.BoundsInclusive)
	require.NoError(t, err)
	require.Equal(t, uint32(3), n)
	require.Equal(t, []string{"CATG", "GCAT"}, words)

	words, n, err = FrequentWords([]byte("ACG"), table, clump.BoundsInclusive)
	require.NoError(t, err)
	require.Nil(t, words)
	require.Zero(t, n)

	_, _, err = FrequentWords([]byte("ACGTN"), table, clump.BoundsInclusive)
	require.ErrorIs(t, err, kmer.ErrInvalidSymbol)
}

func TestPositionsFrom(t *testing.T) {
	text := []byte("GATATATGCATATACTT")
	tests := []struct {
		name  string
		start int
		want  []int
	}{
		{"from zero", 0, []int{1, 3, 9}},
		{"negative is zero", -4, []int{1, 3, 9}},
		{"on a match", 3, []int{3, 9}},
		{"past the overlap", 4, []int{9}},
		{"past the last match", 10, nil},
		{"past the end", 40, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PositionsFrom(text, []byte("ATAT"), tt.start))
		})
	}
}

func TestCountTable(t *testing.T) {
	c, err := kmer.NewCodec(kmer.DNA, 2)
	require.NoError(t, err)
	table, err := kmer.BuildTables(c)
	require.NoError(t, err)

	counts := make(clump.Counts, table.Len())
	for _, record := range []string{"AACGT", "CGCGA"} {
		require.NoError(t, clump.CountInto(counts, []byte(record), table, clump.BoundsInclusive))
	}

	got, err := CountTable(counts, table)
	require.NoError(t, err)
	require.Equal(t, []WordCount{
		{"CG", 3},
		{"AA", 1},
		{"AC", 1},
		{"GA", 1},
		{"GC", 1},
		{"GT", 1},
	}, got)

	_, err = CountTable(counts[:4], table)
	require.ErrorIs(t, err, clump.ErrCountsSize)
}
