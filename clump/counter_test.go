package clump

import (
	"testing"

	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, k int) *kmer.RankTable {
	t.Helper()
	c, err := kmer.NewCodec(kmer.DNA, k)
	require.NoError(t, err)
	table, err := kmer.BuildTables(c)
	require.NoError(t, err)
	return table
}

func TestBoundsStarts(t *testing.T) {
	type args struct {
		bounds Bounds
		n, k   int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"inclusive 10,3", args{BoundsInclusive, 10, 3}, 8},
		{"reference 10,3", args{BoundsReference, 10, 3}, 7},
		{"inclusive n==k", args{BoundsInclusive, 3, 3}, 1},
		{"reference n==k", args{BoundsReference, 3, 3}, 0},
		{"inclusive n<k", args{BoundsInclusive, 2, 3}, 0},
		{"reference n<k", args{BoundsReference, 1, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.args.bounds.Starts(tt.args.n, tt.args.k))
		})
	}
}

func TestParseBounds(t *testing.T) {
	for _, b := range []Bounds{BoundsInclusive, BoundsReference} {
		got, err := ParseBounds(b.String())
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
	_, err := ParseBounds("exclusive")
	require.Error(t, err)
}

func TestCountWindow(t *testing.T) {
	table := mustTable(t, 2)
	rank := func(p string) kmer.Rank {
		r, err := table.RankString(p)
		require.NoError(t, err)
		return r
	}

	counts, err := CountWindow([]byte("AAAACA"), table, BoundsInclusive)
	require.NoError(t, err)
	require.Len(t, counts, 16)
	require.Equal(t, uint32(3), counts[rank("AA")])
	require.Equal(t, uint32(1), counts[rank("AC")])
	require.Equal(t, uint32(1), counts[rank("CA")])
	var total uint32
	for _, c := range counts {
		total += c
	}
	require.Equal(t, uint32(5), total)

	// The reference convention drops the final start, here "CA".
	counts, err = CountWindow([]byte("AAAACA"), table, BoundsReference)
	require.NoError(t, err)
	require.Equal(t, uint32(3), counts[rank("AA")])
	require.Equal(t, uint32(1), counts[rank("AC")])
	require.Equal(t, uint32(0), counts[rank("CA")])

	// Text shorter than k has no k-mers.
	counts, err = CountWindow([]byte("A"), table, BoundsInclusive)
	require.NoError(t, err)
	for _, c := range counts {
		require.Zero(t, c)
	}
}

func TestCountWindowCodecAgreesWithTable(t *testing.T) {
	table := mustTable(t, 3)
	text := []byte("GATTACAGATTACACCGGTT")

	byTable, err := CountWindow(text, table, BoundsInclusive)
	require.NoError(t, err)
	byCodec, err := CountWindow(text, table.Codec(), BoundsInclusive)
	require.NoError(t, err)
	require.Equal(t, byTable, byCodec)
}

func TestCountWindowRejects(t *testing.T) {
	table := mustTable(t, 2)

	_, err := CountWindow([]byte("ACGNA"), table, BoundsInclusive)
	require.ErrorIs(t, err, kmer.ErrInvalidSymbol)
	require.ErrorContains(t, err, "position 2")

	err = CountInto(make(Counts, 15), []byte("ACGT"), table, BoundsInclusive)
	require.ErrorIs(t, err, ErrCountsSize)

	big, err := kmer.NewCodec(kmer.DNA, kmer.MaxTableK+1)
	require.NoError(t, err)
	_, err = CountWindow([]byte("ACGT"), big, BoundsInclusive)
	require.ErrorIs(t, err, kmer.ErrInvalidK)
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"ok", Params{K: 3, L: 10, T: 2}, nil},
		{"L == k", Params{K: 3, L: 3, T: 1}, nil},
		{"k zero", Params{K: 0, L: 10, T: 2}, kmer.ErrInvalidK},
		{"k too large", Params{K: kmer.MaxTableK + 1, L: 100, T: 2}, kmer.ErrInvalidK},
		{"L < k", Params{K: 5, L: 4, T: 2}, ErrInvalidWindow},
		{"t zero", Params{K: 3, L: 10, T: 0}, ErrInvalidThreshold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
