package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/forestrie/go-clumpfind/clump"
	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/forestrie/go-clumpfind/motif"
	"github.com/forestrie/go-clumpfind/seqio"
	"github.com/spf13/cobra"
)

// eachRecord calls fn for every record of file.
func eachRecord(file string, fn func(id string, record []byte) error) error {
	src, err := seqio.Open(file)
	if err != nil {
		return err
	}
	defer src.Close()

	for src.Next() {
		if err := fn(src.Identifier(), src.Record()); err != nil {
			return fmt.Errorf("%s: %s: %w", file, src.Identifier(), err)
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

func countCommand() *cobra.Command {
	var (
		pattern string
		start   int
	)

	cmd := &cobra.Command{
		Use:   "count --pattern P [--start N] FILE",
		Short: "Count the overlapping occurrences of a pattern in every record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("--pattern is required")
			}
			if start < 0 {
				return fmt.Errorf("--start must not be negative, got %d", start)
			}
			out := cmd.OutOrStdout()
			return eachRecord(args[0], func(id string, record []byte) error {
				positions := motif.PositionsFrom(record, []byte(pattern), start)
				_, err := fmt.Fprintf(out, "%s\t%d\t%s\n", id, len(positions), joinInts(positions))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to search for")
	cmd.Flags().IntVar(&start, "start", 0, "skip occurrences starting before this offset of each record")
	return cmd
}

func frequentCommand() *cobra.Command {
	var (
		k      int
		bounds string
		total  bool
	)

	cmd := &cobra.Command{
		Use:   "frequent -k K [--total] FILE",
		Short: "Report the most frequent k-mers of every record",
		Long: `Report the most frequent k-mers of every record. With --total the counts
of all records are added up and every k-mer that occurs is listed, most
frequent first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := clump.ParseBounds(bounds)
			if err != nil {
				return err
			}
			codec, err := kmer.NewCodec(kmer.DNA, k)
			if err != nil {
				return err
			}
			table, err := kmer.BuildTables(codec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if total {
				return frequentTotal(out, args[0], table, b)
			}
			return eachRecord(args[0], func(id string, record []byte) error {
				words, n, err := motif.FrequentWords(record, table, b)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\t%d\t%s\n", id, n, strings.Join(words, " "))
				return err
			})
		},
	}
	cmd.Flags().IntVarP(&k, "kmer", "k", 9, "pattern length k")
	cmd.Flags().StringVar(&bounds, "bounds", clump.BoundsInclusive.String(), "k-mer start convention, inclusive or reference")
	cmd.Flags().BoolVar(&total, "total", false, "add counts up across records and print the full table")
	return cmd
}

func frequentTotal(out io.Writer, file string, table *kmer.RankTable, bounds clump.Bounds) error {
	counts := make(clump.Counts, table.Len())
	err := eachRecord(file, func(_ string, record []byte) error {
		return clump.CountInto(counts, record, table, bounds)
	})
	if err != nil {
		return err
	}
	words, err := motif.CountTable(counts, table)
	if err != nil {
		return err
	}
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%s\t%d", w.Pattern, w.Count)
	}
	return writeLines(out, lines)
}

func revcompCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revcomp FILE",
		Short: "Print the reverse complement of every record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return eachRecord(args[0], func(id string, record []byte) error {
				rc, err := motif.ReverseComplement(record)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\t%s\n", id, rc)
				return err
			})
		},
	}
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, " ")
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
