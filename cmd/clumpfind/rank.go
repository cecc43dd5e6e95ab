package main

import (
	"fmt"
	"strconv"

	"github.com/forestrie/go-clumpfind/kmer"
	"github.com/spf13/cobra"
)

func encodeCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "encode [-k K] PATTERN...",
		Short: "Print the rank of each pattern",
		Long:  "Print the rank of each pattern. Without -k the length of each pattern is used.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := make([]string, 0, len(args))
			for _, p := range args {
				pk := k
				if pk == 0 {
					pk = len(p)
				}
				codec, err := kmer.NewCodec(kmer.DNA, pk)
				if err != nil {
					return err
				}
				r, err := codec.EncodeString(p)
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%s\t%d", p, r))
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().IntVarP(&k, "kmer", "k", 0, "pattern length k")
	return cmd
}

func decodeCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "decode -k K RANK...",
		Short: "Print the pattern of each rank",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := kmer.NewCodec(kmer.DNA, k)
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(args))
			for _, a := range args {
				v, err := strconv.ParseUint(a, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: %q", kmer.ErrInvalidRank, a)
				}
				p, err := codec.Decode(kmer.Rank(v))
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%d\t%s", v, p))
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().IntVarP(&k, "kmer", "k", 0, "pattern length k")
	_ = cmd.MarkFlagRequired("kmer")
	return cmd
}
