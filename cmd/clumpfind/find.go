package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-clumpfind/scan"
	"github.com/forestrie/go-clumpfind/seqio"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatCBOR = "cbor"
)

func findCommand() *cobra.Command {
	var (
		format   string
		output   string
		progress bool
	)
	cfg := scan.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "find [flags] FILE...",
		Short: "Report the (L, t)-clumps of every record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatCBOR {
				return fmt.Errorf("unknown format %q, want %s or %s", format, formatText, formatCBOR)
			}
			out, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer closeOut()
			return runFind(cmd.Context(), out, cfg, format, progress, args)
		},
	}
	scan.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or cbor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar over records")
	return cmd
}

func runFind(ctx context.Context, out io.Writer, cfg scan.Config, format string, progress bool, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.Sugar.WithServiceName(serviceName)

	var bar *pb.ProgressBar
	var opts []scan.Option
	if progress {
		total, err := countRecords(files)
		if err != nil {
			return err
		}
		bar = pb.Full.Start64(total)
		bar.Set(pb.Bytes, false)
		defer bar.Finish()
		opts = append(opts, scan.WithProgress(func(scan.RecordReport) {
			bar.Increment()
		}))
	}

	runner, err := scan.NewRunner(log, cfg, opts...)
	if err != nil {
		return err
	}
	codec, err := scan.NewReportCodec()
	if err != nil {
		return err
	}

	for _, file := range files {
		report, err := findFile(ctx, runner, file)
		if err != nil {
			return err
		}
		switch format {
		case formatCBOR:
			data, err := scan.EncodeReport(codec, report)
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
		default:
			if err := renderReport(out, file, report); err != nil {
				return err
			}
		}
	}
	return nil
}

func findFile(ctx context.Context, runner *scan.Runner, file string) (*scan.Report, error) {
	src, err := seqio.Open(file)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	report, err := runner.Run(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return report, nil
}

// countRecords makes a first pass over files so the progress bar has a total.
func countRecords(files []string) (int64, error) {
	var n int64
	for _, file := range files {
		src, err := seqio.Open(file)
		if err != nil {
			return 0, err
		}
		for src.Next() {
			n++
		}
		err = src.Err()
		src.Close()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", file, err)
		}
	}
	return n, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
