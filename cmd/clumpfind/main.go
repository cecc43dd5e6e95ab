// Command clumpfind finds k-mer clumps in DNA records and carries a few
// related sequence tools.
package main

import (
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

const serviceName = "clumpfind"

func rootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "clumpfind",
		Short: "Find k-mer clumps in DNA sequences",
		Long: `clumpfind reports the k-mers that occur at least t times inside some
window of length L of a record. Input is either FASTA or one record per
line, optionally gzip compressed.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(logLevel)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level: DEBUG, INFO or NOOP")

	cmd.AddCommand(findCommand())
	cmd.AddCommand(countCommand())
	cmd.AddCommand(frequentCommand())
	cmd.AddCommand(revcompCommand())
	cmd.AddCommand(encodeCommand())
	cmd.AddCommand(decodeCommand())
	return cmd
}

func main() {
	defer logger.OnExit()
	if err := rootCommand().Execute(); err != nil {
		logger.OnExit()
		os.Exit(1)
	}
}
