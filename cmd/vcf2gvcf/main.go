// Package main provides the vcf2gvcf command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	debug  bool
	logger *zap.Logger
)

// usageError marks command-line mistakes so run can exit 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if logger != nil {
		logger.Sync()
	}
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}
	return ExitError
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vcf2gvcf",
		Short: "Convert per-position VCF call streams to gVCF",
		Long: `vcf2gvcf converts single-sample, every-position VCF call streams
into genome VCF form: runs of callable reference positions collapse
into blocks carrying an END coordinate, quality-failing positions
become explicit no-calls, and variant lines pass through in order.`,
		Example: `  # Convert a per-position VCF to gVCF
  vcf2gvcf convert -g input.vcf -o output.gvcf

  # Filter without block merging, keyed by sample
  vcf2gvcf filter -i input.vcf.gz -o filtered.tsv.gz

  # Load converted records into DuckDB
  vcf2gvcf load -i output.gvcf --db calls.duckdb`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			return initLogger()
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Output debugging messages. May be very verbose.")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	root.AddCommand(newConvertCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newLoadCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.vcf2gvcf.yaml if present.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".vcf2gvcf")
	viper.SetConfigType("yaml")
	viper.ReadInConfig()
}

// initLogger builds the process logger. Diagnostics go to stderr so
// stdout stays clean for emitted records.
func initLogger() error {
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	return nil
}
