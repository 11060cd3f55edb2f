package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genomelab/vcf2gvcf/internal/gvcfdb"
	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

type loadOptions struct {
	input  string
	db     string
	sample string
	keyed  bool
}

func newLoadCmd() *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load emitted gVCF records into DuckDB",
		Long: `Load converted gVCF output (plain or keyed) into a DuckDB database
for region queries. Each record is stored with its covered interval:
END for block records, the REF span otherwise. The sample is taken
from --sample, the per-line key of keyed input, or the #CHROM header,
in that order.`,
		Example: `  vcf2gvcf load -i output.gvcf --db calls.duckdb
  vcf2gvcf load -i filtered.tsv.gz --db calls.duckdb --keyed
  vcf2gvcf load -i output.gvcf --db calls.duckdb --sample LP2000100-DNA_A01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" {
				return &usageError{errors.New("input file is required (-i)")}
			}
			if opts.db == "" {
				return &usageError{errors.New("database path is required (--db)")}
			}
			return runLoad(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input gVCF or keyed TSV file ('-' for stdin)")
	cmd.Flags().StringVar(&opts.db, "db", "", "DuckDB database path")
	cmd.Flags().StringVar(&opts.sample, "sample", "", "Sample ID to attribute records to")
	cmd.Flags().BoolVar(&opts.keyed, "keyed", false, "Input lines carry a leading sample-key column")

	return cmd
}

func runLoad(ctx context.Context, opts loadOptions) error {
	parser, err := vcf.NewParser(opts.input)
	if err != nil {
		return err
	}
	defer parser.Close()
	parser.SetKeyed(opts.keyed)

	store, err := gvcfdb.Open(opts.db)
	if err != nil {
		return err
	}
	defer store.Close()

	var fp gvcfdb.FileFingerprint
	haveFingerprint := false
	if opts.input != "-" {
		fp, err = gvcfdb.StatFile(opts.input)
		if err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
		haveFingerprint = true

		loaded, err := store.AlreadyLoaded(fp)
		if err != nil {
			return err
		}
		if loaded {
			logger.Info("input file already loaded, skipping",
				zap.String("path", opts.input))
			return nil
		}
	}

	loaders := make(map[string]*gvcfdb.Loader)
	complete := false
	for {
		if ctx.Err() != nil {
			logger.Warn("load interrupted", zap.Error(ctx.Err()))
			break
		}

		r, err := parser.Next()
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		if r == nil {
			complete = true
			break
		}

		sample := opts.sample
		if sample == "" && opts.keyed {
			sample = parser.LastKey()
		}
		if sample == "" {
			sample = parser.SampleName()
		}
		if sample == "" {
			return errors.New("cannot determine sample: use --sample, keyed input, or a #CHROM header")
		}

		loader, ok := loaders[sample]
		if !ok {
			loader = gvcfdb.NewLoader(store, sample)
			loaders[sample] = loader
		}
		if err := loader.WriteRecord(r); err != nil {
			return err
		}
	}

	// Only a load that reached end of stream is flushed and recorded;
	// an interrupted run leaves no history row, so a rerun reloads the
	// file from the start.
	if !complete {
		return ctx.Err()
	}

	total := 0
	for sample, loader := range loaders {
		if err := loader.Flush(); err != nil {
			return err
		}
		total += loader.Total()
		if haveFingerprint {
			if err := store.RecordLoad(sample, fp, loader.Total()); err != nil {
				return err
			}
		}
	}

	logger.Info("load complete",
		zap.Int("records", total),
		zap.Int("samples", len(loaders)),
		zap.String("db", opts.db))

	return nil
}
