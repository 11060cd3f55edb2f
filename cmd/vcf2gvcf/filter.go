package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/genomelab/vcf2gvcf/internal/gvcf"
	"github.com/genomelab/vcf2gvcf/internal/sampleid"
	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

type filterOptions struct {
	input         string
	output        string
	maxMQ0        float64
	minMQ         float64
	minQual       float64
	threads       int
	writeHeader   bool
	samplePattern string
}

func newFilterCmd() *cobra.Command {
	var opts filterOptions
	defaults := gvcf.DefaultSiteQuality()

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Rewrite quality-failing calls to no-calls, one line per position",
		Long: `Filter a per-position VCF stream without block merging: reference
calls failing the site-quality rule (MQ0, MQ, QUAL) and variants whose
FILTER column is not PASS are rewritten to explicit no-call lines.
Every input position produces exactly one output line, in input order.

Output lines are prefixed with the sample ID resolved from the input
path, for downstream grouping. Input header lines are dropped;
--write-header emits the canonical dataset header instead.`,
		Example: `  vcf2gvcf filter -i /data/LP2000100-DNA_A01/chr20.vcf.gz -o filtered.tsv.gz
  vcf2gvcf filter -i input.vcf -o filtered.tsv --threads 8
  vcf2gvcf filter -i input.vcf -o out.vcf --write-header`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" {
				return &usageError{errors.New("input file is required (-i)")}
			}
			if opts.output == "" {
				return &usageError{errors.New("output file is required (-o)")}
			}
			if !cmd.Flags().Changed("sample-pattern") && viper.IsSet("sample.pattern") {
				opts.samplePattern = viper.GetString("sample.pattern")
			}
			return runFilter(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input VCF file ('-' for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file ('-' for stdout, '.gz' compresses)")
	cmd.Flags().Float64Var(&opts.maxMQ0, "max-mq0", defaults.MaxMQ0, "Fail reference calls whose MQ0 reaches this value")
	cmd.Flags().Float64Var(&opts.minMQ, "min-mq", defaults.MinMQ, "Fail reference calls whose MQ is below this value")
	cmd.Flags().Float64Var(&opts.minQual, "min-qual", defaults.MinQual, "Fail reference calls whose QUAL is below this value")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", 0, "Worker count (default: all CPUs)")
	cmd.Flags().BoolVar(&opts.writeHeader, "write-header", false, "Emit the canonical dataset header before records")
	cmd.Flags().StringVar(&opts.samplePattern, "sample-pattern", "", "Regexp extracting the sample ID from the input path")

	return cmd
}

func runFilter(ctx context.Context, opts filterOptions) error {
	parser, err := vcf.NewParser(opts.input)
	if err != nil {
		return err
	}
	defer parser.Close()

	resolver, err := sampleid.NewResolver(opts.samplePattern)
	if err != nil {
		return err
	}
	sample, ok := resolver.Resolve(opts.input)
	if !ok {
		// Fall back to the #CHROM header; a missing identity is not
		// fatal, the output is just unkeyed.
		sample = parser.SampleName()
		if sample == "" {
			logger.Warn("no sample id in input path or header, emitting unkeyed lines",
				zap.String("path", opts.input))
		}
	}

	writer, err := vcf.NewFileWriter(opts.output, vcf.DatasetHeaderLines(sample))
	if err != nil {
		return err
	}
	writer.SetKey(sample)
	if opts.writeHeader {
		if err := writer.WriteHeader(); err != nil {
			writer.Close()
			return fmt.Errorf("write header: %w", err)
		}
	}

	quality := gvcf.SiteQuality{MaxMQ0: opts.maxMQ0, MinMQ: opts.minMQ, MinQual: opts.minQual}
	filter := gvcf.NewSiteFilter(quality)
	filter.SetLogger(logger)

	if err := filter.Run(ctx, parser, writer, opts.threads); err != nil {
		writer.Close()
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
