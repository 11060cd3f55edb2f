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

type convertOptions struct {
	input         string
	output        string
	minGQ         int
	minDP         int
	keyed         bool
	samplePattern string
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Merge reference-matching positions into gVCF blocks",
		Long: `Convert a per-position, single-sample VCF stream into gVCF.
Consecutive callable reference positions collapse into one block record
carrying END=<last position>; reference positions failing the GQ/DP
thresholds become explicit no-call blocks; variant lines pass through
unchanged, in input order.`,
		Example: `  vcf2gvcf convert -g input.vcf -o output.gvcf
  vcf2gvcf convert -g input.vcf.gz -o output.gvcf.gz --min-gq 30 --min-dp 10
  cat input.vcf | vcf2gvcf convert -g - -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" {
				return &usageError{errors.New("input file is required (-g)")}
			}
			if opts.output == "" {
				return &usageError{errors.New("output file is required (-o)")}
			}
			if !cmd.Flags().Changed("min-gq") && viper.IsSet("filters.min_gq") {
				opts.minGQ = viper.GetInt("filters.min_gq")
			}
			if !cmd.Flags().Changed("min-dp") && viper.IsSet("filters.min_dp") {
				opts.minDP = viper.GetInt("filters.min_dp")
			}
			if !cmd.Flags().Changed("sample-pattern") && viper.IsSet("sample.pattern") {
				opts.samplePattern = viper.GetString("sample.pattern")
			}
			return runConvert(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "gvcf", "g", "", "Input VCF file ('-' for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file ('-' for stdout, '.gz' compresses)")
	cmd.Flags().IntVar(&opts.minGQ, "min-gq", 0, "Minimum GQ value for reference calls")
	cmd.Flags().IntVar(&opts.minDP, "min-dp", 0, "Minimum DP value for reference calls")
	cmd.Flags().BoolVar(&opts.keyed, "keyed", false, "Prefix each output line with the resolved sample ID")
	cmd.Flags().StringVar(&opts.samplePattern, "sample-pattern", "", "Regexp extracting the sample ID from the input path")

	return cmd
}

func runConvert(ctx context.Context, opts convertOptions) error {
	parser, err := vcf.NewParser(opts.input)
	if err != nil {
		return err
	}
	defer parser.Close()

	writer, err := vcf.NewFileWriter(opts.output, parser.Header())
	if err != nil {
		return err
	}

	if opts.keyed {
		// Keyed output is for downstream grouping; header lines are
		// dropped and each record carries the sample ID.
		resolver, err := sampleid.NewResolver(opts.samplePattern)
		if err != nil {
			writer.Close()
			return err
		}
		if sample, ok := resolver.Resolve(opts.input); ok {
			writer.SetKey(sample)
		} else {
			logger.Warn("no sample id in input path, emitting unkeyed lines",
				zap.String("path", opts.input))
		}
	} else {
		if err := writer.WriteHeader(); err != nil {
			writer.Close()
			return fmt.Errorf("write header: %w", err)
		}
	}

	conv := gvcf.NewConverter(gvcf.Evaluator{MinGQ: opts.minGQ, MinDP: opts.minDP})
	conv.SetLogger(logger)

	if err := conv.Run(ctx, parser, writer); err != nil {
		writer.Close()
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
