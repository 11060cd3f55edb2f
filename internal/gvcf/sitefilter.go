package gvcf

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

// SiteFilter rewrites quality-failing calls to explicit no-calls, one
// output line per input position, with no block merging. Variants are
// gated on their FILTER column, reference calls on the site-quality
// rule; failing records are kept as ./. lines rather than dropped.
type SiteFilter struct {
	quality SiteQuality
	logger  *zap.Logger
}

// NewSiteFilter creates a site filter with the given quality rule.
func NewSiteFilter(q SiteQuality) *SiteFilter {
	return &SiteFilter{
		quality: q,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for progress messages.
func (f *SiteFilter) SetLogger(l *zap.Logger) {
	f.logger = l
}

// Apply returns the output record for one input record: the record
// itself when it passes the quality rule, or a copy rewritten to
// no-call when it fails.
func (f *SiteFilter) Apply(r *vcf.Record) *vcf.Record {
	if f.quality.Pass(r) {
		return r
	}

	rewritten := *r
	rewritten.ForceNoCall()
	return &rewritten
}

// Run filters all records from the parser across a worker pool,
// writing results in input order. If workers is 0, runtime.NumCPU()
// is used. Context cancellation stops the producer; in-flight records
// are still written and the context error is returned.
func (f *SiteFilter) Run(ctx context.Context, parser vcf.RecordParser, writer RecordWriter, workers int) error {
	items := make(chan WorkItem, 2*runtime.NumCPU())
	var parseErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			if ctx.Err() != nil {
				return
			}
			r, err := parser.Next()
			if err != nil {
				parseErr = fmt.Errorf("read record: %w", err)
				return
			}
			if r == nil {
				return
			}
			items <- WorkItem{Seq: seq, Record: r}
			seq++
		}
	}()

	results := f.ParallelApply(items, workers)

	processed := 0
	if err := OrderedCollect(results, func(r WorkResult) error {
		if err := writer.WriteRecord(r.Record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		processed++
		return nil
	}); err != nil {
		return err
	}

	if parseErr != nil {
		return parseErr
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	// Cancellation surfaces after the flush.
	if err := ctx.Err(); err != nil {
		return err
	}

	f.logger.Info("site filtering complete", zap.Int("records", processed))

	return nil
}
