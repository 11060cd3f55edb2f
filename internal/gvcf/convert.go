package gvcf

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

// RecordWriter is the interface for writing converted records.
type RecordWriter interface {
	WriteHeader() error
	WriteRecord(r *vcf.Record) error
	Flush() error
}

// Converter drives block conversion over a record stream: variants
// pass through in place, reference calls accumulate into blocks, and
// quality-failing positions are rewritten to explicit no-calls.
type Converter struct {
	evaluator Evaluator
	acc       Accumulator
	logger    *zap.Logger

	records int
	blocks  int
	skipped int
}

// NewConverter creates a converter with the given filter thresholds.
func NewConverter(e Evaluator) *Converter {
	return &Converter{
		evaluator: e,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and progress messages.
func (c *Converter) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Run converts all records from the parser, preserving input order:
// the output is a merge of flushed blocks and variant lines in the
// order their records arrived. The final block is flushed exactly once
// at end of stream. Context cancellation stops reading, flushes the
// open block, and returns the context error.
func (c *Converter) Run(ctx context.Context, parser vcf.RecordParser, writer RecordWriter) error {
	for {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("conversion interrupted", zap.Error(err))
			break
		}

		r, err := parser.Next()
		if err != nil {
			// The open block holds records that were already valid;
			// flush it before surfacing the failure.
			if ferr := c.flushBlock(writer); ferr == nil {
				writer.Flush()
			}
			return fmt.Errorf("read record: %w", err)
		}
		if r == nil {
			break
		}
		c.records++

		if IsVariant(r) {
			if err := c.flushBlock(writer); err != nil {
				return err
			}
			if err := writer.WriteRecord(r); err != nil {
				return fmt.Errorf("write variant: %w", err)
			}
			continue
		}

		callable, err := c.evaluator.Callable(r)
		if err != nil {
			var arity *vcf.CallArityError
			if errors.As(err, &arity) {
				c.skipped++
				c.logger.Warn("skipping record with mismatched call columns",
					zap.String("chrom", r.Chrom),
					zap.Int64("pos", r.Pos),
					zap.Int("line", arity.Line),
					zap.Error(err))
				continue
			}
			return err
		}

		if !callable {
			r.ForceNoCall()
		}

		if emitted, ok := c.acc.Add(r, callable); ok {
			if err := c.writeBlock(writer, emitted); err != nil {
				return err
			}
		}
	}

	// Emit the final block, if applicable
	if err := c.flushBlock(writer); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	// Cancellation surfaces after the flush.
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Info("conversion complete",
		zap.Int("records", c.records),
		zap.Int("blocks", c.blocks),
		zap.Int("skipped", c.skipped))

	return nil
}

// flushBlock emits the open block, if any.
func (c *Converter) flushBlock(writer RecordWriter) error {
	emitted, ok := c.acc.Flush()
	if !ok {
		return nil
	}
	return c.writeBlock(writer, emitted)
}

func (c *Converter) writeBlock(writer RecordWriter, emitted *vcf.Record) error {
	c.blocks++
	if end, ok := emitted.InfoEnd(); ok {
		c.logger.Debug("block closed",
			zap.String("chrom", emitted.Chrom),
			zap.Int64("start", emitted.Pos),
			zap.Int64("end", end))
	}
	if err := writer.WriteRecord(emitted); err != nil {
		return fmt.Errorf("write block: %w", err)
	}
	return nil
}
