package gvcfdb

import (
	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

const defaultBatchSize = 10000

// Loader buffers converted records and appends them to the store in
// batches. It satisfies the conversion driver's writer interface, so a
// conversion can stream straight into DuckDB instead of a file.
type Loader struct {
	store     *Store
	sample    string
	batchSize int
	batch     []*vcf.Record
	total     int
}

// NewLoader creates a loader writing records for the given sample.
func NewLoader(store *Store, sample string) *Loader {
	return &Loader{
		store:     store,
		sample:    sample,
		batchSize: defaultBatchSize,
	}
}

// SetBatchSize overrides the number of records buffered per insert.
func (l *Loader) SetBatchSize(n int) {
	if n > 0 {
		l.batchSize = n
	}
}

// WriteHeader is a no-op; header lines are not stored.
func (l *Loader) WriteHeader() error {
	return nil
}

// WriteRecord buffers one record, flushing a full batch to the store.
func (l *Loader) WriteRecord(r *vcf.Record) error {
	l.batch = append(l.batch, r)
	l.total++
	if len(l.batch) >= l.batchSize {
		return l.flushBatch()
	}
	return nil
}

// Flush writes any buffered records.
func (l *Loader) Flush() error {
	return l.flushBatch()
}

// Total returns the number of records written so far.
func (l *Loader) Total() int {
	return l.total
}

func (l *Loader) flushBatch() error {
	if len(l.batch) == 0 {
		return nil
	}
	if err := l.store.WriteRecords(l.sample, l.batch); err != nil {
		return err
	}
	l.batch = l.batch[:0]
	return nil
}
