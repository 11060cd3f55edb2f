package vcf

// RecordParser is the interface for parsers that read records.
// Stream transformers consume this interface so tests can drive them
// with synthetic record sequences.
type RecordParser interface {
	// Next reads the next record.
	// Returns nil, nil when there are no more records.
	Next() (*Record, error)

	// Close closes the parser and releases resources.
	Close() error

	// LineNumber returns the current line number being processed.
	LineNumber() int
}
