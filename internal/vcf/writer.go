package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer writes ten-column VCF lines to an output stream.
// An optional sample key turns each data line into a keyed line for
// downstream grouping; header lines are never keyed. Writers opened on
// a file own the handle and must be closed.
type Writer struct {
	w           *bufio.Writer
	file        *os.File
	gzipWriter  *gzip.Writer
	headerLines []string
	key         string
}

// NewWriter creates a writer that emits the given header lines before
// any records. headerLines may be nil for headerless output.
func NewWriter(w io.Writer, headerLines []string) *Writer {
	return &Writer{
		w:           bufio.NewWriter(w),
		headerLines: headerLines,
	}
}

// NewFileWriter creates a writer on the given path, compressing when
// the path ends in .gz. "-" writes to standard output.
func NewFileWriter(path string, headerLines []string) (*Writer, error) {
	if path == "-" {
		return NewWriter(os.Stdout, headerLines), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	w := &Writer{file: f, headerLines: headerLines}
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		w.gzipWriter = gzip.NewWriter(f)
		w.w = bufio.NewWriter(w.gzipWriter)
	} else {
		w.w = bufio.NewWriter(f)
	}

	return w, nil
}

// SetKey sets a sample key prepended (tab-separated) to every record
// line. An empty key disables the prefix.
func (w *Writer) SetKey(key string) {
	w.key = key
}

// WriteHeader writes the header lines.
func (w *Writer) WriteHeader() error {
	for _, line := range w.headerLines {
		if _, err := w.w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecord writes one record as a ten-column line.
func (w *Writer) WriteRecord(r *Record) error {
	var lb strings.Builder
	lb.Grow(160)

	if w.key != "" {
		lb.WriteString(w.key)
		lb.WriteByte('\t')
	}
	lb.WriteString(r.String())
	lb.WriteByte('\n')

	_, err := w.w.WriteString(lb.String())
	return err
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Close flushes buffered output, finishes the gzip stream, and closes
// the file when the writer owns one. Closing a writer on a
// caller-supplied stream only flushes.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		if w.file != nil {
			w.file.Close()
		}
		return err
	}
	if w.gzipWriter != nil {
		if err := w.gzipWriter.Close(); err != nil {
			w.file.Close()
			return err
		}
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
