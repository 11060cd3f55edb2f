// Package vcf provides single-sample VCF record parsing and serialization.
package vcf

import (
	"fmt"
	"strconv"
	"strings"
)

// Record represents a single data line from a single-sample VCF file.
// Columns are kept verbatim so that emitted lines reproduce the input
// byte for byte; only POS is parsed, for coordinate arithmetic.
type Record struct {
	Chrom  string // Chromosome name (e.g., "20", "chrX")
	Pos    int64  // 1-based genomic position
	ID     string // Variant identifier (e.g., rs ID, or ".")
	Ref    string // Reference allele(s)
	Alt    string // Alternate allele column ("." or "<NON_REF>" for reference calls)
	Qual   string // Quality column, verbatim ("." when absent)
	Filter string // Filter status (PASS, ".", or filter names)
	Info   string // Raw INFO column
	Format string // Colon-separated format keys
	Sample string // Colon-separated sample values
	Line   int    // Input line number, for error context
}

// Parse parses a single VCF data line into a Record.
// The line must split into exactly ten tab-separated columns; anything
// else, or a non-integer POS, is a MalformedRecordError.
func Parse(line string, lineNum int) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 10 {
		return nil, &MalformedRecordError{
			Line:    lineNum,
			Message: fmt.Sprintf("expected 10 columns, found %d", len(fields)),
		}
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, &MalformedRecordError{
			Line:    lineNum,
			Message: fmt.Sprintf("invalid position: %s", fields[1]),
		}
	}

	return &Record{
		Chrom:  fields[0],
		Pos:    pos,
		ID:     fields[2],
		Ref:    fields[3],
		Alt:    fields[4],
		Qual:   fields[5],
		Filter: fields[6],
		Info:   fields[7],
		Format: fields[8],
		Sample: fields[9],
		Line:   lineNum,
	}, nil
}

// IsRefCall returns true if the record is a reference call rather than
// a variant candidate.
func (r *Record) IsRefCall() bool {
	return r.Alt == "." || r.Alt == "<NON_REF>"
}

// InfoMap parses the INFO column into a key-value map.
// Flag-type keys (no "=") carry no value and are omitted.
func (r *Record) InfoMap() map[string]string {
	result := make(map[string]string)
	if r.Info == "." {
		return result
	}

	for _, kv := range strings.Split(r.Info, ";") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			result[parts[0]] = parts[1]
		}
	}

	return result
}

// InfoEnd returns the END value from the INFO column.
// Returns false when END is absent or not an integer.
func (r *Record) InfoEnd() (int64, bool) {
	v, ok := r.InfoMap()["END"]
	if !ok {
		return 0, false
	}
	end, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return end, true
}

// QualValue parses the QUAL column.
// Returns false when the column is "." or not numeric.
func (r *Record) QualValue() (float64, bool) {
	if r.Qual == "." || r.Qual == "" {
		return 0, false
	}
	q, err := strconv.ParseFloat(r.Qual, 64)
	if err != nil {
		return 0, false
	}
	return q, true
}

// Call aligns FORMAT keys with sample values.
// Returns a CallArityError when the two columns split into different
// numbers of fields.
func (r *Record) Call() (map[string]string, error) {
	keys := strings.Split(r.Format, ":")
	values := strings.Split(r.Sample, ":")
	if len(keys) != len(values) {
		return nil, &CallArityError{
			Line:       r.Line,
			FormatKeys: len(keys),
			CallValues: len(values),
		}
	}

	call := make(map[string]string, len(keys))
	for i, key := range keys {
		call[key] = values[i]
	}
	return call, nil
}

// Genotype returns the sample value aligned with the GT format key.
// Returns false when FORMAT has no GT key or the sample column is too
// short to cover it.
func (r *Record) Genotype() (string, bool) {
	keys := strings.Split(r.Format, ":")
	values := strings.Split(r.Sample, ":")
	for i, key := range keys {
		if key == "GT" {
			if i < len(values) {
				return values[i], true
			}
			return "", false
		}
	}
	return "", false
}

// ForceNoCall rewrites the call columns to an explicit no-call,
// discarding all per-sample values.
func (r *Record) ForceNoCall() {
	r.Format = "GT"
	r.Sample = "./."
}

// String reassembles the ten-column data line.
func (r *Record) String() string {
	var b strings.Builder
	b.Grow(128)

	b.WriteString(r.Chrom)
	b.WriteByte('\t')
	b.WriteString(strconv.FormatInt(r.Pos, 10))
	b.WriteByte('\t')
	b.WriteString(r.ID)
	b.WriteByte('\t')
	b.WriteString(r.Ref)
	b.WriteByte('\t')
	b.WriteString(r.Alt)
	b.WriteByte('\t')
	b.WriteString(r.Qual)
	b.WriteByte('\t')
	b.WriteString(r.Filter)
	b.WriteByte('\t')
	b.WriteString(r.Info)
	b.WriteByte('\t')
	b.WriteString(r.Format)
	b.WriteByte('\t')
	b.WriteString(r.Sample)

	return b.String()
}

// MalformedRecordError reports a data line whose column structure is
// unusable. It is fatal to the run.
type MalformedRecordError struct {
	Line    int
	Message string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed vcf record at line %d: %s", e.Line, e.Message)
}

// CallArityError reports a FORMAT column whose key count does not match
// the sample column's value count. The affected record is skipped.
type CallArityError struct {
	Line       int
	FormatKeys int
	CallValues int
}

func (e *CallArityError) Error() string {
	return fmt.Sprintf("call arity mismatch at line %d: %d format keys, %d sample values", e.Line, e.FormatKeys, e.CallValues)
}
