package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser reads records from a single-sample VCF stream.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	header     []string
	sampleName string // sample name from the #CHROM header line
	pending    string // first data line, consumed during the header scan
	hasPending bool
	keyed      bool
	lastKey    string
}

// NewParser creates a new VCF parser for the given file.
// Supports both plain VCF and gzipped VCF (.vcf.gz) files; "-" reads
// from standard input.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read vcf header: %w", err)
	}

	// Seek back to beginning
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	// Check for gzip magic number (0x1f, 0x8b)
	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	// Parse header
	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{
		reader: bufio.NewReader(r),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}

	return p, nil
}

// parseHeader reads leading header lines ("#"-prefixed) and stops at
// the first data line, which is held back for Next. A stream with no
// header lines is accepted.
func (p *Parser) parseHeader() error {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read header: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			p.header = append(p.header, line)
			if strings.HasPrefix(line, "#CHROM") {
				// Sample name is the tenth column of the #CHROM line
				fields := strings.Split(line, "\t")
				if len(fields) > 9 {
					p.sampleName = fields[9]
				}
			}
			continue
		}

		p.pending = line
		p.hasPending = true
		return nil
	}
}

// SetKeyed configures the parser to strip a leading tab-separated
// sample-key column from each data line, as produced by keyed output.
func (p *Parser) SetKeyed(keyed bool) {
	p.keyed = keyed
}

// LastKey returns the sample key stripped from the most recent record,
// or "" when the parser is not keyed.
func (p *Parser) LastKey() string {
	return p.lastKey
}

// Next reads the next record from the stream.
// Returns nil, nil when there are no more records.
func (p *Parser) Next() (*Record, error) {
	if p.hasPending {
		line := p.pending
		p.pending = ""
		p.hasPending = false
		return p.parseLine(line)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read record line: %w", err)
	}
	if line == "" && err == io.EOF {
		return nil, nil
	}
	p.lineNumber++

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return p.Next() // Skip blank lines
	}

	return p.parseLine(line)
}

// parseLine strips the sample key in keyed mode, then parses the
// remaining columns.
func (p *Parser) parseLine(line string) (*Record, error) {
	if p.keyed {
		idx := strings.IndexByte(line, '\t')
		if idx < 0 {
			return nil, &MalformedRecordError{
				Line:    p.lineNumber,
				Message: "keyed line has no key column",
			}
		}
		p.lastKey = line[:idx]
		line = line[idx+1:]
	}
	return Parse(line, p.lineNumber)
}

// Header returns the VCF header lines.
func (p *Parser) Header() []string {
	return p.header
}

// SampleName returns the sample name from the #CHROM header line, or
// "" if the stream had no #CHROM line.
func (p *Parser) SampleName() string {
	return p.sampleName
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
