// Package sampleid resolves sample identifiers from input file paths.
package sampleid

import (
	"fmt"
	"regexp"
)

// DefaultPattern matches LP-style sample directories in input paths,
// e.g. /data/LP2000100-DNA_A01/chr20.vcf.
const DefaultPattern = `/(LP\d{7}-DNA_\w\d{2})/`

// Resolver extracts a sample identifier from a file path.
type Resolver struct {
	re *regexp.Regexp
}

// NewResolver compiles pattern, whose first capture group is the
// sample identifier. An empty pattern falls back to DefaultPattern.
func NewResolver(pattern string) (*Resolver, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile sample pattern: %w", err)
	}
	return &Resolver{re: re}, nil
}

// Resolve returns the sample identifier embedded in path.
// Returns false when the path does not match.
func (r *Resolver) Resolve(path string) (string, bool) {
	m := r.re.FindStringSubmatch(path)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
