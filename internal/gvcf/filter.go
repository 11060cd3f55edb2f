package gvcf

import (
	"strconv"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

// Evaluator decides whether a reference call is callable. Zero
// thresholds are permissive: a record only fails on a present,
// parseable value below the corresponding minimum.
type Evaluator struct {
	MinGQ int
	MinDP int
}

// Callable reports whether the record counts as a callable position.
// Records whose ALT column is not a reference placeholder pass
// unconditionally; the classifier owns their routing. An N reference
// site never passes. Returns a CallArityError unmodified when the
// call columns cannot be decoded; the caller applies its skip policy.
func (e Evaluator) Callable(r *vcf.Record) (bool, error) {
	if !r.IsRefCall() {
		return true, nil
	}
	if r.Ref == "N" {
		return false, nil
	}

	call, err := r.Call()
	if err != nil {
		return false, err
	}

	if gq, ok := parseIntValue(call["GQ"]); ok && gq < e.MinGQ {
		return false, nil
	}
	if dp, ok := parseIntValue(call["DP"]); ok && dp < e.MinDP {
		return false, nil
	}

	return true, nil
}

// parseIntValue parses a call value. Absent or non-numeric values
// report not-ok, so thresholds are never enforced against them.
func parseIntValue(s string) (int, bool) {
	if s == "" || s == "." {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
