package gvcf

import (
	"strconv"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

// SiteQuality is the site-level quality rule used by per-position
// filtering. A reference call passes when MQ0 stays under MaxMQ0 and
// both MQ and QUAL reach their minimums; anything else passes when
// its FILTER column is PASS. Missing or unparseable values enforce
// nothing.
type SiteQuality struct {
	MaxMQ0  float64
	MinMQ   float64
	MinQual float64
}

// DefaultSiteQuality returns the historical deployment thresholds:
// MQ0 < 4, MQ >= 30, QUAL >= 30.
func DefaultSiteQuality() SiteQuality {
	return SiteQuality{MaxMQ0: 4, MinMQ: 30, MinQual: 30}
}

// Pass reports whether the record meets the site-level quality rule.
func (q SiteQuality) Pass(r *vcf.Record) bool {
	if !r.IsRefCall() {
		return r.Filter == "PASS"
	}

	info := r.InfoMap()
	if mq0, ok := parseFloatValue(info["MQ0"]); ok && mq0 >= q.MaxMQ0 {
		return false
	}
	if mq, ok := parseFloatValue(info["MQ"]); ok && mq < q.MinMQ {
		return false
	}
	if qual, ok := r.QualValue(); ok && qual < q.MinQual {
		return false
	}

	return true
}

// parseFloatValue parses an INFO value. Absent or non-numeric values
// report not-ok, so criteria are never enforced against them.
func parseFloatValue(s string) (float64, bool) {
	if s == "" || s == "." {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
