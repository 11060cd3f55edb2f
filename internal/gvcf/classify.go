package gvcf

import "github.com/genomelab/vcf2gvcf/internal/vcf"

// IsVariant determines whether a record is a true variant call.
// A record is a variant unless its genotype is homozygous reference
// under either separator convention ("0|0" or "0/0"). Missing or
// malformed genotypes count as variants; upstream consumers rely on
// this routing.
func IsVariant(r *vcf.Record) bool {
	gt, ok := r.Genotype()
	if !ok {
		return true
	}
	return gt != "0|0" && gt != "0/0"
}
