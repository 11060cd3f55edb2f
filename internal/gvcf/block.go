// Package gvcf converts per-position VCF call streams into genome VCF
// form: runs of callable reference positions collapse into block
// records bounded by an END coordinate, quality-failing positions are
// rewritten to explicit no-calls, and true variants pass through
// untouched.
package gvcf

import (
	"strconv"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

// RefState describes the callability of the open block.
type RefState int

const (
	// StateUnset means no block is open.
	StateUnset RefState = iota
	// StateCallable marks a block of callable reference positions.
	StateCallable
	// StateNoCall marks a block of quality-failed no-call positions.
	StateNoCall
)

// Accumulator collapses runs of compatible reference/no-call records
// into single block records. The zero value is ready to use. At most
// one block is open at a time; absorbed records are not touched again
// until emission.
type Accumulator struct {
	start *vcf.Record
	end   *vcf.Record // nil while the block holds exactly one record
	state RefState
}

// Add offers a filter-evaluated record to the open block. When the
// record is incompatible with it (chromosome change, gap of more than
// one position, or a callability transition) the block is closed and
// its emitted record returned, and a new block opens with r. At most
// one record is emitted per call.
func (a *Accumulator) Add(r *vcf.Record, callable bool) (*vcf.Record, bool) {
	if a.state == StateUnset {
		a.open(r, callable)
		return nil, false
	}

	state := StateNoCall
	if callable {
		state = StateCallable
	}

	if r.Chrom != a.start.Chrom || r.Pos > a.currentEnd()+1 || state != a.state {
		emitted := a.emit()
		a.open(r, callable)
		return emitted, true
	}

	a.end = r
	return nil, false
}

// Flush closes any open block and returns its emitted record. After a
// flush the accumulator is empty and ready for the next run.
func (a *Accumulator) Flush() (*vcf.Record, bool) {
	if a.state == StateUnset {
		return nil, false
	}
	return a.emit(), true
}

// State returns the callability state of the open block, or StateUnset
// when no block is open.
func (a *Accumulator) State() RefState {
	return a.state
}

func (a *Accumulator) open(r *vcf.Record, callable bool) {
	a.start = r
	a.end = nil
	if callable {
		a.state = StateCallable
	} else {
		a.state = StateNoCall
	}
}

// currentEnd is the END INFO value of the most recently absorbed
// record, falling back to that record's position.
func (a *Accumulator) currentEnd() int64 {
	last := a.start
	if a.end != nil {
		last = a.end
	}
	if end, ok := last.InfoEnd(); ok {
		return end
	}
	return last.Pos
}

// emit builds the output record for the open block and resets state.
// The emitted line reuses every column of the start record except
// INFO, which is rewritten to the block END; no-call blocks also have
// their call columns forced to ./..
func (a *Accumulator) emit() *vcf.Record {
	emitted := *a.start

	var end int64
	if a.end != nil {
		end = a.currentEnd() + int64(len(a.end.Ref)) - 1
	} else {
		end = a.start.Pos + int64(len(a.start.Ref)) - 1
	}
	emitted.Info = "END=" + strconv.FormatInt(end, 10)

	if a.state == StateNoCall {
		emitted.ForceNoCall()
	}

	a.start = nil
	a.end = nil
	a.state = StateUnset

	return &emitted
}
