package gvcf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

func TestSiteFilter_ApplyPassing(t *testing.T) {
	f := NewSiteFilter(DefaultSiteQuality())

	r := refCall("1", 100)
	out := f.Apply(r)
	assert.Same(t, r, out, "passing records come back untouched")
}

func TestSiteFilter_ApplyFailing(t *testing.T) {
	f := NewSiteFilter(DefaultSiteQuality())

	r := refCall("1", 100)
	r.Info = "MQ=12;MQ0=0"

	out := f.Apply(r)
	require.NotSame(t, r, out)
	assert.Equal(t, "GT", out.Format)
	assert.Equal(t, "./.", out.Sample)
	assert.Equal(t, int64(100), out.Pos)
	assert.Equal(t, "MQ=12;MQ0=0", out.Info, "site values stay on the no-call line")

	assert.Equal(t, "0/0:24:69", r.Sample, "input record must not be mutated")
}

func TestSiteFilter_RunPreservesOrder(t *testing.T) {
	records := make([]*vcf.Record, 0, 120)
	for i := range 120 {
		r := refCall("2", int64(500+i))
		if i%3 == 0 {
			r.Qual = "12.5"
		}
		records = append(records, r)
	}
	src := &recordSource{records: records}
	w := &captureWriter{}

	err := NewSiteFilter(DefaultSiteQuality()).Run(context.Background(), src, w, 8)
	require.NoError(t, err)
	require.Len(t, w.records, 120)

	for i, r := range w.records {
		assert.Equal(t, int64(500+i), r.Pos, "record %d out of order", i)
		if i%3 == 0 {
			assert.Equal(t, "./.", r.Sample)
		} else {
			assert.Equal(t, "0/0:24:69", r.Sample)
		}
	}
	assert.Equal(t, 1, w.flushes)
}

func TestSiteFilter_RunVariantGate(t *testing.T) {
	pass := variantCall("1", 100)
	fail := variantCall("1", 101)
	fail.Filter = "LowQual"

	src := &recordSource{records: []*vcf.Record{pass, fail}}
	w := &captureWriter{}

	err := NewSiteFilter(DefaultSiteQuality()).Run(context.Background(), src, w, 2)
	require.NoError(t, err)
	require.Len(t, w.records, 2)

	assert.Equal(t, "0/1:30:99", w.records[0].Sample)
	assert.Equal(t, "./.", w.records[1].Sample)
	assert.Equal(t, "G", w.records[1].Alt, "the variant allele stays on the no-call line")
}

func TestSiteFilter_RunParseError(t *testing.T) {
	src := &recordSource{
		records: []*vcf.Record{refCall("1", 100)},
		err:     &vcf.MalformedRecordError{Line: 5, Message: "invalid position: x"},
	}
	w := &captureWriter{}

	err := NewSiteFilter(DefaultSiteQuality()).Run(context.Background(), src, w, 2)
	require.Error(t, err)

	var malformed *vcf.MalformedRecordError
	assert.ErrorAs(t, err, &malformed)
	assert.Len(t, w.records, 1, "records before the failure are still written")
}

func TestSiteFilter_RunEmptyInput(t *testing.T) {
	src := &recordSource{}
	w := &captureWriter{}

	err := NewSiteFilter(DefaultSiteQuality()).Run(context.Background(), src, w, 0)
	require.NoError(t, err)
	assert.Empty(t, w.records)
	assert.Equal(t, 1, w.flushes)
}

func TestSiteFilter_RunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &cancelSource{
		recordSource: recordSource{records: []*vcf.Record{
			refCall("1", 100),
			refCall("1", 101),
			refCall("1", 102),
		}},
		cancel: cancel,
		after:  1,
	}
	w := &captureWriter{}

	err := NewSiteFilter(DefaultSiteQuality()).Run(ctx, src, w, 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, w.records, 1, "in-flight records are written before stopping")
	assert.Equal(t, 1, w.flushes)
}
