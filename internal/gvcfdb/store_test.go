package gvcfdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

const testSample = "LP2000100-DNA_A01"

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func blockRecord(chrom string, pos, end int64) *vcf.Record {
	return &vcf.Record{
		Chrom: chrom, Pos: pos, ID: ".", Ref: "A", Alt: ".",
		Qual: "36.74", Filter: "PASS",
		Info:   fmt.Sprintf("END=%d", end),
		Format: "GT:DP:GQ", Sample: "0/0:24:69",
	}
}

func variantRecord(chrom string, pos int64) *vcf.Record {
	return &vcf.Record{
		Chrom: chrom, Pos: pos, ID: ".", Ref: "A", Alt: "G",
		Qual: "45.2", Filter: "PASS", Info: "DP=30",
		Format: "GT:DP:GQ", Sample: "0/1:30:99",
	}
}

// --- Record storage tests ---

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndQueryRegion(t *testing.T) {
	s := openInMemory(t)

	records := []*vcf.Record{
		blockRecord("20", 100, 105),
		variantRecord("20", 110),
		blockRecord("20", 111, 120),
	}
	require.NoError(t, s.WriteRecords(testSample, records))

	got, err := s.QueryRegion(testSample, "20", 103, 112)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(100), got[0].Pos)
	assert.Equal(t, "END=105", got[0].Info)
	assert.Equal(t, int64(110), got[1].Pos)
	assert.Equal(t, "G", got[1].Alt)
	assert.Equal(t, int64(111), got[2].Pos)

	got, err = s.QueryRegion(testSample, "20", 500, 600)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQueryRegionInsideBlock(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteRecords(testSample, []*vcf.Record{
		blockRecord("1", 100, 105),
		blockRecord("1", 200, 210),
	}))

	// A window strictly inside the block still finds it via end_pos.
	got, err := s.QueryRegion(testSample, "1", 103, 104)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].Pos)
}

func TestQueryRegionScoping(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteRecords(testSample, []*vcf.Record{
		blockRecord("1", 100, 105),
	}))

	got, err := s.QueryRegion("LP2000187-DNA_H12", "1", 100, 105)
	require.NoError(t, err)
	assert.Empty(t, got, "records are scoped to their sample")

	got, err = s.QueryRegion(testSample, "2", 100, 105)
	require.NoError(t, err)
	assert.Empty(t, got, "records are scoped to their chromosome")
}

func TestSamples(t *testing.T) {
	s := openInMemory(t)

	samples, err := s.Samples()
	require.NoError(t, err)
	assert.Empty(t, samples)

	require.NoError(t, s.WriteRecords("LP2000187-DNA_H12", []*vcf.Record{blockRecord("1", 100, 105)}))
	require.NoError(t, s.WriteRecords(testSample, []*vcf.Record{blockRecord("1", 100, 105)}))
	require.NoError(t, s.WriteRecords(testSample, []*vcf.Record{variantRecord("1", 200)}))

	samples, err = s.Samples()
	require.NoError(t, err)
	assert.Equal(t, []string{testSample, "LP2000187-DNA_H12"}, samples)
}

func TestCountRecords(t *testing.T) {
	s := openInMemory(t)

	count, err := s.CountRecords(testSample)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, s.WriteRecords(testSample, []*vcf.Record{
		blockRecord("1", 100, 105),
		variantRecord("1", 110),
	}))

	count, err = s.CountRecords(testSample)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestClearSample(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteRecords(testSample, []*vcf.Record{blockRecord("1", 100, 105)}))
	require.NoError(t, s.WriteRecords("LP2000187-DNA_H12", []*vcf.Record{blockRecord("1", 100, 105)}))

	require.NoError(t, s.ClearSample(testSample))

	count, err := s.CountRecords(testSample)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = s.CountRecords("LP2000187-DNA_H12")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "other samples must be untouched")
}

func TestRecordEnd(t *testing.T) {
	assert.Equal(t, int64(105), recordEnd(blockRecord("1", 100, 105)))
	assert.Equal(t, int64(110), recordEnd(variantRecord("1", 110)))

	deletion := variantRecord("1", 200)
	deletion.Ref = "TAC"
	assert.Equal(t, int64(202), recordEnd(deletion))
}

// --- Load history tests ---

func TestLoadHistory(t *testing.T) {
	s := openInMemory(t)

	fp := FileFingerprint{
		Path:    "/data/LP2000100-DNA_A01/chr20.vcf",
		Size:    123456,
		ModTime: time.Now(),
	}

	loaded, err := s.AlreadyLoaded(fp)
	require.NoError(t, err)
	assert.False(t, loaded)

	require.NoError(t, s.RecordLoad(testSample, fp, 4200))

	loaded, err = s.AlreadyLoaded(fp)
	require.NoError(t, err)
	assert.True(t, loaded)

	changed := fp
	changed.Size = 999
	loaded, err = s.AlreadyLoaded(changed)
	require.NoError(t, err)
	assert.False(t, loaded, "a resized file counts as new")

	moved := fp
	moved.Path = "/data/other/chr20.vcf"
	loaded, err = s.AlreadyLoaded(moved)
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestClearSampleDropsHistory(t *testing.T) {
	s := openInMemory(t)

	fp := FileFingerprint{Path: "/data/chr20.vcf", Size: 100, ModTime: time.Now()}
	require.NoError(t, s.RecordLoad(testSample, fp, 10))

	require.NoError(t, s.ClearSample(testSample))

	loaded, err := s.AlreadyLoaded(fp)
	require.NoError(t, err)
	assert.False(t, loaded)
}

// --- Loader tests ---

func TestLoaderBatching(t *testing.T) {
	s := openInMemory(t)

	l := NewLoader(s, testSample)
	l.SetBatchSize(2)

	require.NoError(t, l.WriteHeader())
	for i := range 5 {
		require.NoError(t, l.WriteRecord(blockRecord("1", int64(100+10*i), int64(105+10*i))))
	}
	require.NoError(t, l.Flush())

	assert.Equal(t, 5, l.Total())

	count, err := s.CountRecords(testSample)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	got, err := s.QueryRegion(testSample, "1", 100, 200)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestLoaderFlushEmpty(t *testing.T) {
	s := openInMemory(t)

	l := NewLoader(s, testSample)
	require.NoError(t, l.Flush())
	assert.Equal(t, 0, l.Total())
}
