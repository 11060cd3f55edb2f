package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/genomelab/vcf2gvcf/internal/gvcfdb"
)

const testSample = "LP2000100-DNA_A01"

// interruptedContext reports cancellation after a fixed number of
// checks, standing in for a signal arriving mid-stream.
type interruptedContext struct {
	context.Context
	after  int
	checks int
}

func (c *interruptedContext) Err() error {
	c.checks++
	if c.checks > c.after {
		return context.Canceled
	}
	return nil
}

func writeInput(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "sample.gvcf")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	require.NoError(t, err)
	return path
}

func blockLine(pos, end int) string {
	return fmt.Sprintf("20\t%d\t.\tA\t.\t30\tPASS\tEND=%d\tGT\t0/0", pos, end)
}

func TestRunLoad_InterruptedLoadNotRecorded(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	input := writeInput(t, dir,
		blockLine(100, 104),
		blockLine(105, 109),
		blockLine(110, 114),
		blockLine(115, 119),
	)
	opts := loadOptions{input: input, db: filepath.Join(dir, "calls.duckdb"), sample: testSample}

	ctx := &interruptedContext{Context: context.Background(), after: 1}
	err := runLoad(ctx, opts)
	require.ErrorIs(t, err, context.Canceled)

	// The interrupted run must leave no history row, so the rerun
	// loads the whole file.
	require.NoError(t, runLoad(context.Background(), opts))

	store, err := gvcfdb.Open(opts.db)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.CountRecords(testSample)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRunLoad_SkipsAlreadyLoadedFile(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	input := writeInput(t, dir, blockLine(100, 104), blockLine(105, 109))
	opts := loadOptions{input: input, db: filepath.Join(dir, "calls.duckdb"), sample: testSample}

	require.NoError(t, runLoad(context.Background(), opts))
	require.NoError(t, runLoad(context.Background(), opts))

	store, err := gvcfdb.Open(opts.db)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.CountRecords(testSample)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "a rerun on the unchanged file must not reload it")
}
