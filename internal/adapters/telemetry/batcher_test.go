package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/adapters/telemetry"
)

type flushCollector struct {
	mu      sync.Mutex
	batches [][]byte
}

func (c *flushCollector) collect(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, data)
}

func (c *flushCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batches)
}

func TestBatchProcessor_SizeLimitFlush(t *testing.T) {
	c := &flushCollector{}
	bp := telemetry.NewBatchProcessor(8, time.Hour, c.collect)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("0123456789"))
	require.NoError(t, err)

	require.Equal(t, 1, c.count())
	assert.Equal(t, []byte("0123456789"), c.batches[0])
}

func TestBatchProcessor_ManualFlush(t *testing.T) {
	c := &flushCollector{}
	bp := telemetry.NewBatchProcessor(1024, time.Hour, c.collect)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("partial"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.count())

	bp.Flush()
	require.Equal(t, 1, c.count())
	assert.Equal(t, []byte("partial"), c.batches[0])
}

func TestBatchProcessor_CloseFlushesAndRejectsWrites(t *testing.T) {
	c := &flushCollector{}
	bp := telemetry.NewBatchProcessor(1024, time.Hour, c.collect)

	_, err := bp.Write([]byte("tail"))
	require.NoError(t, err)

	require.NoError(t, bp.Close())
	require.Equal(t, 1, c.count())

	_, err = bp.Write([]byte("late"))
	require.Error(t, err)

	// Closing twice is fine.
	require.NoError(t, bp.Close())
}

func TestBatchProcessor_EmptyFlushIsSilent(t *testing.T) {
	c := &flushCollector{}
	bp := telemetry.NewBatchProcessor(1024, time.Hour, c.collect)
	defer func() { _ = bp.Close() }()

	bp.Flush()
	assert.Equal(t, 0, c.count())
}
