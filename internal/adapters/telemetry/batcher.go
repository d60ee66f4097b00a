// Package telemetry implements tracing and its bridge to the renderers.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultSizeLimit is the buffer size that forces a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the maximum age of buffered data.
	DefaultTimeLimit = 50 * time.Millisecond
)

// BatchProcessor buffers writes and hands them to a callback once a size
// or time limit is reached. Safe for concurrent use.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu     sync.Mutex
	buffer *bytes.Buffer
	ticker *time.Ticker
	stopCh chan struct{}
	closed bool
}

// NewBatchProcessor starts a batch processor. Non-positive limits fall
// back to the defaults. Close stops the background ticker.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	bp := &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		buffer:    new(bytes.Buffer),
		stopCh:    make(chan struct{}),
	}

	bp.ticker = time.NewTicker(timeLimit)
	go bp.run()

	return bp
}

// Write appends data to the buffer, flushing when the size limit is hit.
func (bp *BatchProcessor) Write(p []byte) (n int, err error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return 0, errors.New("batch processor is closed")
	}

	n, err = bp.buffer.Write(p)
	if err != nil {
		return n, err
	}

	if bp.buffer.Len() >= bp.sizeLimit {
		bp.flushLocked()
		// A size-triggered flush restarts the clock.
		bp.ticker.Reset(bp.timeLimit)
	}

	return n, nil
}

// Flush hands any buffered data to the callback immediately.
func (bp *BatchProcessor) Flush() {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.closed {
		return
	}
	bp.flushLocked()
}

// Close stops the background flusher after a final flush.
func (bp *BatchProcessor) Close() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return nil
	}

	bp.closed = true
	close(bp.stopCh)
	bp.flushLocked()
	return nil
}

func (bp *BatchProcessor) run() {
	for {
		select {
		case <-bp.ticker.C:
			bp.Flush()
		case <-bp.stopCh:
			bp.ticker.Stop()
			return
		}
	}
}

// flushLocked must be called with mu held. The callback runs under the
// lock to preserve chunk order, it must stay cheap.
func (bp *BatchProcessor) flushLocked() {
	if bp.buffer.Len() == 0 {
		return
	}

	data := make([]byte, bp.buffer.Len())
	copy(data, bp.buffer.Bytes())
	bp.buffer.Reset()

	if bp.onFlush != nil {
		bp.onFlush(data)
	}
}
