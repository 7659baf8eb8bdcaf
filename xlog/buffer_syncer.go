package xlog

import (
	"io"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/lib/infra"
)

// xLogArena caches the logs contiguously, records keep the length of
// each cached log in the written order.
type xLogArena struct {
	mu      sync.Mutex
	buf     []byte
	wOffset uint64
	records []uint64
}

func (arena *xLogArena) size() uint64 {
	return uint64(len(arena.buf))
}

func (arena *xLogArena) release() {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	arena.buf = nil
	arena.records = nil
	arena.wOffset = 0
}

func (arena *xLogArena) cache(log []byte) bool {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	if arena.buf == nil {
		return false
	}
	if arena.wOffset+uint64(len(log)) > arena.size() {
		return false // Flush first
	}
	copy(arena.buf[arena.wOffset:], log)
	arena.wOffset += uint64(len(log))
	arena.records = append(arena.records, uint64(len(log)))
	return true
}

// flush writes the cached logs one by one. The logs not written
// by the failure are kept for the next flush.
func (arena *xLogArena) flush(writer io.Writer) error {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	var offset uint64
	for i, length := range arena.records {
		if _, err := writer.Write(arena.buf[offset : offset+length]); err != nil {
			copy(arena.buf, arena.buf[offset:arena.wOffset])
			arena.wOffset -= offset
			arena.records = append(arena.records[:0], arena.records[i:]...)
			return err
		}
		offset += length
	}
	arena.wOffset = 0
	arena.records = arena.records[:0]
	return nil
}

var _ zapcore.WriteSyncer = (*XLogBufferSyncer)(nil)

// XLogBufferSyncer caches the logs in memory and flushes them to the
// out writer periodically, on Sync and on Stop.
type XLogBufferSyncer struct {
	outWriter     io.Writer
	flushInterval time.Duration
	arena         *xLogArena
	closeC        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

func NewXLogBufferSyncer(writer io.Writer, size uint64, flushInterval time.Duration) (*XLogBufferSyncer, error) {
	if writer == nil {
		return nil, infra.NewErrorStack("[xlog] nil buffer syncer out writer")
	}
	if size == 0 || flushInterval <= 0 {
		return nil, infra.NewErrorStack("[xlog] non-positive buffer syncer size or flush interval")
	}
	syncer := &XLogBufferSyncer{
		outWriter:     writer,
		flushInterval: flushInterval,
		arena: &xLogArena{
			buf:     make([]byte, size),
			records: make([]uint64, 0, 64),
		},
		closeC: make(chan struct{}),
	}
	syncer.wg.Add(1)
	go syncer.flushLoop()
	return syncer, nil
}

// Sync implements zapcore.WriteSyncer.
func (syncer *XLogBufferSyncer) Sync() error {
	return syncer.arena.flush(syncer.outWriter)
}

// Write implements zapcore.WriteSyncer.
// The log larger than the buffer or written after Stop bypasses the cache.
func (syncer *XLogBufferSyncer) Write(log []byte) (n int, err error) {
	if syncer.arena.cache(log) {
		return len(log), nil
	}
	if err = syncer.arena.flush(syncer.outWriter); err != nil {
		return 0, err
	}
	if syncer.arena.cache(log) {
		return len(log), nil
	}
	return syncer.outWriter.Write(log)
}

// Stop flushes the cached logs and stops the flush loop.
func (syncer *XLogBufferSyncer) Stop() (err error) {
	syncer.stopOnce.Do(func() {
		close(syncer.closeC)
		syncer.wg.Wait()
		err = syncer.Sync()
		syncer.arena.release()
	})
	return err
}

func (syncer *XLogBufferSyncer) flushLoop() {
	defer syncer.wg.Done()
	ticker := time.NewTicker(syncer.flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-syncer.closeC:
			return
		case <-ticker.C:
			_ = syncer.Sync()
		}
	}
}
