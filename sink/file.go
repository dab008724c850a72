package sink

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// writerBackend is whichever of syncWriter/asyncWriter is backing a
// FileSink, picked once at construction per Config.Async.
type writerBackend interface {
	writeLine(s string) error
	flush() error
}

// FileSink writes formatted lines to a rotating, optionally compressed
// and retained log file.
type FileSink struct {
	cfg Config

	mu      sync.Mutex // guards file/backend swap during rotation
	file    *os.File
	backend writerBackend

	currentSize          atomic.Uint64
	nextRotationBoundary atomic.Int64 // epoch millis, 0 = no boundary
	currentFileTime      struct {
		mu sync.Mutex
		t  time.Time
	}
}

// New opens (creating parent directories as needed) and returns a
// FileSink for cfg. I/O errors on open propagate here.
func New(cfg Config) (*FileSink, error) {
	if parent := filepath.Dir(cfg.Path); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, wrapf("failed to create log directory "+parent, err)
		}
	}

	var startSize uint64
	if info, err := os.Stat(cfg.Path); err == nil {
		startSize = uint64(info.Size())
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, wrapf("failed to open log file "+cfg.Path, err)
	}

	s := &FileSink{cfg: cfg, file: f}
	s.currentSize.Store(startSize)

	if cfg.Async {
		s.backend = newAsyncWriter(f)
	} else {
		s.backend = newSyncWriter(f)
	}

	now := time.Now()
	s.currentFileTime.t = now
	s.storeBoundary(now)

	return s, nil
}

func (s *FileSink) storeBoundary(from time.Time) {
	boundary := nextRotationBoundary(s.cfg.Rotation, from)
	if boundary.IsZero() {
		s.nextRotationBoundary.Store(0)
	} else {
		s.nextRotationBoundary.Store(boundary.UnixMilli())
	}
}

// Write appends message as a line, rotating first if the rotation
// policy requires it.
func (s *FileSink) Write(message string) error {
	if err := s.maybeRotate(); err != nil {
		return err
	}

	s.mu.Lock()
	backend := s.backend
	s.mu.Unlock()

	if err := backend.writeLine(message); err != nil {
		return err
	}
	s.currentSize.Add(uint64(len(message)) + 1)
	return nil
}

// Flush flushes any buffered or queued writes.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	backend := s.backend
	s.mu.Unlock()
	return backend.flush()
}

// Close flushes and releases the sink's resources, joining the
// background writer goroutine if running asynchronously.
func (s *FileSink) Close() error {
	if aw, ok := s.backend.(*asyncWriter); ok {
		aw.shutdown()
	} else {
		_ = s.backend.flush()
	}
	return s.file.Close()
}

func (s *FileSink) maybeRotate() error {
	if s.cfg.Rotation == Never && s.cfg.MaxSize == 0 {
		return nil
	}
	if s.rotationNeeded() {
		return s.rotate()
	}
	return nil
}

func (s *FileSink) rotationNeeded() bool {
	if s.cfg.MaxSize > 0 && s.currentSize.Load() >= s.cfg.MaxSize {
		return true
	}
	boundary := s.nextRotationBoundary.Load()
	if boundary > 0 {
		return time.Now().UnixMilli() >= boundary
	}
	return false
}

func (s *FileSink) rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rotatedPath := s.rotatedPath(now)

	// Stop the current backend, and its background goroutine if async,
	// before the rename: an async writer still draining queued lines
	// into the file after it's renamed would race compressFile's read
	// and the subsequent removal of the uncompressed original.
	if aw, ok := s.backend.(*asyncWriter); ok {
		aw.shutdown()
	} else if err := s.backend.flush(); err != nil {
		return err
	}
	_ = s.file.Close()

	if _, err := os.Stat(s.cfg.Path); err == nil {
		if err := os.Rename(s.cfg.Path, rotatedPath); err != nil {
			return wrapf("failed to rename rotated log file", err)
		}
		if s.cfg.Compression {
			if err := compressFile(rotatedPath); err != nil {
				return wrapf("failed to compress rotated log file", err)
			}
		}
	}

	if err := applyRetention(s.cfg.Path, s.cfg.RetentionDays, s.cfg.RetentionCount); err != nil {
		return err
	}

	if err := s.reopen(); err != nil {
		return err
	}

	s.currentSize.Store(0)
	s.currentFileTime.mu.Lock()
	s.currentFileTime.t = now
	s.currentFileTime.mu.Unlock()
	s.storeBoundary(now)

	return nil
}

// reopen re-creates the sink's file descriptor and backend at the
// current path. Called once the prior backend has already been
// stopped (flushed, and joined if async) and the old file closed;
// relying on descriptor aliasing across a rename is not portable, so
// the writer is rebuilt against a freshly opened file.
func (s *FileSink) reopen() error {
	f, err := os.OpenFile(s.cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return wrapf("failed to reopen log file after rotation", err)
	}

	s.file = f
	if s.cfg.Async {
		s.backend = newAsyncWriter(f)
	} else {
		s.backend = newSyncWriter(f)
	}
	return nil
}

func (s *FileSink) rotatedPath(t time.Time) string {
	ext := filepath.Ext(s.cfg.Path)
	stem := s.cfg.Path[:len(s.cfg.Path)-len(ext)]
	if ext == "" {
		ext = ".log"
		stem = s.cfg.Path
	}
	timestamp := t.Format("2006-01-02_15-04-05")
	return stem + "." + timestamp + ext
}
