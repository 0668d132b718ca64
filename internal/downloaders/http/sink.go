package rawhttp

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tanq16/rawget/internal/utils"
)

// Sink receives the payload. Nothing is visible at the final path until
// Commit succeeds; Close after a failed or missing Commit discards the data.
type Sink interface {
	Write(p []byte) (int, error)
	Commit() error
	Close() error
}

type SinkFactory interface {
	Create(path, jobID string) (Sink, error)
}

// FileSinks writes to a part file under the temp directory next to the
// output path and renames it into place on commit. An existing file at the
// output path is replaced.
type FileSinks struct{}

func (FileSinks) Create(path, jobID string) (Sink, error) {
	tempDir := utils.TempDir(path)
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, &SinkError{Path: path, Op: "creating temp directory for", Err: err}
	}
	partPath := filepath.Join(tempDir, fmt.Sprintf("%s.%s%s", filepath.Base(path), jobID, utils.PartSuffix))
	file, err := os.OpenFile(partPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, &SinkError{Path: path, Op: "creating", Err: err}
	}
	return &fileSink{
		path:     path,
		partPath: partPath,
		file:     file,
		buf:      bufio.NewWriter(file),
	}, nil
}

type fileSink struct {
	path      string
	partPath  string
	file      *os.File
	buf       *bufio.Writer
	closed    bool
	committed bool
}

func (s *fileSink) Write(p []byte) (int, error) {
	n, err := s.buf.Write(p)
	if err != nil {
		return n, &SinkError{Path: s.path, Op: "writing", Err: err}
	}
	return n, nil
}

func (s *fileSink) Commit() error {
	if err := s.buf.Flush(); err != nil {
		return &SinkError{Path: s.path, Op: "flushing", Err: err}
	}
	if err := s.file.Sync(); err != nil {
		return &SinkError{Path: s.path, Op: "syncing", Err: err}
	}
	s.closed = true
	if err := s.file.Close(); err != nil {
		return &SinkError{Path: s.path, Op: "closing", Err: err}
	}
	if err := os.Rename(s.partPath, s.path); err != nil {
		return &SinkError{Path: s.path, Op: "finalizing", Err: err}
	}
	s.committed = true
	removeIfEmpty(filepath.Dir(s.partPath))
	return nil
}

func (s *fileSink) Close() error {
	if s.committed {
		return nil
	}
	var errs []error
	if !s.closed {
		s.closed = true
		errs = append(errs, s.file.Close())
	}
	if err := os.Remove(s.partPath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	removeIfEmpty(filepath.Dir(s.partPath))
	return errors.Join(errs...)
}

func removeIfEmpty(dir string) {
	if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
		os.Remove(dir)
	}
}
