package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/logger"
	"github.com/osse101/InventarioBot_Go/internal/metrics"
)

// FileStore keeps the document in a single JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for path. The file and its parent
// directory are created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the file
func (s *FileStore) Load(ctx context.Context) (domain.Document, LoadState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewDocument(), LoadStateFresh, nil
	}
	if err != nil {
		recordRecovery(ctx, RecoveryReasonUnreadable, s.path, fmt.Errorf("%w: %w", domain.ErrUnreadableDocument, err))
		return domain.NewDocument(), LoadStateRecovered, nil
	}

	doc, err := decodeDocument(data)
	if err != nil {
		recordRecovery(ctx, RecoveryReasonDecode, s.path, err)
		return domain.NewDocument(), LoadStateRecovered, nil
	}
	return doc, LoadStateLoaded, nil
}

// Save writes doc to a temporary file in the same directory and renames it
// over the old one, so readers see either the previous or the new document.
func (s *FileStore) Save(ctx context.Context, doc domain.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return fmt.Errorf("failed to create inventory directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write inventory document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync inventory document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close inventory document: %w", err)
	}
	if err := os.Chmod(tmpName, FilePermission); err != nil {
		return fmt.Errorf("failed to set inventory document permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace inventory document %s: %w", s.path, err)
	}

	logger.FromContext(ctx).Debug(LogMsgDocumentSaved, "path", s.path, "bytes", len(data))
	return nil
}

// Ping checks that the directory holding the file is usable. A directory
// that does not exist yet is fine; Save creates it.
func (s *FileStore) Ping(ctx context.Context) error {
	info, err := os.Stat(filepath.Dir(s.path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inventory directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("inventory directory %s is not a directory", filepath.Dir(s.path))
	}
	return nil
}

func recordRecovery(ctx context.Context, reason, location string, err error) {
	metrics.DocumentRecoveries.WithLabelValues(reason).Inc()
	logger.FromContext(ctx).Warn(LogMsgDocumentRecovered,
		"reason", reason,
		"location", location,
		"error", err)
}
