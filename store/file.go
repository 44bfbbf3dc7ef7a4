package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/biharidelicacies/marketplace-api/models"
	"go.uber.org/zap"
)

// FileStore keeps each collection as one JSON array file, rewritten whole on every mutation.
//
// Without locking, two concurrent Inserts on one collection can both read the same
// array and the later write wins (lost update). With locking, Inserts on the same
// collection are serialised; WriteAll callers still race with each other.
type FileStore struct {
	dir     string
	locking bool
	log     *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string, locking bool, log *zap.SugaredLogger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{
		dir:     dir,
		locking: locking,
		log:     log,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) Backend() string { return BackendFile }

func (s *FileStore) Close(context.Context) error { return nil }

// Path is the file backing a collection.
func (s *FileStore) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) ReadAll(_ context.Context, collection string) ([]models.Record, error) {
	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warnw("failed to read collection, treating as empty", "collection", collection, "error", err)
		}
		return []models.Record{}, nil
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warnw("malformed collection file, treating as empty", "collection", collection, "error", err)
		return []models.Record{}, nil
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

func (s *FileStore) WriteAll(_ context.Context, collection string, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.Path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// Insert assigns max(id)+1. Ids are stored as JSON numbers and kept as float64 so the
// returned record matches what a later read decodes.
func (s *FileStore) Insert(ctx context.Context, collection string, rec models.Record) (models.Record, error) {
	if s.locking {
		l := s.collectionLock(collection)
		l.Lock()
		defer l.Unlock()
	}

	records, _ := s.ReadAll(ctx, collection)
	out := rec.Clone()
	out[models.IDField] = float64(nextID(records))

	if err := s.WriteAll(ctx, collection, append(records, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FileStore) FindOne(ctx context.Context, collection string, pred func(models.Record) bool) (models.Record, error) {
	records, _ := s.ReadAll(ctx, collection)
	return findIn(records, pred), nil
}

func (s *FileStore) collectionLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}
