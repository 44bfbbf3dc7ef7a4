// Package store persists schema-free records per collection behind one interface,
// with a flat-file, a MongoDB and a gorm (SQL) implementation.
package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/biharidelicacies/marketplace-api/config"
	"github.com/biharidelicacies/marketplace-api/models"
	"go.uber.org/zap"
)

// Backend names.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
	BackendSQL   = "sql"
)

// RecordStore is the persistence contract every handler depends on.
//
// ReadAll fails soft: a missing or unreadable collection is an empty one.
// FindOne returns (nil, nil) when nothing matches.
type RecordStore interface {
	ReadAll(ctx context.Context, collection string) ([]models.Record, error)
	WriteAll(ctx context.Context, collection string, records []models.Record) error
	Insert(ctx context.Context, collection string, rec models.Record) (models.Record, error)
	FindOne(ctx context.Context, collection string, pred func(models.Record) bool) (models.Record, error)
	Backend() string
	Close(ctx context.Context) error
}

// ByID matches records whose id renders to the given string.
func ByID(id string) func(models.Record) bool {
	return func(r models.Record) bool { return id != "" && r.IDString() == id }
}

// Open selects the backend named by cfg.StoreBackend. In auto mode MongoDB is
// preferred when MONGODB_URI is set and answers a ping; otherwise flat files are used.
func Open(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (RecordStore, error) {
	switch cfg.StoreBackend {
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("STORE_BACKEND=mongo requires MONGODB_URI")
		}
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoConnectTimeout, log)
	case BackendFile:
		return NewFileStore(cfg.DataDir, cfg.FileStoreLocking, log)
	case BackendSQL:
		dsn := cfg.DatabaseURL
		if cfg.SQLDriver == "sqlite" && dsn == "" {
			dsn = filepath.Join(cfg.DataDir, "app.db")
		}
		return NewSQLStore(cfg.SQLDriver, dsn, log)
	case "auto", "":
		if cfg.MongoURI != "" {
			s, err := NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoConnectTimeout, log)
			if err == nil {
				return s, nil
			}
			log.Warnw("MongoDB unreachable, falling back to flat files", "error", err)
		}
		return NewFileStore(cfg.DataDir, cfg.FileStoreLocking, log)
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

// nextID is max(existing integer ids)+1, or 1 for an empty collection. Holes are never reused.
func nextID(records []models.Record) int64 {
	var max int64
	for _, r := range records {
		if id, ok := models.IntID(r.ID()); ok && id > max {
			max = id
		}
	}
	return max + 1
}

func findIn(records []models.Record, pred func(models.Record) bool) models.Record {
	for _, r := range records {
		if pred(r) {
			return r
		}
	}
	return nil
}
