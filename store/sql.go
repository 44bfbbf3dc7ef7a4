package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// recordRow is one record of any collection; the body is the record as JSON.
type recordRow struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Collection string `gorm:"size:64;not null;uniqueIndex:idx_collection_record"`
	RecordID   int64  `gorm:"not null;uniqueIndex:idx_collection_record"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (recordRow) TableName() string { return "records" }

// SQLStore keeps every collection in a single gorm-managed "records" table.
// Ids follow the flat-file rule: max(record_id)+1 per collection.
type SQLStore struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewSQLStore opens driver "postgres" (dsn = DATABASE_URL) or "sqlite" (dsn = file path).
func NewSQLStore(driver, dsn string, log *zap.SugaredLogger) (*SQLStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("SQL_DRIVER=postgres requires DATABASE_URL")
		}
		dialector = postgres.Open(dsn)
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported SQL_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("migrate records table: %w", err)
	}

	log.Infow("SQL record store ready", "driver", driver)
	return &SQLStore{db: db, log: log}, nil
}

func (s *SQLStore) Backend() string { return BackendSQL }

func (s *SQLStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) ReadAll(ctx context.Context, collection string) ([]models.Record, error) {
	var rows []recordRow
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("record_id ASC").
		Find(&rows).Error; err != nil {
		s.log.Warnw("failed to read collection, treating as empty", "collection", collection, "error", err)
		return []models.Record{}, nil
	}

	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		var rec models.Record
		if err := json.Unmarshal([]byte(row.Body), &rec); err != nil {
			s.log.Warnw("skipping malformed record", "collection", collection, "record_id", row.RecordID, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *SQLStore) WriteAll(ctx context.Context, collection string, records []models.Record) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&recordRow{}).Error; err != nil {
			return fmt.Errorf("clear %s: %w", collection, err)
		}
		if len(records) == 0 {
			return nil
		}

		next := nextID(records)
		rows := make([]recordRow, 0, len(records))
		for _, rec := range records {
			id, ok := models.IntID(rec.ID())
			if !ok {
				id = next
				next++
				rec = rec.Clone()
				rec[models.IDField] = float64(id)
			}
			body, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encode %s record: %w", collection, err)
			}
			rows = append(rows, recordRow{Collection: collection, RecordID: id, Body: string(body)})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("write %s: %w", collection, err)
		}
		return nil
	})
}

func (s *SQLStore) Insert(ctx context.Context, collection string, rec models.Record) (models.Record, error) {
	out := rec.Clone()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max int64
		if err := tx.Model(&recordRow{}).
			Where("collection = ?", collection).
			Select("COALESCE(MAX(record_id), 0)").
			Scan(&max).Error; err != nil {
			return err
		}

		id := max + 1
		out[models.IDField] = float64(id)
		body, err := json.Marshal(out)
		if err != nil {
			return err
		}
		return tx.Create(&recordRow{Collection: collection, RecordID: id, Body: string(body)}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return out, nil
}

func (s *SQLStore) FindOne(ctx context.Context, collection string, pred func(models.Record) bool) (models.Record, error) {
	records, _ := s.ReadAll(ctx, collection)
	return findIn(records, pred), nil
}
