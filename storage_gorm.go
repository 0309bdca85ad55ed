package toolloop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ RunStore = &GormRunStore{}

// GormRunStore implements RunStore on a relational database.
type GormRunStore struct {
	db *gorm.DB
}

// NewRunStore opens the transcript database and migrates the schema. A
// postgres:// DSN selects the postgres driver; anything else is treated as a
// sqlite file path.
func NewRunStore(dsn string) (*GormRunStore, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &GormRunStore{db: db}, nil
}

// SaveRun inserts one transcript row. ID and CreatedAt are filled in when
// the caller left them empty.
func (s *GormRunStore) SaveRun(ctx context.Context, rec RunRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRuns returns transcript rows, newest first.
func (s *GormRunStore) GetRuns(ctx context.Context, limit int, offset int) ([]RunRecord, error) {
	var recs []RunRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return recs, nil
}
