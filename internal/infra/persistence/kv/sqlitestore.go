package kv

import (
	"context"
	"log/slog"
	"time"

	"lokabumi/config"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is the persistence model for one key-value pair. The mobile
// original keeps its store in a SQLite database on device; this backend
// mirrors that layout.
type kvEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName overrides GORM's pluralized default.
func (kvEntry) TableName() string {
	return "kv_entries"
}

// sqliteStore implements Store over a single-table SQLite database.
type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite-backed store at path.
func NewSQLiteStore(path string, baseLogger *slog.Logger, cfg *config.Config) (Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormSlogLogger(baseLogger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite store")
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, errors.Wrap(err, "migrate kv_entries")
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "read key %q", key)
	}

	return entry.Value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "write key %q", key)
	}

	return nil
}

func (s *sqliteStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&kvEntry{}).Error; err != nil {
		return errors.Wrapf(err, "remove key %q", key)
	}

	return nil
}

func (s *sqliteStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.db.WithContext(ctx).Model(&kvEntry{}).Pluck("key", &keys).Error; err != nil {
		return nil, errors.Wrap(err, "list keys")
	}

	return keys, nil
}
