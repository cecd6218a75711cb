package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/helixcrm/console/pkg/config"
	"github.com/helixcrm/console/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one persisted key with a JSON-encoded value.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used for console state.
func (Entry) TableName() string {
	return "console_state"
}

// Store is the durable key-value state store backing theme and session slices.
// Values survive process restarts; keys are deleted synchronously.
type Store struct {
	conn *gorm.DB
}

// Open boots the sqlite-backed store at the configured path. ":memory:" is
// accepted for tests.
func Open(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrating state store: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "path", cfg.Path), "state store opened")
	}

	return &Store{conn: conn}, nil
}

// Get loads the value stored under key into dest. The boolean reports whether
// the key existed.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var entry Entry
	err := s.conn.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %q: %w", key, err)
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, fmt.Errorf("decoding %q: %w", key, err)
	}
	return true, nil
}

// Put persists value under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	entry := Entry{Key: key, Value: encoded}
	if err := s.conn.WithContext(ctx).Save(&entry).Error; err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.conn.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return fmt.Errorf("getting sql db handle: %w", err)
	}
	return sqlDB.Close()
}
