package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SnapshotDB persists named record collections in a local SQLite database.
// Each collection is stored wholesale as one JSON value under its key; every
// mutation rewrites the full value. There is no partial update and no
// migration scheme.
type SnapshotDB struct {
	db     *gorm.DB
	dbPath string
}

// Snapshot is one persisted collection
type Snapshot struct {
	Key       string    `gorm:"primaryKey"`
	Data      string    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open opens (or creates) the snapshot database at the given path.
// Use ":memory:" for an ephemeral store.
func Open(dbPath string) (*SnapshotDB, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// CGO-free SQLite driver
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if dbPath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}

	return &SnapshotDB{db: db, dbPath: dbPath}, nil
}

// Load reads the snapshot under key into out. The bool reports whether the
// key existed; absent keys are not an error so callers can fall back to
// seeded defaults.
func (s *SnapshotDB) Load(key string, out interface{}) (bool, error) {
	var snap Snapshot
	err := s.db.First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(snap.Data), out); err != nil {
		return false, fmt.Errorf("corrupt snapshot %q: %w", key, err)
	}
	return true, nil
}

// Save writes one collection under its key, replacing any previous value
func (s *SnapshotDB) Save(key string, value interface{}) error {
	return s.save(s.db, key, value)
}

// SaveAll writes several collections in a single transaction so that either
// all of them become visible or none do. Submit relies on this for its
// order+inventory commit.
func (s *SnapshotDB) SaveAll(values map[string]interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := s.save(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SnapshotDB) save(tx *gorm.DB, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %q: %w", key, err)
	}
	snap := Snapshot{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	return tx.Save(&snap).Error
}

// Close closes the underlying database connection
func (s *SnapshotDB) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
