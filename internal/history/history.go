// Package history persists a best-effort record of each search run (§4.8):
// query text, search root, file and match counts, and duration. It is
// supplementary — a search proceeds identically whether or not history is
// available.
//
// Grounded on the teacher's db.Connect/Migrate pair (db/sqlite.go,
// internal/db/migrate.go in the example pack) and models.Session, rebuilt
// around a single Run model instead of the teacher's stage/apply/session
// trio.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run records one completed search invocation.
type Run struct {
	ID         uint `gorm:"primaryKey"`
	Query      string
	Root       string
	FileCount  int
	MatchCount int
	DurationMS int64
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Store is a thin repository over the history database.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path, creating its parent
// directory and running migrations as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history db directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrating history db: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts a completed run.
func (s *Store) Record(r Run) error {
	return s.db.Create(&r).Error
}

// Recent returns the most recent limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("created_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
