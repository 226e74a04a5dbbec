package settings

import (
	"fmt"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Setting is one row of the application settings table, written by the
// admin surface and read here at startup.
type Setting struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:128;uniqueIndex"`
	Value string `gorm:"size:1024"`
}

// TableName implements the gorm table-name override.
func (Setting) TableName() string { return "settings" }

// DBStore is a Store backed by the settings table. The table is read into
// an in-memory cache so that resolution never touches the database on the
// hot path; Refresh reloads the cache.
type DBStore struct {
	db    *gorm.DB
	mu    sync.RWMutex
	cache map[string]string
}

// OpenDB opens a MySQL connection for a DBStore.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect settings database: %w", err)
	}
	return db, nil
}

// NewDBStore creates a DBStore and performs the initial load.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	s := &DBStore{db: db}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh reloads all settings from the database into the cache.
func (s *DBStore) Refresh() error {
	var rows []Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load settings table: %w", err)
	}

	cache := make(map[string]string, len(rows))
	for _, row := range rows {
		cache[row.Name] = row.Value
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()
	return nil
}

// Lookup implements Store.
func (s *DBStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.cache[key]
	return v, ok
}
