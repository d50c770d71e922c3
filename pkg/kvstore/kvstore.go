package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Known keys. One row per key; the product list is the only value holding
// structured (JSON) content.
const (
	KeyTheme    = "nexlyn_theme"
	KeyProducts = "nexlyn_products"
	KeyWhatsApp = "nexlyn_wa"
	KeyAbout    = "nexlyn_about"
	KeyAddress  = "nexlyn_address"
	KeyMapURL   = "nexlyn_map_url"
)

// Entry is one persisted key/value row.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used by migrations.
func (Entry) TableName() string {
	return "kv_entries"
}

// Store is the durable key/value adapter backing settings and the catalog
// mirror. Reads of a missing key report found=false so callers can fall
// back to their compiled-in defaults.
type Store struct {
	db *gorm.DB
}

// New builds a store tied to the provided GORM DB.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm db required")
	}
	return &Store{db: db}, nil
}

// Load returns the stored value for key, reporting whether it existed.
func (s *Store) Load(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Save upserts a single key.
func (s *Store) Save(ctx context.Context, key, value string) error {
	return upsert(s.db.WithContext(ctx), key, value)
}

// SaveAll upserts every pair inside one transaction, so a group of related
// keys is either fully written or not written at all.
func (s *Store) SaveAll(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(tx *gorm.DB, key, value string) error {
	entry := Entry{Key: key, Value: value}
	res := tx.Model(&Entry{}).Where("key = ?", key).Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tx.Create(&entry).Error
	}
	return nil
}
