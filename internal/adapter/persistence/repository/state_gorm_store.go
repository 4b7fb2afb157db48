package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cotizador/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stateEntry struct {
	Key       string `gorm:"column:state_key;primaryKey;size:191"`
	Value     []byte
	UpdatedAt time.Time
}

func (stateEntry) TableName() string { return "state_entries" }

// StateGormStore keeps the local state blobs in a SQL table (SQLite or Postgres).
type StateGormStore struct {
	db *gorm.DB
}

var _ interfaces.IKeyValueStore = (*StateGormStore)(nil)

// NewStateGormStore migrates the state table and returns the store.
func NewStateGormStore(db *gorm.DB) (*StateGormStore, error) {
	if err := db.AutoMigrate(&stateEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate state_entries: %w", err)
	}
	return &StateGormStore{db: db}, nil
}

func (s *StateGormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e stateEntry
	err := s.db.WithContext(ctx).Where("state_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return e.Value, true, nil
}

func (s *StateGormStore) Set(ctx context.Context, key string, value []byte) error {
	e := stateEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil && isStorageFullMessage(err.Error()) {
		return fmt.Errorf("%w: %v", interfaces.ErrStorageFull, err)
	}
	return err
}

func (s *StateGormStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("state_key = ?", key).Delete(&stateEntry{}).Error
}
