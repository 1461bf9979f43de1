package store

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Uma linha por coleção: a mesma semântica de chave → array JSON
// do restante dos drivers, com durabilidade do SQLite local.
type collectionRow struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}

func (collectionRow) TableName() string {
	return "collections"
}

type SQLiteKV struct {
	db *gorm.DB
}

func NewSQLiteKV(path string) (*SQLiteKV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var row collectionRow
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(row.Value), nil
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	row := collectionRow{Key: key, Value: string(value)}
	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
