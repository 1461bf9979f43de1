package store

import (
	"fmt"

	"github.com/barbeariajosimar/booking-api/internal/config"
)

// Open escolhe o backend pelo STORAGE_DRIVER configurado.
func Open(cfg *config.Config) (KV, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return NewSQLiteKV(cfg.SQLitePath)
	case config.DriverFile:
		return NewFileKV(cfg.DataDir)
	case config.DriverRedis:
		return NewRedisKV(cfg.RedisAddr)
	case config.DriverMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("store: unknown storage driver %q", cfg.StorageDriver)
	}
}
