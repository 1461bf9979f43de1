package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Drivers de armazenamento aceitos em STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	ServerPort    string
	JWTSecret     string
	OwnerPassword string

	StorageDriver string
	SQLitePath    string
	DataDir       string
	RedisAddr     string

	ShopTimezone string
}

func Load() *Config {
	// Em produção as variáveis vêm do ambiente; o .env é só conveniência local.
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		OwnerPassword: getEnv("OWNER_PASSWORD", "admin123"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:    getEnv("SQLITE_PATH", "barbearia.db"),
		DataDir:       getEnv("DATA_DIR", "data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		ShopTimezone:  getEnv("SHOP_TIMEZONE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
