package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/playinterativas-design/UniPos/internal/config"
	"github.com/playinterativas-design/UniPos/internal/storage"
)

// Init abre o backend de persistência escolhido pelo STORAGE_DRIVER.
func Init(cfg *config.Config) storage.Backend {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("[FATAL] Não foi possível conectar ao Postgres: %v", err)
		}
		backend, err := storage.NewGormBackend(db)
		if err != nil {
			log.Fatalf("[FATAL] Falha na migração do armazenamento: %v", err)
		}
		return backend

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("[FATAL] Não foi possível conectar ao Redis: %v", err)
		}
		return storage.NewRedisBackend(client)

	default: // memory
		return storage.NewMemoryBackend()
	}
}
