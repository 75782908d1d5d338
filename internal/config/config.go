package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	JWTSecret     string
	CORSOrigins   string
	StorageDriver string // postgres | redis | memory
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] Arquivo .env não encontrado, usando apenas variáveis de ambiente")
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=unipos port=5432 sslmode=disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET não definido! Obrigatório para rodar o servidor.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET precisa ter no mínimo 32 caracteres!")
	}
	switch cfg.StorageDriver {
	case "postgres", "redis", "memory":
	default:
		log.Fatalf("[FATAL] STORAGE_DRIVER %q desconhecido (use postgres, redis ou memory)", cfg.StorageDriver)
	}
	if cfg.StorageDriver == "memory" {
		log.Println("[WARN] STORAGE_DRIVER=memory: os dados não sobrevivem a um restart")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usando valor padrão, defina o domínio real em produção")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
