package app

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Nick/interview-assistant/internal/infra/config"
	"github.com/IT-Nick/interview-assistant/internal/infra/kv"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDatabase устанавливает подключение к базе данных
func InitDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}

// InitStorage открывает хранилище, выбранное в конфигурации.
// Для postgres возвращает пул, который нужно закрыть при остановке.
func InitStorage(ctx context.Context, cfg *config.Config) (kv.Store, *pgxpool.Pool, error) {
	const op = "app.InitStorage"

	switch cfg.Storage.Type {
	case config.StorageMemory:
		log.Println("Using in-memory storage, data will be lost on restart")
		return kv.NewMemoryStore(), nil, nil
	case config.StorageJSON:
		store, err := kv.NewJSONStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Printf("Using JSON file storage at %s", cfg.Storage.Path)
		return store, nil, nil
	case config.StoragePostgres:
		db, err := InitDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store := kv.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return store, db, nil
	default:
		return nil, nil, fmt.Errorf("%s: unknown storage type %q", op, cfg.Storage.Type)
	}
}
