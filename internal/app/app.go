package app

import (
	"database/sql"
	"fmt"

	"github.com/AmanYaqoob/SocialPayX/internal/config"
	"github.com/AmanYaqoob/SocialPayX/internal/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	Config *config.Config
	DB     *sql.DB
}

func New(cfg *config.Config) (*App, error) {
	db, err := initDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := postgres.New(db).Bootstrap(); err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     db,
	}, nil
}

func initDB(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		err := db.Close()
		if err != nil {
			return nil, fmt.Errorf("error closing database after ping failure: %w", err)
		}
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}
