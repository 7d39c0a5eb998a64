package postgres

import (
	"database/sql"

	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

const transactionRollbackError = "error rolling back transaction"

// unique_violation
const pgUniqueViolation = "23505"

type Postgres struct {
	DB *sql.DB
}

func New(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

func rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil {
		logger.Log.Error(transactionRollbackError, logger.Error(err))
	}
}
