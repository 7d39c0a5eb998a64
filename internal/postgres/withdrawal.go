package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

// CreateWithdrawal appends a pending request and locks the amount by debiting
// the balance in the same transaction. The balance >= amount guard rejects the
// debit atomically, so a second concurrent request cannot spend locked funds.
func (p *Postgres) CreateWithdrawal(id string, userID int64, amount float64, address string, requestedAt time.Time) error {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO withdrawals (id, user_id, amount, address, requested_at) VALUES ($1, $2, $3, $4, $5)",
		id, userID, amount, address, requestedAt,
	)
	if err != nil {
		rollback(tx)
		logger.Log.Error("error inserting withdrawal", logger.Float64("amount", amount), logger.Int64("user_id", userID), logger.Error(err))
		return fmt.Errorf("error inserting withdrawal: %w", err)
	}

	result, err := tx.Exec("UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1", amount, userID)
	if err != nil {
		rollback(tx)
		logger.Log.Error("error locking balance for withdrawal", logger.Float64("amount", amount), logger.Int64("user_id", userID), logger.Error(err))
		return fmt.Errorf("error locking balance for withdrawal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		rollback(tx)
		return fmt.Errorf("error checking rows affected for balance lock: %w", err)
	}
	if rowsAffected == 0 {
		rollback(tx)
		logger.Log.Warn("insufficient balance for withdrawal", logger.Float64("amount", amount), logger.Int64("user_id", userID))
		return domain.ErrInsufficientBalance
	}

	err = tx.Commit()
	if err != nil {
		rollback(tx)
		return fmt.Errorf("error committing withdrawal transaction: %w", err)
	}

	return nil
}

// ResolveWithdrawal performs the single pending -> approved/rejected
// transition. The status = 'pending' guard enforces exactly one resolution;
// rejection restores the locked amount in the same transaction.
func (p *Postgres) ResolveWithdrawal(userID int64, withdrawalID, status string, resolvedAt time.Time) error {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	var amount float64
	err = tx.QueryRow(
		`UPDATE withdrawals SET status = $1, resolved_at = $2
		 WHERE id = $3 AND user_id = $4 AND status = 'pending'
		 RETURNING amount`,
		status, resolvedAt, withdrawalID, userID,
	).Scan(&amount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			rollback(tx)
			return p.resolutionConflict(userID, withdrawalID)
		}
		rollback(tx)
		return fmt.Errorf("error resolving withdrawal: %w", err)
	}

	if status == domain.WithdrawalRejected {
		_, err = tx.Exec("UPDATE users SET balance = balance + $1 WHERE id = $2", amount, userID)
		if err != nil {
			rollback(tx)
			logger.Log.Error("error restoring balance for rejected withdrawal", logger.Float64("amount", amount), logger.Int64("user_id", userID), logger.Error(err))
			return fmt.Errorf("error restoring balance for rejected withdrawal: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		rollback(tx)
		return fmt.Errorf("error committing resolution transaction: %w", err)
	}

	return nil
}

func (p *Postgres) resolutionConflict(userID int64, withdrawalID string) error {
	var status string
	err := p.DB.QueryRow("SELECT status FROM withdrawals WHERE id = $1 AND user_id = $2", withdrawalID, userID).
		Scan(&status)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warn("withdrawal not found", logger.String("withdrawal_id", withdrawalID), logger.Int64("user_id", userID))
			return domain.ErrWithdrawalNotFound
		}
		return fmt.Errorf("error fetching withdrawal status: %w", err)
	}

	logger.Log.Warn("withdrawal already resolved", logger.String("withdrawal_id", withdrawalID), logger.String("status", status))
	return domain.ErrWithdrawalResolved
}

func (p *Postgres) Withdrawals(userID int64) ([]domain.Withdrawal, error) {
	rows, err := p.DB.Query(
		`SELECT id, user_id, amount, address, status, requested_at, resolved_at
		 FROM withdrawals WHERE user_id = $1 ORDER BY requested_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching withdrawals: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var withdrawal domain.Withdrawal
		err := rows.Scan(
			&withdrawal.ID, &withdrawal.UserID, &withdrawal.Amount, &withdrawal.Address,
			&withdrawal.Status, &withdrawal.RequestedAt, &withdrawal.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, withdrawal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over withdrawals: %w", err)
	}

	return withdrawals, nil
}

func (p *Postgres) WithdrawalsByStatus(status string) ([]domain.Withdrawal, error) {
	rows, err := p.DB.Query(
		`SELECT w.id, w.user_id, u.username, u.email, w.amount, w.address, w.status, w.requested_at, w.resolved_at
		 FROM withdrawals w JOIN users u ON u.id = w.user_id
		 WHERE w.status = $1 ORDER BY w.requested_at DESC`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching withdrawals by status: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var withdrawal domain.Withdrawal
		err := rows.Scan(
			&withdrawal.ID, &withdrawal.UserID, &withdrawal.Username, &withdrawal.Email,
			&withdrawal.Amount, &withdrawal.Address, &withdrawal.Status,
			&withdrawal.RequestedAt, &withdrawal.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, withdrawal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over withdrawals: %w", err)
	}

	return withdrawals, nil
}
