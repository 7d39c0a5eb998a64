package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

// SubmitKYC records a payment proof and moves the account to pending review.
// The status guard keeps an approved account from being demoted by a resubmit.
func (p *Postgres) SubmitKYC(userID int64, tid string, submittedAt time.Time) error {
	result, err := p.DB.Exec(
		`UPDATE users SET kyc_tid = $1, kyc_status = 'pending', kyc_submitted_at = $2, kyc_rejection_reason = ''
		 WHERE id = $3 AND kyc_status <> 'approved'`,
		tid, submittedAt, userID,
	)
	if err != nil {
		return fmt.Errorf("error submitting kyc: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for kyc submission: %w", err)
	}
	if rowsAffected == 0 {
		logger.Log.Warn("kyc already approved", logger.Int64("user_id", userID))
		return domain.ErrKYCAlreadyApproved
	}

	return nil
}

// KYCSubmissions lists accounts that have submitted a payment proof,
// optionally filtered by review status.
func (p *Postgres) KYCSubmissions(status string) ([]domain.User, error) {
	query := `SELECT id, username, email, kyc_tid, kyc_submitted_at, kyc_status, kyc_rejection_reason
		 FROM users WHERE kyc_tid <> ''`
	args := []any{}
	if status != "" && status != "all" {
		query += " AND kyc_status = $1"
		args = append(args, status)
	}
	query += " ORDER BY kyc_submitted_at DESC"

	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching kyc submissions: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.KYCTID,
			&user.KYCSubmittedAt, &user.KYCStatus, &user.KYCRejectionReason,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning kyc submission: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over kyc submissions: %w", err)
	}

	return users, nil
}

func (p *Postgres) ReviewKYC(userID int64, status, rejectionReason string) error {
	result, err := p.DB.Exec(
		"UPDATE users SET kyc_status = $1, kyc_rejection_reason = $2 WHERE id = $3",
		status, rejectionReason, userID,
	)
	if err != nil {
		return fmt.Errorf("error reviewing kyc: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for kyc review: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
