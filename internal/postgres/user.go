package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, email, username, password, is_active, is_admin, balance, mining_rate,
	is_mining, mining_started_at, total_mined, last_claim_at,
	kyc_status, kyc_tid, kyc_submitted_at, kyc_rejection_reason,
	referral_code, referred_by, registered_at`

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.Password, &user.IsActive, &user.IsAdmin,
		&user.Balance, &user.MiningRate, &user.IsMining, &user.MiningStartedAt,
		&user.TotalMined, &user.LastClaimAt,
		&user.KYCStatus, &user.KYCTID, &user.KYCSubmittedAt, &user.KYCRejectionReason,
		&user.ReferralCode, &user.ReferredBy, &user.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (p *Postgres) CreateUser(email, username, hashedPassword, referralCode string, referredBy *int64) (int64, error) {
	var id int64
	err := p.DB.QueryRow(
		`INSERT INTO users (email, username, password, referral_code, referred_by)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		email, username, hashedPassword, referralCode, referredBy,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Log.Warn("user already exists", logger.String("email", email), logger.String("username", username))
			return 0, domain.ErrUserExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

func (p *Postgres) UserByEmail(email string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE email = $1", email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

func (p *Postgres) UserByID(id int64) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

func (p *Postgres) UserByReferralCode(code string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE referral_code = $1", code)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user by referral code: %w", err)
	}

	return user, nil
}

func (p *Postgres) UpdateUsername(userID int64, username string) error {
	result, err := p.DB.Exec("UPDATE users SET username = $1 WHERE id = $2", username, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("error updating username: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for username update: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (p *Postgres) IsAdmin(userID int64) (bool, error) {
	var isAdmin bool
	err := p.DB.QueryRow("SELECT is_admin FROM users WHERE id = $1", userID).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrUserNotFound
		}
		return false, fmt.Errorf("error fetching admin flag: %w", err)
	}

	return isAdmin, nil
}

func (p *Postgres) ReferralCount(userID int64) (int64, error) {
	var count int64
	err := p.DB.QueryRow("SELECT COUNT(*) FROM users WHERE referred_by = $1", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting referrals: %w", err)
	}

	return count, nil
}

func (p *Postgres) ActiveReferralCount(userID int64) (int64, error) {
	var count int64
	err := p.DB.QueryRow("SELECT COUNT(*) FROM users WHERE referred_by = $1 AND is_mining", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active referrals: %w", err)
	}

	return count, nil
}

func (p *Postgres) ReferredUsers(userID int64) ([]domain.ReferredUser, error) {
	rows, err := p.DB.Query(
		`SELECT username, registered_at, total_mined
		 FROM users WHERE referred_by = $1 ORDER BY registered_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching referred users: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var users []domain.ReferredUser
	for rows.Next() {
		var user domain.ReferredUser
		err := rows.Scan(&user.Username, &user.RegisteredAt, &user.TotalMined)
		if err != nil {
			return nil, fmt.Errorf("error scanning referred user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over referred users: %w", err)
	}

	return users, nil
}

// IncrementMiningRate applies the referral bonus to the referrer's stored
// rate. An open session keeps the rate it was started with, so the update is
// skipped while mining; the count-based recompute at the next session start
// (or idle status refresh) carries the bonus instead.
func (p *Postgres) IncrementMiningRate(userID int64, delta float64) error {
	_, err := p.DB.Exec("UPDATE users SET mining_rate = mining_rate + $1 WHERE id = $2 AND NOT is_mining", delta, userID)
	if err != nil {
		return fmt.Errorf("error incrementing mining rate: %w", err)
	}

	return nil
}

func (p *Postgres) Users(limit, offset int64) ([]domain.User, []int64, int64, error) {
	var total int64
	if err := p.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return nil, nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	rows, err := p.DB.Query(
		`SELECT `+userColumns+`,
			(SELECT COUNT(*) FROM users r WHERE r.referred_by = u.id)
		 FROM users u ORDER BY registered_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error fetching users: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var users []domain.User
	var referralCounts []int64
	for rows.Next() {
		var user domain.User
		var referrals int64
		err := rows.Scan(
			&user.ID, &user.Email, &user.Username, &user.Password, &user.IsActive, &user.IsAdmin,
			&user.Balance, &user.MiningRate, &user.IsMining, &user.MiningStartedAt,
			&user.TotalMined, &user.LastClaimAt,
			&user.KYCStatus, &user.KYCTID, &user.KYCSubmittedAt, &user.KYCRejectionReason,
			&user.ReferralCode, &user.ReferredBy, &user.RegisteredAt,
			&referrals,
		)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
		referralCounts = append(referralCounts, referrals)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error iterating over users: %w", err)
	}

	return users, referralCounts, total, nil
}

func (p *Postgres) SetUserActive(userID int64, active bool) error {
	result, err := p.DB.Exec("UPDATE users SET is_active = $1 WHERE id = $2", active, userID)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for status update: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
