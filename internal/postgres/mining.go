package postgres

import (
	"fmt"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

// StartMining opens a session. The is_mining guard makes the check-then-set
// atomic: a concurrent start loses the race and reports ErrAlreadyMining.
func (p *Postgres) StartMining(userID int64, rate float64, startedAt time.Time) error {
	result, err := p.DB.Exec(
		`UPDATE users SET is_mining = TRUE, mining_started_at = $1, mining_rate = $2
		 WHERE id = $3 AND NOT is_mining`,
		startedAt, rate, userID,
	)
	if err != nil {
		return fmt.Errorf("error starting mining session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for mining start: %w", err)
	}
	if rowsAffected == 0 {
		logger.Log.Warn("mining already active", logger.Int64("user_id", userID))
		return domain.ErrAlreadyMining
	}

	return nil
}

// SettleMining credits the earnings of the session opened at startedAt and
// closes it. The mining_started_at equality guard is a compare-and-swap: if a
// concurrent stop or restart already settled the session, zero rows match and
// the caller gets ErrNotMining instead of a double credit.
func (p *Postgres) SettleMining(userID int64, earnings float64, startedAt, claimedAt time.Time) error {
	result, err := p.DB.Exec(
		`UPDATE users SET balance = balance + $1, total_mined = total_mined + $1,
			is_mining = FALSE, mining_started_at = NULL, last_claim_at = $2
		 WHERE id = $3 AND is_mining AND mining_started_at = $4`,
		earnings, claimedAt, userID, startedAt,
	)
	if err != nil {
		return fmt.Errorf("error settling mining session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for mining settlement: %w", err)
	}
	if rowsAffected == 0 {
		logger.Log.Warn("mining session already settled", logger.Int64("user_id", userID))
		return domain.ErrNotMining
	}

	return nil
}

// UpdateMiningRate refreshes the stored rate from the referral count. The
// NOT is_mining guard keeps a running session's rate frozen at its start value.
func (p *Postgres) UpdateMiningRate(userID int64, rate float64) error {
	_, err := p.DB.Exec("UPDATE users SET mining_rate = $1 WHERE id = $2 AND NOT is_mining", rate, userID)
	if err != nil {
		return fmt.Errorf("error updating mining rate: %w", err)
	}

	return nil
}
