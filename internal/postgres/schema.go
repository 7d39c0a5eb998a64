package postgres

import "fmt"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                   BIGSERIAL PRIMARY KEY,
		email                TEXT NOT NULL UNIQUE,
		username             TEXT NOT NULL UNIQUE,
		password             TEXT NOT NULL,
		is_active            BOOLEAN NOT NULL DEFAULT TRUE,
		is_admin             BOOLEAN NOT NULL DEFAULT FALSE,
		balance              DOUBLE PRECISION NOT NULL DEFAULT 0,
		mining_rate          DOUBLE PRECISION NOT NULL DEFAULT 0.1,
		is_mining            BOOLEAN NOT NULL DEFAULT FALSE,
		mining_started_at    TIMESTAMPTZ,
		total_mined          DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_claim_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		kyc_status           TEXT NOT NULL DEFAULT 'none',
		kyc_tid              TEXT NOT NULL DEFAULT '',
		kyc_submitted_at     TIMESTAMPTZ,
		kyc_rejection_reason TEXT NOT NULL DEFAULT '',
		referral_code        TEXT NOT NULL UNIQUE,
		referred_by          BIGINT REFERENCES users (id),
		registered_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS users_referred_by_idx ON users (referred_by)`,
	`CREATE TABLE IF NOT EXISTS withdrawals (
		id           TEXT PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users (id),
		amount       DOUBLE PRECISION NOT NULL,
		address      TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'pending',
		requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		resolved_at  TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS withdrawals_status_idx ON withdrawals (status)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id                    SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		kyc_enabled           BOOLEAN NOT NULL DEFAULT TRUE,
		mining_enabled        BOOLEAN NOT NULL DEFAULT TRUE,
		withdrawals_enabled   BOOLEAN NOT NULL DEFAULT TRUE,
		referral_enabled      BOOLEAN NOT NULL DEFAULT TRUE,
		min_claim_amount      DOUBLE PRECISION NOT NULL DEFAULT 1,
		daily_mining_limit    DOUBLE PRECISION NOT NULL DEFAULT 24,
		kyc_usdt_amount       DOUBLE PRECISION NOT NULL DEFAULT 10,
		usdt_wallet_address   TEXT NOT NULL DEFAULT 'TYourUSDTWalletAddressHere',
		min_withdrawal_amount DOUBLE PRECISION NOT NULL DEFAULT 10,
		withdrawal_fee        DOUBLE PRECISION NOT NULL DEFAULT 0.1,
		referral_commission   DOUBLE PRECISION NOT NULL DEFAULT 0.1,
		maintenance_mode      BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		content      TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT 'general',
		priority     TEXT NOT NULL DEFAULT 'medium',
		is_published BOOLEAN NOT NULL DEFAULT TRUE,
		published_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		author_id    BIGINT REFERENCES users (id),
		image_url    TEXT NOT NULL DEFAULT '',
		views        BIGINT NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS news_published_at_idx ON news (published_at DESC)`,
}

// Bootstrap creates the tables on a fresh database. Statements are idempotent
// so startup on an existing database is a no-op.
func (p *Postgres) Bootstrap() error {
	for _, stmt := range schema {
		if _, err := p.DB.Exec(stmt); err != nil {
			return fmt.Errorf("error bootstrapping schema: %w", err)
		}
	}

	return nil
}
