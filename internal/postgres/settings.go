package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
)

const settingsColumns = `kyc_enabled, mining_enabled, withdrawals_enabled, referral_enabled,
	min_claim_amount, daily_mining_limit, kyc_usdt_amount, usdt_wallet_address,
	min_withdrawal_amount, withdrawal_fee, referral_commission, maintenance_mode`

// Settings returns the singleton settings row, inserting the defaults on
// first read.
func (p *Postgres) Settings() (*domain.Settings, error) {
	settings, err := p.scanSettings()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("error fetching settings: %w", err)
	}

	defaults := domain.DefaultSettings()
	if err := p.UpdateSettings(&defaults); err != nil {
		return nil, err
	}

	return &defaults, nil
}

func (p *Postgres) scanSettings() (*domain.Settings, error) {
	var s domain.Settings
	err := p.DB.QueryRow("SELECT " + settingsColumns + " FROM settings WHERE id = 1").Scan(
		&s.KYCEnabled, &s.MiningEnabled, &s.WithdrawalsEnabled, &s.ReferralEnabled,
		&s.MinClaimAmount, &s.DailyMiningLimit, &s.KYCUSDTAmount, &s.USDTWalletAddress,
		&s.MinWithdrawalAmount, &s.WithdrawalFee, &s.ReferralCommission, &s.MaintenanceMode,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (p *Postgres) UpdateSettings(s *domain.Settings) error {
	_, err := p.DB.Exec(
		`INSERT INTO settings (id, `+settingsColumns+`)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
			kyc_enabled = EXCLUDED.kyc_enabled,
			mining_enabled = EXCLUDED.mining_enabled,
			withdrawals_enabled = EXCLUDED.withdrawals_enabled,
			referral_enabled = EXCLUDED.referral_enabled,
			min_claim_amount = EXCLUDED.min_claim_amount,
			daily_mining_limit = EXCLUDED.daily_mining_limit,
			kyc_usdt_amount = EXCLUDED.kyc_usdt_amount,
			usdt_wallet_address = EXCLUDED.usdt_wallet_address,
			min_withdrawal_amount = EXCLUDED.min_withdrawal_amount,
			withdrawal_fee = EXCLUDED.withdrawal_fee,
			referral_commission = EXCLUDED.referral_commission,
			maintenance_mode = EXCLUDED.maintenance_mode`,
		s.KYCEnabled, s.MiningEnabled, s.WithdrawalsEnabled, s.ReferralEnabled,
		s.MinClaimAmount, s.DailyMiningLimit, s.KYCUSDTAmount, s.USDTWalletAddress,
		s.MinWithdrawalAmount, s.WithdrawalFee, s.ReferralCommission, s.MaintenanceMode,
	)
	if err != nil {
		return fmt.Errorf("error updating settings: %w", err)
	}

	return nil
}
