package dto

type Settings struct {
	KYCEnabled          bool    `json:"kyc_enabled"`
	MiningEnabled       bool    `json:"mining_enabled"`
	WithdrawalsEnabled  bool    `json:"withdrawals_enabled"`
	ReferralEnabled     bool    `json:"referral_enabled"`
	MinClaimAmount      float64 `json:"min_claim_amount"`
	DailyMiningLimit    float64 `json:"daily_mining_limit"`
	KYCUSDTAmount       float64 `json:"kyc_usdt_amount"`
	USDTWalletAddress   string  `json:"usdt_wallet_address"`
	MinWithdrawalAmount float64 `json:"min_withdrawal_amount"`
	WithdrawalFee       float64 `json:"withdrawal_fee"`
	ReferralCommission  float64 `json:"referral_commission"`
	MaintenanceMode     bool    `json:"maintenance_mode"`
}

// PublicSettings is the unauthenticated subset served to the SPA before login.
type PublicSettings struct {
	KYCEnabled         bool    `json:"kyc_enabled"`
	MiningEnabled      bool    `json:"mining_enabled"`
	ReferralEnabled    bool    `json:"referral_enabled"`
	WithdrawalsEnabled bool    `json:"withdrawals_enabled"`
	USDTWalletAddress  string  `json:"usdt_wallet_address"`
	KYCUSDTAmount      float64 `json:"kyc_usdt_amount"`
}

type Profile struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Balance      float64 `json:"spx_balance"`
	TotalMined   float64 `json:"total_mined"`
	KYCStatus    string  `json:"kyc_status"`
	ReferralCode string  `json:"referral_code"`
	IsAdmin      bool    `json:"is_admin"`
	RegisteredAt string  `json:"registered_at"`
}

type ProfileUpdate struct {
	Username string `json:"username"`
}
