package dto

type ReferralInfo struct {
	ReferralCode       string         `json:"referral_code"`
	ReferralCount      int64          `json:"referral_count"`
	ReferralCommission float64        `json:"referral_commission"`
	ReferralEnabled    bool           `json:"referral_enabled"`
	ReferredUsers      []ReferredUser `json:"referred_users"`
}

type ReferredUser struct {
	Username     string  `json:"username"`
	RegisteredAt string  `json:"registered_at"`
	TotalMined   float64 `json:"total_mined"`
}

type ReferralStats struct {
	TotalReferrals  int64 `json:"total_referrals"`
	ActiveReferrals int64 `json:"active_referrals"`
}
