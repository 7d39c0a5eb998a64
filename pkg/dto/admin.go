package dto

type AdminUser struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	IsActive      bool    `json:"is_active"`
	IsAdmin       bool    `json:"is_admin"`
	Balance       float64 `json:"spx_balance"`
	MiningRate    float64 `json:"mining_rate"`
	IsMining      bool    `json:"is_mining"`
	TotalMined    float64 `json:"total_mined"`
	KYCStatus     string  `json:"kyc_status"`
	ReferralCode  string  `json:"referral_code"`
	ReferralCount int64   `json:"referral_count"`
	RegisteredAt  string  `json:"registered_at"`
}

type AdminUserPage struct {
	Users      []AdminUser `json:"users"`
	Pagination Pagination  `json:"pagination"`
}

type UserStatusUpdate struct {
	IsActive bool `json:"is_active"`
}

type AdminWithdrawal struct {
	ID          string  `json:"id"`
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Amount      float64 `json:"amount"`
	Address     string  `json:"address"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
}

type WithdrawalDecision struct {
	Status string `json:"status"`
}

type KYCReview struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

type KYCSubmissionEntry struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	TID         string `json:"kyc_tid"`
	SubmittedAt string `json:"kyc_submitted_at"`
	Status      string `json:"kyc_status"`
	Reason      string `json:"kyc_rejection_reason,omitempty"`
}
