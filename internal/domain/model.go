package domain

import "time"

type User struct {
	ID                 int64
	Email              string
	Username           string
	Password           string
	IsActive           bool
	IsAdmin            bool
	Balance            float64
	MiningRate         float64
	IsMining           bool
	MiningStartedAt    *time.Time
	TotalMined         float64
	LastClaimAt        time.Time
	KYCStatus          string
	KYCTID             string
	KYCSubmittedAt     *time.Time
	KYCRejectionReason string
	ReferralCode       string
	ReferredBy         *int64
	RegisteredAt       time.Time
}

type Withdrawal struct {
	ID          string
	UserID      int64
	Username    string
	Email       string
	Amount      float64
	Address     string
	Status      string
	RequestedAt time.Time
	ResolvedAt  *time.Time
}

const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

const (
	KYCNone     = "none"
	KYCPending  = "pending"
	KYCApproved = "approved"
	KYCRejected = "rejected"
)

// Settings is the single mutable platform configuration row, created with
// these defaults on first read. It is passed explicitly into every operation
// it gates, never read through a global.
type Settings struct {
	KYCEnabled          bool
	MiningEnabled       bool
	WithdrawalsEnabled  bool
	ReferralEnabled     bool
	MinClaimAmount      float64
	DailyMiningLimit    float64
	KYCUSDTAmount       float64
	USDTWalletAddress   string
	MinWithdrawalAmount float64
	WithdrawalFee       float64
	ReferralCommission  float64
	MaintenanceMode     bool
}

func DefaultSettings() Settings {
	return Settings{
		KYCEnabled:          true,
		MiningEnabled:       true,
		WithdrawalsEnabled:  true,
		ReferralEnabled:     true,
		MinClaimAmount:      1,
		DailyMiningLimit:    24,
		KYCUSDTAmount:       10,
		USDTWalletAddress:   "TYourUSDTWalletAddressHere",
		MinWithdrawalAmount: 10,
		WithdrawalFee:       0.1,
		ReferralCommission:  0.1,
	}
}

type News struct {
	ID          int64
	Title       string
	Content     string
	Category    string
	Priority    string
	IsPublished bool
	PublishedAt time.Time
	AuthorID    *int64
	AuthorName  string
	ImageURL    string
	Views       int64
	CreatedAt   time.Time
}

type MiningStatus struct {
	IsMining        bool
	MiningStartedAt *time.Time
	CurrentEarnings float64
	MiningRate      float64
	Balance         float64
	TotalMined      float64
	MiningEnabled   bool
}

type ReferredUser struct {
	Username     string
	RegisteredAt time.Time
	TotalMined   float64
}
