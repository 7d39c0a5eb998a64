package service

import (
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
	"github.com/google/uuid"
)

// Wallet addresses are opaque strings; only length bounds are checked.
const (
	minAddressLength = 26
	maxAddressLength = 62
)

type walletRepository interface {
	UserByID(id int64) (*domain.User, error)
	CreateWithdrawal(id string, userID int64, amount float64, address string, requestedAt time.Time) error
	ResolveWithdrawal(userID int64, withdrawalID, status string, resolvedAt time.Time) error
	Withdrawals(userID int64) ([]domain.Withdrawal, error)
	WithdrawalsByStatus(status string) ([]domain.Withdrawal, error)
}

type WalletService struct {
	repo     walletRepository
	settings settingsRepository
	now      func() time.Time
}

func NewWalletService(repo walletRepository, settings settingsRepository) *WalletService {
	return &WalletService{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

func (s *WalletService) Balance(userID int64) (*domain.User, error) {
	return s.repo.UserByID(userID)
}

// RequestWithdrawal appends a pending request and locks the amount by debiting
// the balance immediately, before any administrator action. The debit is only
// reversed if the request is later rejected.
func (s *WalletService) RequestWithdrawal(userID int64, amount float64, address string) (*domain.Withdrawal, error) {
	settings, err := s.settings.Settings()
	if err != nil {
		return nil, err
	}
	if !settings.WithdrawalsEnabled {
		return nil, domain.ErrWithdrawalsDisabled
	}

	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return nil, domain.ErrInvalidAddress
	}

	if amount < settings.MinWithdrawalAmount {
		logger.Log.Warn("withdrawal below minimum", logger.Int64("user_id", userID), logger.Float64("amount", amount))
		return nil, domain.ErrBelowMinimum
	}

	withdrawal := &domain.Withdrawal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Address:     address,
		Status:      domain.WithdrawalPending,
		RequestedAt: s.now(),
	}

	if err := s.repo.CreateWithdrawal(withdrawal.ID, userID, amount, address, withdrawal.RequestedAt); err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal requested",
		logger.String("withdrawal_id", withdrawal.ID),
		logger.Int64("user_id", userID),
		logger.Float64("amount", amount),
	)

	return withdrawal, nil
}

// Resolve applies the administrator's decision. A request is resolved exactly
// once: the repository's status guard rejects a second resolution, and a
// rejection restores the locked amount to the balance.
func (s *WalletService) Resolve(userID int64, withdrawalID, decision string) error {
	if err := s.repo.ResolveWithdrawal(userID, withdrawalID, decision, s.now()); err != nil {
		return err
	}

	logger.Log.Info("withdrawal resolved",
		logger.String("withdrawal_id", withdrawalID),
		logger.Int64("user_id", userID),
		logger.String("decision", decision),
	)

	return nil
}

func (s *WalletService) Withdrawals(userID int64) ([]domain.Withdrawal, error) {
	return s.repo.Withdrawals(userID)
}

func (s *WalletService) WithdrawalsByStatus(status string) ([]domain.Withdrawal, error) {
	if status == "" {
		status = domain.WithdrawalPending
	}

	return s.repo.WithdrawalsByStatus(status)
}
