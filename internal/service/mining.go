package service

import (
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type miningRepository interface {
	UserByID(id int64) (*domain.User, error)
	ReferralCount(userID int64) (int64, error)
	StartMining(userID int64, rate float64, startedAt time.Time) error
	SettleMining(userID int64, earnings float64, startedAt, claimedAt time.Time) error
	UpdateMiningRate(userID int64, rate float64) error
}

type settingsRepository interface {
	Settings() (*domain.Settings, error)
}

type MiningService struct {
	repo     miningRepository
	settings settingsRepository
	now      func() time.Time
}

func NewMiningService(repo miningRepository, settings settingsRepository) *MiningService {
	return &MiningService{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

// Start opens a mining session. The accrual rate is recomputed from the
// referral count and snapshotted onto the account; it stays frozen for the
// whole session.
func (s *MiningService) Start(userID int64) (*domain.User, error) {
	settings, err := s.settings.Settings()
	if err != nil {
		return nil, err
	}
	if !settings.MiningEnabled {
		return nil, domain.ErrMiningDisabled
	}

	referrals, err := s.repo.ReferralCount(userID)
	if err != nil {
		return nil, err
	}

	rate := domain.MiningRate(referrals)
	startedAt := s.now()

	if err := s.repo.StartMining(userID, rate, startedAt); err != nil {
		return nil, err
	}

	logger.Log.Info("mining started", logger.Int64("user_id", userID), logger.Float64("rate", rate))

	return s.repo.UserByID(userID)
}

// Stop settles the open session: elapsed earnings are credited to the balance
// and the lifetime total, and the session is closed. This is the only path
// that converts accrued time into spendable balance.
func (s *MiningService) Stop(userID int64) (float64, *domain.User, error) {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return 0, nil, err
	}

	if !user.IsMining || user.MiningStartedAt == nil {
		return 0, nil, domain.ErrNotMining
	}

	claimedAt := s.now()
	earnings := domain.Earnings(*user.MiningStartedAt, claimedAt, user.MiningRate)

	if err := s.repo.SettleMining(userID, earnings, *user.MiningStartedAt, claimedAt); err != nil {
		return 0, nil, err
	}

	logger.Log.Info("mining stopped", logger.Int64("user_id", userID), logger.Float64("earnings", earnings))

	user, err = s.repo.UserByID(userID)
	if err != nil {
		return 0, nil, err
	}

	return earnings, user, nil
}

// Status reports the live session state without mutating it. The stored rate
// is refreshed from the referral count only while no session is open, so a
// running session keeps the rate it started with.
func (s *MiningService) Status(userID int64) (*domain.MiningStatus, error) {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Settings()
	if err != nil {
		return nil, err
	}

	referrals, err := s.repo.ReferralCount(userID)
	if err != nil {
		return nil, err
	}

	rate := user.MiningRate
	if !user.IsMining {
		rate = domain.MiningRate(referrals)
		if rate != user.MiningRate {
			if err := s.repo.UpdateMiningRate(userID, rate); err != nil {
				return nil, err
			}
		}
	}

	status := &domain.MiningStatus{
		IsMining:        user.IsMining,
		MiningStartedAt: user.MiningStartedAt,
		MiningRate:      rate,
		Balance:         user.Balance,
		TotalMined:      user.TotalMined,
		MiningEnabled:   settings.MiningEnabled,
	}

	if user.IsMining && user.MiningStartedAt != nil {
		status.CurrentEarnings = domain.Earnings(*user.MiningStartedAt, s.now(), user.MiningRate)
	}

	return status, nil
}
