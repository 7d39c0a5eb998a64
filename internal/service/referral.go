package service

import (
	"github.com/AmanYaqoob/SocialPayX/internal/domain"
)

type referralRepository interface {
	UserByID(id int64) (*domain.User, error)
	ReferralCount(userID int64) (int64, error)
	ActiveReferralCount(userID int64) (int64, error)
	ReferredUsers(userID int64) ([]domain.ReferredUser, error)
}

type ReferralInfo struct {
	ReferralCode       string
	ReferralCount      int64
	ReferralCommission float64
	ReferralEnabled    bool
	ReferredUsers      []domain.ReferredUser
}

type ReferralStats struct {
	TotalReferrals  int64
	ActiveReferrals int64
}

type ReferralService struct {
	repo     referralRepository
	settings settingsRepository
}

func NewReferralService(repo referralRepository, settings settingsRepository) *ReferralService {
	return &ReferralService{
		repo:     repo,
		settings: settings,
	}
}

func (s *ReferralService) Info(userID int64) (*ReferralInfo, error) {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Settings()
	if err != nil {
		return nil, err
	}

	count, err := s.repo.ReferralCount(userID)
	if err != nil {
		return nil, err
	}

	referred, err := s.repo.ReferredUsers(userID)
	if err != nil {
		return nil, err
	}

	return &ReferralInfo{
		ReferralCode:       user.ReferralCode,
		ReferralCount:      count,
		ReferralCommission: settings.ReferralCommission,
		ReferralEnabled:    settings.ReferralEnabled,
		ReferredUsers:      referred,
	}, nil
}

func (s *ReferralService) Stats(userID int64) (*ReferralStats, error) {
	total, err := s.repo.ReferralCount(userID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.ActiveReferralCount(userID)
	if err != nil {
		return nil, err
	}

	return &ReferralStats{
		TotalReferrals:  total,
		ActiveReferrals: active,
	}, nil
}
