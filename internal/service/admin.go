package service

import (
	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type adminRepository interface {
	Users(limit, offset int64) ([]domain.User, []int64, int64, error)
	SetUserActive(userID int64, active bool) error
	UpdateSettings(s *domain.Settings) error
}

type UserPage struct {
	Users          []domain.User
	ReferralCounts []int64
	Page           int64
	Pages          int64
	Total          int64
}

type AdminService struct {
	repo     adminRepository
	settings settingsRepository
}

func NewAdminService(repo adminRepository, settings settingsRepository) *AdminService {
	return &AdminService{
		repo:     repo,
		settings: settings,
	}
}

func (s *AdminService) Users(page, limit int64) (*UserPage, error) {
	page, limit = normalizePage(page, limit)

	users, referralCounts, total, err := s.repo.Users(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:          users,
		ReferralCounts: referralCounts,
		Page:           page,
		Pages:          pageCount(total, limit),
		Total:          total,
	}, nil
}

func (s *AdminService) SetUserActive(userID int64, active bool) error {
	if err := s.repo.SetUserActive(userID, active); err != nil {
		return err
	}

	logger.Log.Info("user status updated", logger.Int64("user_id", userID), logger.Bool("is_active", active))

	return nil
}

func (s *AdminService) Settings() (*domain.Settings, error) {
	return s.settings.Settings()
}

func (s *AdminService) UpdateSettings(settings *domain.Settings) error {
	if err := s.repo.UpdateSettings(settings); err != nil {
		return err
	}

	logger.Log.Info("settings updated")

	return nil
}
