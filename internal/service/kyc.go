package service

import (
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type kycRepository interface {
	UserByID(id int64) (*domain.User, error)
	SubmitKYC(userID int64, tid string, submittedAt time.Time) error
	KYCSubmissions(status string) ([]domain.User, error)
	ReviewKYC(userID int64, status, rejectionReason string) error
}

type KYCStatus struct {
	User     *domain.User
	Settings *domain.Settings
}

type KYCService struct {
	repo     kycRepository
	settings settingsRepository
	now      func() time.Time
}

func NewKYCService(repo kycRepository, settings settingsRepository) *KYCService {
	return &KYCService{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

// Submit records the payment transaction id and queues the account for
// review. Rejected submissions may be retried; approved ones may not.
func (s *KYCService) Submit(userID int64, tid string) (time.Time, error) {
	settings, err := s.settings.Settings()
	if err != nil {
		return time.Time{}, err
	}
	if !settings.KYCEnabled {
		return time.Time{}, domain.ErrKYCDisabled
	}

	submittedAt := s.now()
	if err := s.repo.SubmitKYC(userID, tid, submittedAt); err != nil {
		return time.Time{}, err
	}

	logger.Log.Info("kyc submitted", logger.Int64("user_id", userID))

	return submittedAt, nil
}

func (s *KYCService) Status(userID int64) (*KYCStatus, error) {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Settings()
	if err != nil {
		return nil, err
	}

	return &KYCStatus{User: user, Settings: settings}, nil
}

func (s *KYCService) Submissions(status string) ([]domain.User, error) {
	return s.repo.KYCSubmissions(status)
}

func (s *KYCService) Review(userID int64, status, rejectionReason string) error {
	if status != domain.KYCRejected {
		rejectionReason = ""
	}

	if err := s.repo.ReviewKYC(userID, status, rejectionReason); err != nil {
		return err
	}

	logger.Log.Info("kyc reviewed", logger.Int64("user_id", userID), logger.String("status", status))

	return nil
}
