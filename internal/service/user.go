package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AmanYaqoob/SocialPayX/internal/config"
	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const referralCodeAttempts = 10

type UserRepository interface {
	CreateUser(email, username, hashedPassword, referralCode string, referredBy *int64) (int64, error)
	UserByEmail(email string) (*domain.User, error)
	UserByID(id int64) (*domain.User, error)
	UserByReferralCode(code string) (*domain.User, error)
	UpdateUsername(userID int64, username string) error
	IncrementMiningRate(userID int64, delta float64) error
}

type UserService struct {
	config *config.Config
	repo   UserRepository
}

func NewUserService(repo UserRepository, config *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		config: config,
	}
}

// Register creates an account with a fresh referral code. When a valid
// referral code is supplied the referrer's rate is bumped by the bonus
// exactly once; an unknown code is ignored rather than rejected.
func (s *UserService) Register(email, username, password, referralCode string) (string, *domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.Warn("error while hashing password")
		return "", nil, fmt.Errorf("error while hashing password: %w", err)
	}

	var referredBy *int64
	if referralCode != "" {
		referrer, err := s.repo.UserByReferralCode(referralCode)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		if referrer != nil {
			referredBy = &referrer.ID
		}
	}

	code, err := s.newReferralCode()
	if err != nil {
		return "", nil, err
	}

	userID, err := s.repo.CreateUser(email, username, string(hashedPassword), code, referredBy)
	if err != nil {
		return "", nil, err
	}

	if referredBy != nil {
		if err := s.repo.IncrementMiningRate(*referredBy, domain.ReferralBonus); err != nil {
			return "", nil, err
		}
		logger.Log.Info("referral bonus applied", logger.Int64("referrer_id", *referredBy), logger.Int64("user_id", userID))
	}

	token, err := generateJWTToken(userID, s.config.PrivateKey)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.UserByID(userID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *UserService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.repo.UserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			logger.Log.Warn("incorrect email", logger.String("email", email))
		}
		return "", nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		logger.Log.Warn("incorrect password", logger.String("email", email))
		return "", nil, domain.ErrIncorrectCredentials
	}

	token, err := generateJWTToken(user.ID, s.config.PrivateKey)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *UserService) Profile(userID int64) (*domain.User, error) {
	return s.repo.UserByID(userID)
}

// UpdateUsername renames the account. Admin accounts cannot be renamed.
func (s *UserService) UpdateUsername(userID int64, username string) error {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return err
	}

	if user.IsAdmin {
		return domain.ErrAdminImmutable
	}

	if username == "" || username == user.Username {
		return nil
	}

	return s.repo.UpdateUsername(userID, username)
}

func (s *UserService) newReferralCode() (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("error generating referral code: %w", err)
		}

		code := strings.ToUpper(hex.EncodeToString(buf))
		_, err := s.repo.UserByReferralCode(code)
		if errors.Is(err, domain.ErrUserNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("error generating referral code: no unique code found")
}

func generateJWTToken(userID int64, privateKey string) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signedToken, nil
}
