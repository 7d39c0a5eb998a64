package userhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/dto"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type UserService interface {
	Register(email, username, password, referralCode string) (string, *domain.User, error)
	Login(email, password string) (string, *domain.User, error)
	Profile(userID int64) (*domain.User, error)
	UpdateUsername(userID int64, username string) error
}

type UserHandler struct {
	srv UserService
}

func New(srv UserService) *UserHandler {
	return &UserHandler{
		srv: srv,
	}
}

func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var register dto.Register

	if err := json.NewDecoder(r.Body).Decode(&register); err != nil {
		logger.Log.Warn("error while decoding a register request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("error while closing request body", logger.Error(err))
			return
		}
	}(r.Body)

	if err := register.IsValid(); err != nil {
		logger.Log.Warn("invalid register fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := uh.srv.Register(register.Email, register.Username, register.Password, register.ReferralCode)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeAuthUser(w, user, http.StatusCreated)
}

func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var login dto.Login

	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		logger.Log.Warn("error while decoding a login request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("error while closing request body", logger.Error(err))
			return
		}
	}(r.Body)

	if err := login.IsValid(); err != nil {
		logger.Log.Warn("invalid login fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := uh.srv.Login(login.Email, login.Password)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			http.Error(w, "incorrect email or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeAuthUser(w, user, http.StatusOK)
}

func (uh *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := uh.srv.Profile(userID)
	if err != nil {
		logger.Log.Error("error while fetching profile", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Profile{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Balance:      user.Balance,
		TotalMined:   user.TotalMined,
		KYCStatus:    user.KYCStatus,
		ReferralCode: user.ReferralCode,
		IsAdmin:      user.IsAdmin,
		RegisteredAt: user.RegisteredAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding profile to JSON", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (uh *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var update dto.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Log.Warn("error while decoding a profile update request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	err = uh.srv.UpdateUsername(userID, update.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminImmutable) {
			http.Error(w, "admin username cannot be changed", http.StatusForbidden)
			return
		} else if errors.Is(err, domain.ErrUsernameTaken) {
			http.Error(w, "username already taken", http.StatusBadRequest)
			return
		}

		logger.Log.Error("error while updating profile", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeAuthUser(w http.ResponseWriter, user *domain.User, status int) {
	resp := dto.AuthUser{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Balance:      user.Balance,
		KYCStatus:    user.KYCStatus,
		IsAdmin:      user.IsAdmin,
		ReferralCode: user.ReferralCode,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding user to JSON", logger.Error(err))
		return
	}
}
