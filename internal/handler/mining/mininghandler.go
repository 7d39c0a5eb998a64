package mininghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/dto"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type miningService interface {
	Start(userID int64) (*domain.User, error)
	Stop(userID int64) (float64, *domain.User, error)
	Status(userID int64) (*domain.MiningStatus, error)
}

type MiningHandler struct {
	srv miningService
}

func New(srv miningService) *MiningHandler {
	return &MiningHandler{
		srv: srv,
	}
}

func (h MiningHandler) Start(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.srv.Start(userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyMining) {
			http.Error(w, "mining already active", http.StatusBadRequest)
			return
		} else if errors.Is(err, domain.ErrMiningDisabled) {
			http.Error(w, "mining is currently disabled", http.StatusBadRequest)
			return
		}

		logger.Log.Error("error while starting mining", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.MiningStarted{
		MiningRate: user.MiningRate,
		IsMining:   user.IsMining,
	}
	if user.MiningStartedAt != nil {
		resp.MiningStartedAt = user.MiningStartedAt.Format(time.RFC3339Nano)
	}

	writeJSON(w, userID, resp)
}

func (h MiningHandler) Stop(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	earnings, user, err := h.srv.Stop(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotMining) {
			http.Error(w, "mining is not active", http.StatusBadRequest)
			return
		}

		logger.Log.Error("error while stopping mining", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.MiningStopped{
		Earnings:   earnings,
		NewBalance: user.Balance,
		TotalMined: user.TotalMined,
	}

	writeJSON(w, userID, resp)
}

func (h MiningHandler) Status(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status, err := h.srv.Status(userID)
	if err != nil {
		logger.Log.Error("error while fetching mining status", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.MiningStatus{
		IsMining:        status.IsMining,
		CurrentEarnings: status.CurrentEarnings,
		MiningRate:      status.MiningRate,
		Balance:         status.Balance,
		TotalMined:      status.TotalMined,
		MiningEnabled:   status.MiningEnabled,
	}
	if status.MiningStartedAt != nil {
		resp.MiningStartedAt = status.MiningStartedAt.Format(time.RFC3339Nano)
	}

	writeJSON(w, userID, resp)
}

func writeJSON(w http.ResponseWriter, userID int64, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding response to JSON", logger.Int64("user_id", userID), logger.Error(err))
		return
	}
}
