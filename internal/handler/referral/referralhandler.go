package referralhandler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/service"
	"github.com/AmanYaqoob/SocialPayX/pkg/dto"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type referralService interface {
	Info(userID int64) (*service.ReferralInfo, error)
	Stats(userID int64) (*service.ReferralStats, error)
}

type ReferralHandler struct {
	srv referralService
}

func New(srv referralService) *ReferralHandler {
	return &ReferralHandler{
		srv: srv,
	}
}

func (h ReferralHandler) Info(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	info, err := h.srv.Info(userID)
	if err != nil {
		logger.Log.Error("error while fetching referral info", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.ReferralInfo{
		ReferralCode:       info.ReferralCode,
		ReferralCount:      info.ReferralCount,
		ReferralCommission: info.ReferralCommission,
		ReferralEnabled:    info.ReferralEnabled,
		ReferredUsers:      make([]dto.ReferredUser, len(info.ReferredUsers)),
	}
	for i, user := range info.ReferredUsers {
		resp.ReferredUsers[i] = dto.ReferredUser{
			Username:     user.Username,
			RegisteredAt: user.RegisteredAt.Format(time.RFC3339),
			TotalMined:   user.TotalMined,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding referral info to JSON", logger.Int64("user_id", userID), logger.Error(err))
		return
	}
}

func (h ReferralHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	stats, err := h.srv.Stats(userID)
	if err != nil {
		logger.Log.Error("error while fetching referral stats", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.ReferralStats{
		TotalReferrals:  stats.TotalReferrals,
		ActiveReferrals: stats.ActiveReferrals,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding referral stats to JSON", logger.Int64("user_id", userID), logger.Error(err))
		return
	}
}
