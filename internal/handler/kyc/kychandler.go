package kychandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/internal/service"
	"github.com/AmanYaqoob/SocialPayX/pkg/dto"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type kycService interface {
	Submit(userID int64, tid string) (time.Time, error)
	Status(userID int64) (*service.KYCStatus, error)
}

type KYCHandler struct {
	srv kycService
}

func New(srv kycService) *KYCHandler {
	return &KYCHandler{
		srv: srv,
	}
}

func (h KYCHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var submission dto.KYCSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		logger.Log.Warn("error while decoding a kyc submission")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := submission.IsValid(); err != nil {
		logger.Log.Warn("invalid kyc submission", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	submittedAt, err := h.srv.Submit(userID, submission.TID)
	if err != nil {
		if errors.Is(err, domain.ErrKYCDisabled) {
			http.Error(w, "kyc submissions are currently disabled", http.StatusBadRequest)
			return
		} else if errors.Is(err, domain.ErrKYCAlreadyApproved) {
			http.Error(w, "kyc already approved", http.StatusBadRequest)
			return
		}

		logger.Log.Error("error while submitting kyc", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.KYCStatus{
		Status:      domain.KYCPending,
		SubmittedAt: submittedAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding kyc status to JSON", logger.Int64("user_id", userID), logger.Error(err))
		return
	}
}

func (h KYCHandler) Status(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status, err := h.srv.Status(userID)
	if err != nil {
		logger.Log.Error("error while fetching kyc status", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.KYCStatus{
		Status:            status.User.KYCStatus,
		RejectionReason:   status.User.KYCRejectionReason,
		TID:               status.User.KYCTID,
		KYCEnabled:        status.Settings.KYCEnabled,
		USDTAmount:        status.Settings.KYCUSDTAmount,
		USDTWalletAddress: status.Settings.USDTWalletAddress,
	}
	if status.User.KYCSubmittedAt != nil {
		resp.SubmittedAt = status.User.KYCSubmittedAt.Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding kyc status to JSON", logger.Int64("user_id", userID), logger.Error(err))
		return
	}
}
