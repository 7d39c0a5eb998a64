package adminhandler

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
	"github.com/go-chi/chi/v5"
)

type adminService interface {
	Users(page, limit int64) (*service.UserPage, error)
	SetUserActive(userID int64, active bool) error
	Settings() (*domain.Settings, error)
	UpdateSettings(settings *domain.Settings) error
}

type withdrawalService interface {
	WithdrawalsByStatus(status string) ([]domain.Withdrawal, error)
	Resolve(userID int64, withdrawalID, decision string) error
}

type kycAdminService interface {
	Submissions(status string) ([]domain.User, error)
	Review(userID int64, status, rejectionReason string) error
}

type AdminHandler struct {
	srv         adminService
	withdrawals withdrawalService
	kyc         kycAdminService
}

func New(srv adminService, withdrawals withdrawalService, kyc kycAdminService) *AdminHandler {
	return &AdminHandler{
		srv:         srv,
		withdrawals: withdrawals,
		kyc:         kyc,
	}
}

func (h AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	userPage, err := h.srv.Users(page, limit)
	if err != nil {
		logger.Log.Error("error while fetching users", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.AdminUserPage{
		Users: make([]dto.AdminUser, len(userPage.Users)),
		Pagination: dto.Pagination{
			Current: userPage.Page,
			Pages:   userPage.Pages,
			Total:   userPage.Total,
		},
	}
	for i, user := range userPage.Users {
		resp.Users[i] = dto.AdminUser{
			ID:            user.ID,
			Email:         user.Email,
			Username:      user.Username,
			IsActive:      user.IsActive,
			IsAdmin:       user.IsAdmin,
			Balance:       user.Balance,
			MiningRate:    user.MiningRate,
			IsMining:      user.IsMining,
			TotalMined:    user.TotalMined,
			KYCStatus:     user.KYCStatus,
			ReferralCode:  user.ReferralCode,
			ReferralCount: userPage.ReferralCounts[i],
			RegisteredAt:  user.RegisteredAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, resp)
}

func (h AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var update dto.UserStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Log.Warn("error while decoding a user status update")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.srv.SetUserActive(userID, update.IsActive); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while updating user status", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h AdminHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawals.WithdrawalsByStatus(r.URL.Query().Get("status"))
	if err != nil {
		logger.Log.Error("error while fetching withdrawals", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.AdminWithdrawal, len(withdrawals))
	for i, withdrawal := range withdrawals {
		dtos[i] = dto.AdminWithdrawal{
			ID:          withdrawal.ID,
			UserID:      withdrawal.UserID,
			Username:    withdrawal.Username,
			Email:       withdrawal.Email,
			Amount:      withdrawal.Amount,
			Address:     withdrawal.Address,
			Status:      withdrawal.Status,
			RequestedAt: withdrawal.RequestedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, dtos)
}

func (h AdminHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	withdrawalID := chi.URLParam(r, "id")

	var decision dto.WithdrawalDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		logger.Log.Warn("error while decoding a withdrawal decision")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if decision.Status != domain.WithdrawalApproved && decision.Status != domain.WithdrawalRejected {
		http.Error(w, "status must be approved or rejected", http.StatusBadRequest)
		return
	}

	err = h.withdrawals.Resolve(userID, withdrawalID, decision.Status)
	if err != nil {
		if errors.Is(err, domain.ErrWithdrawalNotFound) {
			http.Error(w, "withdrawal request not found", http.StatusNotFound)
			return
		} else if errors.Is(err, domain.ErrWithdrawalResolved) {
			http.Error(w, "withdrawal request already resolved", http.StatusConflict)
			return
		}

		logger.Log.Error("error while resolving withdrawal", logger.String("withdrawal_id", withdrawalID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h AdminHandler) KYCSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.kyc.Submissions(r.URL.Query().Get("status"))
	if err != nil {
		logger.Log.Error("error while fetching kyc submissions", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.KYCSubmissionEntry, len(submissions))
	for i, user := range submissions {
		dtos[i] = dto.KYCSubmissionEntry{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
			TID:      user.KYCTID,
			Status:   user.KYCStatus,
			Reason:   user.KYCRejectionReason,
		}
		if user.KYCSubmittedAt != nil {
			dtos[i].SubmittedAt = user.KYCSubmittedAt.Format(time.RFC3339)
		}
	}

	writeJSON(w, dtos)
}

func (h AdminHandler) ReviewKYC(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var review dto.KYCReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		logger.Log.Warn("error while decoding a kyc review")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if review.Status != domain.KYCApproved && review.Status != domain.KYCRejected {
		http.Error(w, "status must be approved or rejected", http.StatusBadRequest)
		return
	}

	if err := h.kyc.Review(userID, review.Status, review.RejectionReason); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while reviewing kyc", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h AdminHandler) Settings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.srv.Settings()
	if err != nil {
		logger.Log.Error("error while fetching settings", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, settingsDTO(settings))
}

func (h AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	current, err := h.srv.Settings()
	if err != nil {
		logger.Log.Error("error while fetching settings", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	update := settingsDTO(current)
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Log.Warn("error while decoding a settings update")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	settings := &domain.Settings{
		KYCEnabled:          update.KYCEnabled,
		MiningEnabled:       update.MiningEnabled,
		WithdrawalsEnabled:  update.WithdrawalsEnabled,
		ReferralEnabled:     update.ReferralEnabled,
		MinClaimAmount:      update.MinClaimAmount,
		DailyMiningLimit:    update.DailyMiningLimit,
		KYCUSDTAmount:       update.KYCUSDTAmount,
		USDTWalletAddress:   update.USDTWalletAddress,
		MinWithdrawalAmount: update.MinWithdrawalAmount,
		WithdrawalFee:       update.WithdrawalFee,
		ReferralCommission:  update.ReferralCommission,
		MaintenanceMode:     update.MaintenanceMode,
	}

	if err := h.srv.UpdateSettings(settings); err != nil {
		logger.Log.Error("error while updating settings", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, settingsDTO(settings))
}

// PublicSettings is mounted outside the auth chain so the SPA can read the
// feature toggles before login.
func (h AdminHandler) PublicSettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.srv.Settings()
	if err != nil {
		logger.Log.Error("error while fetching settings", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.PublicSettings{
		KYCEnabled:         settings.KYCEnabled,
		MiningEnabled:      settings.MiningEnabled,
		ReferralEnabled:    settings.ReferralEnabled,
		WithdrawalsEnabled: settings.WithdrawalsEnabled,
		USDTWalletAddress:  settings.USDTWalletAddress,
		KYCUSDTAmount:      settings.KYCUSDTAmount,
	}

	writeJSON(w, resp)
}

func settingsDTO(s *domain.Settings) dto.Settings {
	return dto.Settings{
		KYCEnabled:          s.KYCEnabled,
		MiningEnabled:       s.MiningEnabled,
		WithdrawalsEnabled:  s.WithdrawalsEnabled,
		ReferralEnabled:     s.ReferralEnabled,
		MinClaimAmount:      s.MinClaimAmount,
		DailyMiningLimit:    s.DailyMiningLimit,
		KYCUSDTAmount:       s.KYCUSDTAmount,
		USDTWalletAddress:   s.USDTWalletAddress,
		MinWithdrawalAmount: s.MinWithdrawalAmount,
		WithdrawalFee:       s.WithdrawalFee,
		ReferralCommission:  s.ReferralCommission,
		MaintenanceMode:     s.MaintenanceMode,
	}
}

func writeJSON(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding response to JSON", logger.Error(err))
		return
	}
}

func queryInt(r *http.Request, name string) int64 {
	value, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}

	return value
}
