package wallethandler

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

type walletService interface {
	Balance(userID int64) (*domain.User, error)
	RequestWithdrawal(userID int64, amount float64, address string) (*domain.Withdrawal, error)
	Withdrawals(userID int64) ([]domain.Withdrawal, error)
}

type WalletHandler struct {
	srv walletService
}

func New(srv walletService) *WalletHandler {
	return &WalletHandler{
		srv: srv,
	}
}

func (h WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.srv.Balance(userID)
	if err != nil {
		logger.Log.Error("error while fetching balance", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Balance{
		Balance:    user.Balance,
		TotalMined: user.TotalMined,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding balance to JSON", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var request dto.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Log.Warn("error while decoding a withdrawal request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if request.Amount <= 0 {
		logger.Log.Warn("invalid withdrawal amount", logger.Float64("amount", request.Amount))
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.srv.RequestWithdrawal(userID, request.Amount, request.Address)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			logger.Log.Warn("insufficient balance", logger.Int64("user_id", userID))
			http.Error(w, "insufficient balance", http.StatusPaymentRequired)
			return
		} else if errors.Is(err, domain.ErrBelowMinimum) {
			http.Error(w, "amount is below the minimum withdrawal", http.StatusBadRequest)
			return
		} else if errors.Is(err, domain.ErrWithdrawalsDisabled) {
			http.Error(w, "withdrawals are currently disabled", http.StatusBadRequest)
			return
		} else if errors.Is(err, domain.ErrInvalidAddress) {
			http.Error(w, "invalid wallet address", http.StatusBadRequest)
			return
		}

		logger.Log.Error("error while requesting withdrawal", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Withdrawal{
		ID:          withdrawal.ID,
		Amount:      withdrawal.Amount,
		Address:     withdrawal.Address,
		Status:      withdrawal.Status,
		RequestedAt: withdrawal.RequestedAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding withdrawal to JSON", logger.Int64("user_id", userID), logger.Error(err))
		return
	}
}

func (h WalletHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	withdrawals, err := h.srv.Withdrawals(userID)
	if err != nil {
		logger.Log.Error("error while fetching withdrawals", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Withdrawal, len(withdrawals))
	for i, withdrawal := range withdrawals {
		dtos[i] = dto.Withdrawal{
			ID:          withdrawal.ID,
			Amount:      withdrawal.Amount,
			Address:     withdrawal.Address,
			Status:      withdrawal.Status,
			RequestedAt: withdrawal.RequestedAt.Format(time.RFC3339),
		}
		if withdrawal.ResolvedAt != nil {
			dtos[i].ResolvedAt = withdrawal.ResolvedAt.Format(time.RFC3339)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dtos)
	if err != nil {
		logger.Log.Error("error while encoding withdrawals to JSON", logger.Int64("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
