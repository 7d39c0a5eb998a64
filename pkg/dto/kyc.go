package dto

import (
	"fmt"
	"strings"
)

type KYCSubmission struct {
	TID string `json:"tid"`
}

func (s KYCSubmission) IsValid() error {
	if strings.TrimSpace(s.TID) == "" {
		return fmt.Errorf("transaction id is required")
	}

	return nil
}

type KYCStatus struct {
	Status            string  `json:"kyc_status"`
	SubmittedAt       string  `json:"kyc_submitted_at,omitempty"`
	RejectionReason   string  `json:"kyc_rejection_reason,omitempty"`
	TID               string  `json:"kyc_tid,omitempty"`
	KYCEnabled        bool    `json:"kyc_enabled"`
	USDTAmount        float64 `json:"usdt_amount"`
	USDTWalletAddress string  `json:"usdt_wallet_address"`
}
