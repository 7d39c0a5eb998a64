package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, Settings{
		KYCEnabled:          true,
		MiningEnabled:       true,
		WithdrawalsEnabled:  true,
		ReferralEnabled:     true,
		MinClaimAmount:      1,
		DailyMiningLimit:    24,
		KYCUSDTAmount:       10,
		USDTWalletAddress:   "TYourUSDTWalletAddressHere",
		MinWithdrawalAmount: 10,
		WithdrawalFee:       0.1,
		ReferralCommission:  0.1,
	}, DefaultSettings())
}
