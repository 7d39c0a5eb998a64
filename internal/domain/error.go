package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrAdminImmutable       = errors.New("admin username cannot be changed")
	ErrIncorrectCredentials = errors.New("incorrect credentials")

	ErrAlreadyMining  = errors.New("mining already active")
	ErrNotMining      = errors.New("mining is not active")
	ErrMiningDisabled = errors.New("mining is currently disabled")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount is below the minimum withdrawal")
	ErrWithdrawalsDisabled = errors.New("withdrawals are currently disabled")
	ErrInvalidAddress      = errors.New("invalid wallet address")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")
	ErrWithdrawalResolved  = errors.New("withdrawal request already resolved")

	ErrKYCDisabled        = errors.New("kyc submissions are currently disabled")
	ErrKYCAlreadyApproved = errors.New("kyc already approved")

	ErrNewsNotFound = errors.New("news not found")
)
