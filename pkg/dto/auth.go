package dto

import (
	"errors"
	"fmt"
	"strings"
)

type Register struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code,omitempty"`
}

func (r Register) IsValid() error {
	var emailErr, usernameErr, passwordErr error

	if !strings.Contains(r.Email, "@") {
		emailErr = fmt.Errorf("a valid email is required")
	}

	if len(strings.TrimSpace(r.Username)) < 3 {
		usernameErr = fmt.Errorf("username must be at least 3 characters")
	}

	if len(r.Password) < 6 {
		passwordErr = fmt.Errorf("password must be at least 6 characters")
	}

	return errors.Join(emailErr, usernameErr, passwordErr)
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l Login) IsValid() error {
	var emailErr, passwordErr error

	if strings.TrimSpace(l.Email) == "" {
		emailErr = fmt.Errorf("email is required")
	}

	if l.Password == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(emailErr, passwordErr)
}

type AuthUser struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Balance      float64 `json:"spx_balance"`
	KYCStatus    string  `json:"kyc_status"`
	IsAdmin      bool    `json:"is_admin"`
	ReferralCode string  `json:"referral_code"`
}
