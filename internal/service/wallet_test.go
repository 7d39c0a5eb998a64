package service

import (
	"testing"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "TLi35GdB6HN4bDDKZvE4Uezv6BDTX9"

// fakeWalletRepo mirrors the storage guards: the balance check and debit are
// one step, and a request is resolved at most once.
type fakeWalletRepo struct {
	users       map[int64]*domain.User
	withdrawals map[string]*domain.Withdrawal
}

func newFakeWalletRepo(users ...*domain.User) *fakeWalletRepo {
	repo := &fakeWalletRepo{
		users:       map[int64]*domain.User{},
		withdrawals: map[string]*domain.Withdrawal{},
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}

	return repo
}

func (f *fakeWalletRepo) UserByID(id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (f *fakeWalletRepo) CreateWithdrawal(id string, userID int64, amount float64, address string, requestedAt time.Time) error {
	user := f.users[userID]
	if user.Balance < amount {
		return domain.ErrInsufficientBalance
	}
	user.Balance -= amount
	f.withdrawals[id] = &domain.Withdrawal{
		ID:          id,
		UserID:      userID,
		Amount:      amount,
		Address:     address,
		Status:      domain.WithdrawalPending,
		RequestedAt: requestedAt,
	}

	return nil
}

func (f *fakeWalletRepo) ResolveWithdrawal(userID int64, withdrawalID, status string, resolvedAt time.Time) error {
	withdrawal, ok := f.withdrawals[withdrawalID]
	if !ok || withdrawal.UserID != userID {
		return domain.ErrWithdrawalNotFound
	}
	if withdrawal.Status != domain.WithdrawalPending {
		return domain.ErrWithdrawalResolved
	}
	withdrawal.Status = status
	withdrawal.ResolvedAt = &resolvedAt
	if status == domain.WithdrawalRejected {
		f.users[userID].Balance += withdrawal.Amount
	}

	return nil
}

func (f *fakeWalletRepo) Withdrawals(userID int64) ([]domain.Withdrawal, error) {
	var withdrawals []domain.Withdrawal
	for _, withdrawal := range f.withdrawals {
		if withdrawal.UserID == userID {
			withdrawals = append(withdrawals, *withdrawal)
		}
	}

	return withdrawals, nil
}

func (f *fakeWalletRepo) WithdrawalsByStatus(status string) ([]domain.Withdrawal, error) {
	var withdrawals []domain.Withdrawal
	for _, withdrawal := range f.withdrawals {
		if withdrawal.Status == status {
			withdrawals = append(withdrawals, *withdrawal)
		}
	}

	return withdrawals, nil
}

func newWalletFixture(user *domain.User) (*WalletService, *fakeWalletRepo) {
	repo := newFakeWalletRepo(user)
	svc := NewWalletService(repo, &fakeSettings{settings: domain.DefaultSettings()})

	return svc, repo
}

func TestWithdrawalLocksBalanceImmediately(t *testing.T) {
	svc, repo := newWalletFixture(&domain.User{ID: 1, Balance: 100})

	withdrawal, err := svc.RequestWithdrawal(1, 40, testAddress)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalPending, withdrawal.Status)
	assert.Equal(t, 60.0, repo.users[1].Balance, "amount is locked before any admin action")

	// the locked funds are gone for a second request
	_, err = svc.RequestWithdrawal(1, 70, testAddress)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, 60.0, repo.users[1].Balance)
}

func TestWithdrawalValidation(t *testing.T) {
	svc, repo := newWalletFixture(&domain.User{ID: 1, Balance: 100})

	_, err := svc.RequestWithdrawal(1, 5, testAddress)
	assert.ErrorIs(t, err, domain.ErrBelowMinimum)

	_, err = svc.RequestWithdrawal(1, 20, "short")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	assert.Equal(t, 100.0, repo.users[1].Balance, "failed requests must not touch the balance")
}

func TestWithdrawalsDisabled(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.WithdrawalsEnabled = false
	svc := NewWalletService(newFakeWalletRepo(&domain.User{ID: 1, Balance: 100}), &fakeSettings{settings: settings})

	_, err := svc.RequestWithdrawal(1, 20, testAddress)
	assert.ErrorIs(t, err, domain.ErrWithdrawalsDisabled)
}

func TestWithdrawalRejectionRestoresBalance(t *testing.T) {
	svc, repo := newWalletFixture(&domain.User{ID: 1, Balance: 100})

	withdrawal, err := svc.RequestWithdrawal(1, 40, testAddress)
	require.NoError(t, err)
	require.Equal(t, 60.0, repo.users[1].Balance)

	require.NoError(t, svc.Resolve(1, withdrawal.ID, domain.WithdrawalRejected))
	assert.Equal(t, 100.0, repo.users[1].Balance, "rejection restores the locked amount exactly")
	assert.Equal(t, domain.WithdrawalRejected, repo.withdrawals[withdrawal.ID].Status)
	assert.NotNil(t, repo.withdrawals[withdrawal.ID].ResolvedAt)
}

func TestWithdrawalApprovalKeepsDebit(t *testing.T) {
	svc, repo := newWalletFixture(&domain.User{ID: 1, Balance: 100})

	withdrawal, err := svc.RequestWithdrawal(1, 40, testAddress)
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(1, withdrawal.ID, domain.WithdrawalApproved))
	assert.Equal(t, 60.0, repo.users[1].Balance, "approval keeps the debit already taken")
}

func TestWithdrawalResolvedExactlyOnce(t *testing.T) {
	svc, repo := newWalletFixture(&domain.User{ID: 1, Balance: 100})

	withdrawal, err := svc.RequestWithdrawal(1, 40, testAddress)
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(1, withdrawal.ID, domain.WithdrawalRejected))
	balance := repo.users[1].Balance

	err = svc.Resolve(1, withdrawal.ID, domain.WithdrawalRejected)
	assert.ErrorIs(t, err, domain.ErrWithdrawalResolved)
	assert.Equal(t, balance, repo.users[1].Balance, "a second resolution must not move the balance")

	err = svc.Resolve(1, withdrawal.ID, domain.WithdrawalApproved)
	assert.ErrorIs(t, err, domain.ErrWithdrawalResolved)
}

func TestWithdrawalResolveWrongOwner(t *testing.T) {
	svc, _ := newWalletFixture(&domain.User{ID: 1, Balance: 100})

	withdrawal, err := svc.RequestWithdrawal(1, 40, testAddress)
	require.NoError(t, err)

	err = svc.Resolve(2, withdrawal.ID, domain.WithdrawalApproved)
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)

	err = svc.Resolve(1, "missing", domain.WithdrawalApproved)
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
}
