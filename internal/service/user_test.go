package service

import (
	"testing"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/config"
	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}, nextID: 1}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
	}

	return repo
}

func (f *fakeUserRepo) CreateUser(email, username, hashedPassword, referralCode string, referredBy *int64) (int64, error) {
	for _, user := range f.users {
		if user.Email == email || user.Username == username {
			return 0, domain.ErrUserExists
		}
	}

	id := f.nextID
	f.nextID++
	f.users[id] = &domain.User{
		ID:           id,
		Email:        email,
		Username:     username,
		Password:     hashedPassword,
		IsActive:     true,
		MiningRate:   domain.BaseMiningRate,
		KYCStatus:    domain.KYCNone,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		RegisteredAt: time.Now(),
	}

	return id, nil
}

func (f *fakeUserRepo) UserByEmail(email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, domain.ErrIncorrectCredentials
}

func (f *fakeUserRepo) UserByID(id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (f *fakeUserRepo) UserByReferralCode(code string) (*domain.User, error) {
	for _, user := range f.users {
		if user.ReferralCode == code {
			copied := *user
			return &copied, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateUsername(userID int64, username string) error {
	for _, user := range f.users {
		if user.Username == username {
			return domain.ErrUsernameTaken
		}
	}
	f.users[userID].Username = username

	return nil
}

func (f *fakeUserRepo) IncrementMiningRate(userID int64, delta float64) error {
	if user := f.users[userID]; !user.IsMining {
		user.MiningRate += delta
	}

	return nil
}

func newUserFixture(users ...*domain.User) (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	svc := NewUserService(repo, &config.Config{PrivateKey: "testkey"})

	return svc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newUserFixture()

	token, user, err := svc.Register("miner@example.com", "miner", "secret123", "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Len(t, user.ReferralCode, 8)
	assert.Nil(t, user.ReferredBy)
	assert.NotEqual(t, "secret123", repo.users[user.ID].Password, "password must be stored hashed")

	token, logged, err := svc.Login("miner@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = svc.Login("miner@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrIncorrectCredentials)

	_, _, err = svc.Register("miner@example.com", "other", "secret123", "")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestRegisterReferralBonus(t *testing.T) {
	referrer := &domain.User{ID: 1, Email: "a@example.com", Username: "a", MiningRate: 0.1, ReferralCode: "AABBCCDD"}
	svc, repo := newUserFixture(referrer)

	_, user, err := svc.Register("b@example.com", "b", "secret123", "AABBCCDD")
	require.NoError(t, err)
	require.NotNil(t, user.ReferredBy)
	assert.Equal(t, int64(1), *user.ReferredBy)
	assert.InDelta(t, 0.105, repo.users[1].MiningRate, 1e-12, "referrer gets the bonus exactly once")
}

func TestReferralBonusDoesNotRepriceOpenSession(t *testing.T) {
	referrer := &domain.User{ID: 1, Email: "a@example.com", Username: "a", MiningRate: 0.1, ReferralCode: "AABBCCDD"}
	userSvc, userRepo := newUserFixture(referrer)
	miningSvc, miningRepo, now := newMiningFixture(t, referrer)

	_, err := miningSvc.Start(1)
	require.NoError(t, err)

	// the referred account registers while the referrer's session is open
	_, _, err = userSvc.Register("b@example.com", "b", "secret123", "AABBCCDD")
	require.NoError(t, err)
	assert.Equal(t, 0.1, userRepo.users[1].MiningRate, "open session keeps the rate it started with")

	miningRepo.referrals[1] = 1
	*now = now.Add(10 * time.Hour)

	earnings, _, err := miningSvc.Stop(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, earnings, 1e-12, "settlement uses the rate at session start")

	// the bonus is picked up when the next session starts
	started, err := miningSvc.Start(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.105, started.MiningRate, 1e-12)
}

func TestRegisterUnknownReferralCodeIgnored(t *testing.T) {
	svc, _ := newUserFixture()

	_, user, err := svc.Register("b@example.com", "b", "secret123", "NOPE0000")
	require.NoError(t, err)
	assert.Nil(t, user.ReferredBy)
}

func TestUpdateUsername(t *testing.T) {
	svc, repo := newUserFixture(
		&domain.User{ID: 1, Username: "alpha"},
		&domain.User{ID: 2, Username: "admin", IsAdmin: true},
	)

	require.NoError(t, svc.UpdateUsername(1, "beta"))
	assert.Equal(t, "beta", repo.users[1].Username)

	err := svc.UpdateUsername(1, "admin")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = svc.UpdateUsername(2, "root")
	assert.ErrorIs(t, err, domain.ErrAdminImmutable)
}
