package service

import (
	"testing"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMiningRepo mirrors the storage guards: start only when idle, settle
// only the session identified by its start timestamp, rate refresh only while
// idle.
type fakeMiningRepo struct {
	users     map[int64]*domain.User
	referrals map[int64]int64
}

func newFakeMiningRepo(users ...*domain.User) *fakeMiningRepo {
	repo := &fakeMiningRepo{
		users:     map[int64]*domain.User{},
		referrals: map[int64]int64{},
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}

	return repo
}

func (f *fakeMiningRepo) UserByID(id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (f *fakeMiningRepo) ReferralCount(userID int64) (int64, error) {
	return f.referrals[userID], nil
}

func (f *fakeMiningRepo) StartMining(userID int64, rate float64, startedAt time.Time) error {
	user := f.users[userID]
	if user.IsMining {
		return domain.ErrAlreadyMining
	}
	user.IsMining = true
	user.MiningStartedAt = &startedAt
	user.MiningRate = rate

	return nil
}

func (f *fakeMiningRepo) SettleMining(userID int64, earnings float64, startedAt, claimedAt time.Time) error {
	user := f.users[userID]
	if !user.IsMining || user.MiningStartedAt == nil || !user.MiningStartedAt.Equal(startedAt) {
		return domain.ErrNotMining
	}
	user.Balance += earnings
	user.TotalMined += earnings
	user.IsMining = false
	user.MiningStartedAt = nil
	user.LastClaimAt = claimedAt

	return nil
}

func (f *fakeMiningRepo) UpdateMiningRate(userID int64, rate float64) error {
	user := f.users[userID]
	if !user.IsMining {
		user.MiningRate = rate
	}

	return nil
}

type fakeSettings struct {
	settings domain.Settings
}

func (f *fakeSettings) Settings() (*domain.Settings, error) {
	copied := f.settings

	return &copied, nil
}

func newMiningFixture(t *testing.T, user *domain.User) (*MiningService, *fakeMiningRepo, *time.Time) {
	t.Helper()

	repo := newFakeMiningRepo(user)
	svc := NewMiningService(repo, &fakeSettings{settings: domain.DefaultSettings()})

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return svc, repo, &now
}

func TestMiningStartStop(t *testing.T) {
	svc, repo, now := newMiningFixture(t, &domain.User{ID: 1, Balance: 100, MiningRate: 0.1})

	started, err := svc.Start(1)
	require.NoError(t, err)
	assert.True(t, started.IsMining)
	assert.Equal(t, 0.1, started.MiningRate)
	require.NotNil(t, started.MiningStartedAt)
	assert.True(t, started.MiningStartedAt.Equal(*now))

	_, err = svc.Start(1)
	assert.ErrorIs(t, err, domain.ErrAlreadyMining)

	*now = now.Add(2 * time.Hour)

	status, err := svc.Status(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, status.CurrentEarnings, 1e-12)
	assert.Equal(t, 100.0, status.Balance, "status must not settle anything")

	earnings, user, err := svc.Stop(1)
	require.NoError(t, err)
	assert.Equal(t, status.CurrentEarnings, earnings, "settled amount must equal the displayed amount")
	assert.InDelta(t, 100.2, user.Balance, 1e-12)
	assert.InDelta(t, 0.2, user.TotalMined, 1e-12)
	assert.False(t, user.IsMining)
	assert.Nil(t, user.MiningStartedAt)
	assert.True(t, repo.users[1].LastClaimAt.Equal(*now))

	_, _, err = svc.Stop(1)
	assert.ErrorIs(t, err, domain.ErrNotMining)
}

func TestMiningStopImmediately(t *testing.T) {
	svc, _, _ := newMiningFixture(t, &domain.User{ID: 1, Balance: 50, MiningRate: 0.1})

	_, err := svc.Start(1)
	require.NoError(t, err)

	earnings, user, err := svc.Stop(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, earnings)
	assert.Equal(t, 50.0, user.Balance)
	assert.Equal(t, 0.0, user.TotalMined)
}

func TestMiningStartSnapshotsReferralRate(t *testing.T) {
	svc, repo, _ := newMiningFixture(t, &domain.User{ID: 1, MiningRate: 0.1})
	repo.referrals[1] = 4

	started, err := svc.Start(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.12, started.MiningRate, 1e-12)
}

func TestMiningRateFrozenDuringSession(t *testing.T) {
	svc, repo, now := newMiningFixture(t, &domain.User{ID: 1, MiningRate: 0.1})

	_, err := svc.Start(1)
	require.NoError(t, err)

	// a referral lands while the session is running
	repo.referrals[1] = 1
	*now = now.Add(time.Hour)

	status, err := svc.Status(1)
	require.NoError(t, err)
	assert.Equal(t, 0.1, status.MiningRate, "running session keeps the rate it started with")
	assert.InDelta(t, 0.1, status.CurrentEarnings, 1e-12)

	_, _, err = svc.Stop(1)
	require.NoError(t, err)

	// idle now: the status query refreshes the rate opportunistically
	status, err = svc.Status(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.105, status.MiningRate, 1e-12)
	assert.InDelta(t, 0.105, repo.users[1].MiningRate, 1e-12)
}

func TestMiningStartDisabled(t *testing.T) {
	repo := newFakeMiningRepo(&domain.User{ID: 1})
	settings := domain.DefaultSettings()
	settings.MiningEnabled = false
	svc := NewMiningService(repo, &fakeSettings{settings: settings})

	_, err := svc.Start(1)
	assert.ErrorIs(t, err, domain.ErrMiningDisabled)
}

func TestMiningInvariantFlagMatchesTimestamp(t *testing.T) {
	svc, repo, now := newMiningFixture(t, &domain.User{ID: 1, MiningRate: 0.1})

	check := func() {
		t.Helper()
		user := repo.users[1]
		if user.IsMining != (user.MiningStartedAt != nil) {
			t.Fatalf("invariant broken: is_mining=%v started_at=%v", user.IsMining, user.MiningStartedAt)
		}
	}

	check()
	_, err := svc.Start(1)
	require.NoError(t, err)
	check()

	*now = now.Add(30 * time.Minute)
	_, err = svc.Status(1)
	require.NoError(t, err)
	check()

	_, _, err = svc.Stop(1)
	require.NoError(t, err)
	check()
}
