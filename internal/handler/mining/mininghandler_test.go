package mininghandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMiningService struct {
	user   *domain.User
	status *domain.MiningStatus
	err    error
}

func (f *fakeMiningService) Start(int64) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeMiningService) Stop(int64) (float64, *domain.User, error) {
	return 0.2, f.user, f.err
}

func (f *fakeMiningService) Status(int64) (*domain.MiningStatus, error) {
	return f.status, f.err
}

func authRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("User-ID", "1")

	return r
}

func TestStatusHandler(t *testing.T) {
	startedAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	h := New(&fakeMiningService{status: &domain.MiningStatus{
		IsMining:        true,
		MiningStartedAt: &startedAt,
		CurrentEarnings: 0.2,
		MiningRate:      0.1,
		Balance:         100,
		TotalMined:      42,
		MiningEnabled:   true,
	}})

	w := httptest.NewRecorder()
	h.Status(w, authRequest(http.MethodGet, "/api/mining/status"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp dto.MiningStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.IsMining)
	assert.InDelta(t, 0.2, resp.CurrentEarnings, 1e-12)
	assert.Equal(t, 100.0, resp.Balance)
}

func TestStartHandlerAlreadyMining(t *testing.T) {
	h := New(&fakeMiningService{err: domain.ErrAlreadyMining})

	w := httptest.NewRecorder()
	h.Start(w, authRequest(http.MethodPost, "/api/mining/start"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStopHandlerNotMining(t *testing.T) {
	h := New(&fakeMiningService{err: domain.ErrNotMining})

	w := httptest.NewRecorder()
	h.Stop(w, authRequest(http.MethodPost, "/api/mining/stop"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStopHandler(t *testing.T) {
	h := New(&fakeMiningService{user: &domain.User{Balance: 100.2, TotalMined: 0.2}})

	w := httptest.NewRecorder()
	h.Stop(w, authRequest(http.MethodPost, "/api/mining/stop"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MiningStopped
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.InDelta(t, 0.2, resp.Earnings, 1e-12)
	assert.InDelta(t, 100.2, resp.NewBalance, 1e-12)
}

func TestMissingUserIDHeader(t *testing.T) {
	h := New(&fakeMiningService{})

	w := httptest.NewRecorder()
	h.Status(w, httptest.NewRequest(http.MethodGet, "/api/mining/status", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
