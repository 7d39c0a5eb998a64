package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AmanYaqoob/SocialPayX/internal/config"
	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		PrivateKey:       "testkey",
		AuthDisabledURLs: []string{"/login", "/register"},
	}
}

func signToken(t *testing.T, subject, key string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func TestWithAuthSetsUserID(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Header.Get("User-ID")
	})

	handler := WithAuth(testConfig())(next)

	r := httptest.NewRequest(http.MethodGet, "/api/mining/status", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "42", "testkey"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", gotUserID)
}

func TestWithAuthRejectsMissingToken(t *testing.T) {
	handler := WithAuth(testConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mining/status", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthRejectsBadSignature(t *testing.T) {
	handler := WithAuth(testConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/mining/status", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "42", "otherkey"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthSkipsDisabledURLs(t *testing.T) {
	called := false
	handler := WithAuth(testConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

type fakeAdminChecker struct {
	admins map[int64]bool
}

func (f fakeAdminChecker) IsAdmin(userID int64) (bool, error) {
	isAdmin, ok := f.admins[userID]
	if !ok {
		return false, nil
	}

	return isAdmin, nil
}

func TestWithAdmin(t *testing.T) {
	checker := fakeAdminChecker{admins: map[int64]bool{1: true, 2: false}}
	called := false
	handler := WithAdmin(checker)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	r.Header.Set("User-ID", "1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)

	called = false
	r = httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	r.Header.Set("User-ID", "2")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
