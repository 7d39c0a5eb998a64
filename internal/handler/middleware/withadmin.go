package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

type adminChecker interface {
	IsAdmin(userID int64) (bool, error)
}

// WithAdmin guards the admin console. It runs after WithAuth and checks the
// flag in storage rather than trusting a token claim, so a revoked admin is
// locked out immediately.
func WithAdmin(checker adminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDHeader := r.Header.Get("User-ID")
			userID, err := strconv.ParseInt(userIDHeader, 10, 64)
			if err != nil {
				logger.Log.Warn("unauthorized admin request", logger.String("url", r.RequestURI))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			isAdmin, err := checker.IsAdmin(userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
					return
				}

				logger.Log.Error("error checking admin flag", logger.Int64("user_id", userID), logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !isAdmin {
				logger.Log.Warn("forbidden admin request", logger.Int64("user_id", userID), logger.String("url", r.RequestURI))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
