package app

import (
	"github.com/AmanYaqoob/SocialPayX/internal/handler/admin"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/kyc"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/middleware"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/mining"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/news"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/referral"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/user"
	"github.com/AmanYaqoob/SocialPayX/internal/handler/wallet"
	"github.com/AmanYaqoob/SocialPayX/internal/postgres"
	"github.com/AmanYaqoob/SocialPayX/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithAuth(app.Config))

	p := postgres.New(app.DB)

	userService := service.NewUserService(p, app.Config)
	userHandler := userhandler.New(userService)

	miningService := service.NewMiningService(p, p)
	miningHandler := mininghandler.New(miningService)

	walletService := service.NewWalletService(p, p)
	walletHandler := wallethandler.New(walletService)

	referralService := service.NewReferralService(p, p)
	referralHandler := referralhandler.New(referralService)

	kycService := service.NewKYCService(p, p)
	kycHandler := kychandler.New(kycService)

	newsService := service.NewNewsService(p)
	newsHandler := newshandler.New(newsService)

	adminService := service.NewAdminService(p, p)
	adminHandler := adminhandler.New(adminService, walletService, kycService)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)

		r.Get("/settings/public", adminHandler.PublicSettings)

		r.Get("/news", newsHandler.List)
		r.Get("/news/{id}", newsHandler.Get)

		r.Get("/user/profile", userHandler.Profile)
		r.Put("/user/profile", userHandler.UpdateProfile)

		r.Post("/mining/start", miningHandler.Start)
		r.Post("/mining/stop", miningHandler.Stop)
		r.Get("/mining/status", miningHandler.Status)

		r.Get("/wallet/balance", walletHandler.Balance)
		r.Post("/wallet/withdraw", walletHandler.Withdraw)
		r.Get("/wallet/withdrawals", walletHandler.Withdrawals)

		r.Get("/referral/info", referralHandler.Info)
		r.Get("/referral/stats", referralHandler.Stats)

		r.Post("/kyc/submit", kycHandler.Submit)
		r.Get("/kyc/status", kycHandler.Status)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.WithAdmin(p))

			r.Get("/users", adminHandler.Users)
			r.Put("/users/{id}/status", adminHandler.SetUserStatus)

			r.Get("/withdrawals", adminHandler.Withdrawals)
			r.Put("/withdrawals/{userID}/{id}", adminHandler.ResolveWithdrawal)

			r.Get("/kyc", adminHandler.KYCSubmissions)
			r.Put("/kyc/{id}/review", adminHandler.ReviewKYC)

			r.Get("/settings", adminHandler.Settings)
			r.Put("/settings", adminHandler.UpdateSettings)

			r.Get("/news", newsHandler.ListAll)
			r.Post("/news", newsHandler.Create)
			r.Put("/news/{id}", newsHandler.Update)
			r.Delete("/news/{id}", newsHandler.Delete)
		})
	})

	return r
}
