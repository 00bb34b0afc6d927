package router

import (
	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/network/handlers"
	"github.com/avtomag/loyalty/internal/network/middleware"
	"github.com/avtomag/loyalty/internal/services"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config      config.Config
	Settings    services.SettingsService
	Ledger      services.LedgerService
	Rewards     services.RewardsService
	Redemptions services.RedemptionService
	Purchases   services.PurchasesService
	Admin       services.AdminService
}

func NewRouter(config config.Config, storage storage.Storage, purchases services.PurchasesService) *Router {
	ledger := services.NewLedger(storage.Ledger, storage.Customers, storage.Settings)
	return &Router{
		Config:      config,
		Settings:    services.NewSettings(storage.Settings),
		Ledger:      ledger,
		Rewards:     services.NewRewards(storage.Rewards, storage.Customers, storage.Redemptions),
		Redemptions: services.NewRedemption(storage.Redemptions, storage.Rewards, storage.Customers),
		Purchases:   purchases,
		Admin:       services.NewAdmin(storage.Admin, storage.Customers, ledger),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := jwtauth.New("HS256", []byte(router.Config.Server.JWTSecret), nil)
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/loyalty", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/stats", handlers.GetStatsHandler(router.Ledger))
				r.Get("/transactions", handlers.GetTransactionsHandler(router.Ledger))
				r.Get("/rewards", handlers.GetAvailableRewardsHandler(router.Rewards))
				r.Post("/rewards/{id}/redeem", handlers.RedeemRewardHandler(router.Redemptions))
				r.Get("/redemptions", handlers.GetRedemptionsHandler(router.Redemptions))
				r.Post("/purchases", handlers.RegisterPurchaseHandler(router.Purchases))
				r.Get("/purchases", handlers.GetPurchasesHandler(router.Purchases))
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Use(middleware.AdminOnly)
				r.Get("/settings", handlers.GetSettingsHandler(router.Settings))
				r.Put("/settings", handlers.UpdateSettingsHandler(router.Settings))
				r.Get("/rewards", handlers.GetRewardsHandler(router.Rewards))
				r.Post("/rewards", handlers.CreateRewardHandler(router.Rewards))
				r.Put("/rewards/{id}", handlers.UpdateRewardHandler(router.Rewards))
				r.Delete("/rewards/{id}", handlers.DeleteRewardHandler(router.Rewards))
				r.Post("/redemptions/{code}/use", handlers.MarkUsedHandler(router.Redemptions))
				r.Post("/customers/{id}/adjust", handlers.AdjustPointsHandler(router.Admin))
				r.Get("/stats", handlers.GetAdminStatsHandler(router.Admin))
				r.Get("/customers", handlers.GetCustomersHandler(router.Admin))
			})
		})
	})
	return r
}
