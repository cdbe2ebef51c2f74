package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hmdang/bluemoon/internal/auth"
	accountHandler "github.com/hmdang/bluemoon/internal/http/account"
	feeHandler "github.com/hmdang/bluemoon/internal/http/fee"
	householdHandler "github.com/hmdang/bluemoon/internal/http/household"
	"github.com/hmdang/bluemoon/internal/http/importcsv"
	paymentHandler "github.com/hmdang/bluemoon/internal/http/payment"
	reportHandler "github.com/hmdang/bluemoon/internal/http/report"
	residentHandler "github.com/hmdang/bluemoon/internal/http/resident"
	vehicleHandler "github.com/hmdang/bluemoon/internal/http/vehicle"
)

func New(
	tm *auth.TokenManager,
	allowedOrigins []string,
	accountsV1 *accountHandler.Handler,
	residentsV1 *residentHandler.Handler,
	importV1 *importcsv.Handler,
	householdsV1 *householdHandler.Handler,
	vehiclesV1 *vehicleHandler.Handler,
	feesV1 *feeHandler.Handler,
	paymentsV1 *paymentHandler.Handler,
	reportsV1 *reportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			accountsV1.AuthRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(auth.Authenticator(tm))
				accountsV1.MeRoutes(r)
			})
		})

		// Everything below requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(tm))

			r.Route("/accounts", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin))
				accountsV1.Routes(r)
			})

			r.Route("/residents", func(r chi.Router) {
				residentsV1.Routes(r)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager))
					residentsV1.WriteRoutes(r)
				})

				r.Route("/import", func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager))
					importV1.Routes(r)
				})
			})

			r.Route("/households", func(r chi.Router) {
				householdsV1.Routes(r)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager))
					householdsV1.WriteRoutes(r)
				})
			})

			r.Route("/vehicles", func(r chi.Router) {
				vehiclesV1.Routes(r)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager))
					vehiclesV1.WriteRoutes(r)
				})
			})

			r.Route("/fees", func(r chi.Router) {
				feesV1.Routes(r)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleAccountant))
					feesV1.WriteRoutes(r)
					paymentsV1.DisburseRoutes(r)
				})
			})

			r.Route("/collections", func(r chi.Router) {
				feesV1.CollectionRoutes(r)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleAccountant))
					feesV1.CollectionWriteRoutes(r)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				paymentsV1.Routes(r)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleAccountant))
					paymentsV1.WriteRoutes(r)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAccountant))
				reportsV1.Routes(r)
			})
		})
	})

	return router
}
