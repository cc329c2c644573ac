package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Hop-Syder/nexus-connect-t4/internal/handlers"
	"github.com/Hop-Syder/nexus-connect-t4/internal/middleware"
)

func SetupRoutes(r *chi.Mux) {
	r.Route("/api", func(api chi.Router) {
		api.Get("/", handlers.Root)

		// Auth routes
		api.Post("/auth/register", handlers.Register)
		api.Post("/auth/login", handlers.Login)
		api.Post("/auth/firebase", handlers.FirebaseLogin)
		api.With(middleware.RequireAuth).Get("/auth/me", handlers.GetMe)

		// Entrepreneur directory routes
		api.Get("/entrepreneurs", handlers.ListEntrepreneurs)
		api.With(middleware.RequireAuth).Post("/entrepreneurs", handlers.CreateEntrepreneur)
		api.With(middleware.RequireAuth).Get("/entrepreneurs/user/me", handlers.GetMyProfile)
		api.Get("/entrepreneurs/{id}", handlers.GetEntrepreneur)
		api.Get("/entrepreneurs/{id}/contact", handlers.GetEntrepreneurContact)
		api.With(middleware.RequireAuth).Put("/entrepreneurs/{id}", handlers.UpdateEntrepreneur)

		// Logo upload
		api.With(middleware.RequireAuth).Post("/upload", handlers.UploadLogo)

		// Contact form and landing-page stats
		api.Post("/contact", handlers.SubmitContact)
		api.Get("/stats", handlers.GetStats)
	})
}
