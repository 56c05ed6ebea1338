package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sdamera/agriadvisor-backend/internal/handlers"
	"github.com/sdamera/agriadvisor-backend/internal/middleware"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

func SetupRoutes(r *chi.Mux, tokens *services.TokenService, users *services.UserService) {
	// Auth routes
	r.Post("/api/auth/register", handlers.Register)
	r.Post("/api/auth/login", handlers.Login)

	// Routes that need a verified identity
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens, users))
		r.Get("/api/me", handlers.Me)
		r.Get("/api/secure-test", handlers.SecureTest)
	})

	// Recommendation route; identity is attached when a valid token arrives.
	// Registered with and without the trailing slash to match both clients.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(tokens, users))
		r.Post("/api/recommend", handlers.Recommend)
		r.Post("/api/recommend/", handlers.Recommend)
	})

	// Contact us route
	r.Post("/api/contact", handlers.SubmitContact)

	// Article routes
	r.Get("/api/articles", handlers.ListArticles)
	r.Get("/api/articles/{id}", handlers.GetArticle)
	r.Post("/api/articles", handlers.CreateArticle)

	// Technique routes
	r.Get("/api/techniques", handlers.ListTechniques)
	r.Get("/api/techniques/{id}", handlers.GetTechnique)
	r.Post("/api/techniques", handlers.CreateTechnique)

	// File upload route
	r.Post("/api/upload", handlers.UploadFile)

	// Liveness + store connectivity
	r.Get("/", handlers.Home)
}
