package main

import (
	"log"
	"net/http"

	_ "tablemate-backend/docs" // swagger docs

	"tablemate-backend/internal/cache"
	"tablemate-backend/internal/config"
	"tablemate-backend/internal/db"
	"tablemate-backend/internal/handler"
	"tablemate-backend/internal/repository"
	"tablemate-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Tablemate Backend API
// @version 1.0
// @description API de restaurantes (búsqueda por cercanía, auth, mantenimiento de agregados)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	restaurantRepo := repository.NewRestaurantRepository()
	reviewRepo := repository.NewReviewRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	nearbySvc := service.NewNearbyService(restaurantRepo, cfg.NearbyCacheTTL)
	adminMaintSvc := service.NewAdminMaintenanceService(restaurantRepo, reviewRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	nearbyH := handler.NewNearbyHandler(nearbySvc)
	adminMaintH := handler.NewAdminMaintenanceHandler(adminMaintSvc)
	wsH := handler.NewRestaurantWSHandler(restaurantRepo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/nearbyRestaurants", nearbyH.GetNearby)

	// rating en vivo de un restaurante (WebSocket)
	r.Get("/ws/restaurants/{id}/rating", wsH.StreamRating)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Use(handler.AdminOnly())

		// --- mantenimiento de agregados ---
		handler.MountAdminMaintenanceRoutes(r, adminMaintH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
