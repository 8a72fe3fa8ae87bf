package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"tablemate-backend/internal/cache"
	"tablemate-backend/internal/config"
	"tablemate-backend/internal/db"
	"tablemate-backend/internal/events"
	"tablemate-backend/internal/repository"
	"tablemate-backend/internal/service"
)

// El watcher es el reemplazo de los triggers de Cloud Functions: consume los
// change streams de restaurants/reviews y aplica agregados, provisioning y
// borrado en cascada. Corre como binario aparte del API.
func main() {
	cfg := config.Load()
	db.InitMongo(cfg)
	// sin Redis el watcher sigue andando, solo pierde la invalidación de cache
	cache.TryInitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	restaurantRepo := repository.NewRestaurantRepository()
	reviewRepo := repository.NewReviewRepository()

	// services
	aggSvc := service.NewAggregateService(restaurantRepo)
	provSvc := service.NewProvisionService(userRepo)
	cleanSvc := service.NewCleanupService(reviewRepo, cfg.DeleteBatchSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := events.NewWatcher(db.DB())
	watcher.Run(ctx)

	dispatcher := events.NewDispatcher(aggSvc, provSvc, cleanSvc, service.NearbyCache{}, cfg.WatcherWorkers, cfg.EventMaxAttempts)

	log.Printf("[watcher] arrancando con %d workers, lote de borrado=%d\n",
		cfg.WatcherWorkers, cfg.DeleteBatchSize)

	dispatcher.Run(ctx, watcher.Events())

	log.Println("[watcher] apagado")
}
