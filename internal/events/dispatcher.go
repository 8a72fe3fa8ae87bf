package events

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"tablemate-backend/internal/repository"
	"tablemate-backend/internal/service"
)

type ReviewAggregator interface {
	OnReviewCreated(ctx context.Context, restID string, rating float64) error
	OnReviewUpdated(ctx context.Context, restID string, oldRating, newRating float64) error
	OnReviewDeleted(ctx context.Context, restID string, rating float64) error
}

type RestaurantProvisioner interface {
	OnRestaurantCreated(ctx context.Context, restID string) error
}

type ReviewCleaner interface {
	DeleteAllReviews(ctx context.Context, restID string) (int64, error)
}

// SearchCacheInvalidator tira las búsquedas cacheadas cuando cambia el set
// de restaurantes.
type SearchCacheInvalidator interface {
	InvalidateNearby(ctx context.Context) error
}

// Dispatcher reparte los eventos del watcher entre un pool acotado de
// workers. La entrega es at-least-once: un evento que falla se reintenta
// hasta maxAttempts veces y los handlers tienen que tolerar re-ejecución.
// No serializa por restaurante: de eso se encarga la transacción en el
// storage, que es el único punto de serialización del protocolo.
type Dispatcher struct {
	aggregates  ReviewAggregator
	provisioner RestaurantProvisioner
	cleaner     ReviewCleaner
	searchCache SearchCacheInvalidator

	workers     int
	maxAttempts int
}

func NewDispatcher(agg ReviewAggregator, prov RestaurantProvisioner, clean ReviewCleaner, searchCache SearchCacheInvalidator, workers, maxAttempts int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Dispatcher{
		aggregates:  agg,
		provisioner: prov,
		cleaner:     clean,
		searchCache: searchCache,
		workers:     workers,
		maxAttempts: maxAttempts,
	}
}

// Run consume el canal hasta que se cierre o se cancele el contexto.
func (d *Dispatcher) Run(ctx context.Context, in <-chan Event) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-in:
					if !ok {
						return
					}
					d.process(ctx, ev)
				}
			}
		}()
	}
	wg.Wait()
}

// isPermanent: errores que no se arreglan reintentando (el restaurante no
// existe, o llegó un update antes que el create). Reintentarlos solo quema
// intentos.
func isPermanent(err error) bool {
	return errors.Is(err, repository.ErrRestaurantNotFound) ||
		errors.Is(err, service.ErrNoReviews)
}

func (d *Dispatcher) process(ctx context.Context, ev Event) {
	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if err = d.handle(ctx, ev); err == nil {
			break
		}
		log.Printf("[dispatcher] evento %s %s restId=%s falló (intento %d/%d): %v\n",
			ev.ID, ev.Kind, ev.RestID, attempt, d.maxAttempts, err)

		if isPermanent(err) {
			log.Printf("[dispatcher] evento %s %s restId=%s: error permanente, no se reintenta\n",
				ev.ID, ev.Kind, ev.RestID)
			return
		}

		if attempt < d.maxAttempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
	}
	if err != nil {
		// fallar ruidosamente y seguir: el estado quedó válido (la
		// transacción no se aplicó a medias) y un recount admin lo repara
		log.Printf("[dispatcher] evento %s %s restId=%s descartado tras %d intentos\n",
			ev.ID, ev.Kind, ev.RestID, d.maxAttempts)
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case RestaurantCreated:
		if err := d.provisioner.OnRestaurantCreated(ctx, ev.RestID); err != nil {
			return err
		}
		// el set de restaurantes cambió, las búsquedas cacheadas ya no valen
		return d.searchCache.InvalidateNearby(ctx)

	case RestaurantDeleted:
		if _, err := d.cleaner.DeleteAllReviews(ctx, ev.RestID); err != nil {
			return err
		}
		return d.searchCache.InvalidateNearby(ctx)

	case ReviewCreated:
		return d.aggregates.OnReviewCreated(ctx, ev.RestID, ev.Review.Rating)

	case ReviewUpdated:
		return d.aggregates.OnReviewUpdated(ctx, ev.RestID, ev.Before.Rating, ev.Review.Rating)

	case ReviewDeleted:
		return d.aggregates.OnReviewDeleted(ctx, ev.RestID, ev.Review.Rating)
	}

	log.Printf("[dispatcher] evento %s de tipo desconocido %q\n", ev.ID, ev.Kind)
	return nil
}
