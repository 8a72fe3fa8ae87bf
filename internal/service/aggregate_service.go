package service

import (
	"context"
	"errors"

	"tablemate-backend/internal/models"
)

// ErrNoReviews: llegó un update de review para un restaurante cuyo contador
// está en cero. Con entrega en orden no debería pasar (el create de la review
// siempre precede a su update); si pasa, el evento falla en vez de escribir
// un NaN en el documento.
var ErrNoReviews = errors.New("el restaurante no tiene reviews contadas")

// RestaurantAggregates es lo único que el servicio necesita del storage: una
// lectura-modificación-escritura atómica sobre (total, count) de un
// restaurante, con reintento ante conflicto.
type RestaurantAggregates interface {
	UpdateAggregates(ctx context.Context, restID string, apply models.AggregateApply) error
}

// AggregateService mantiene (rating, numReviews) de cada restaurante en
// sincronía con sus reviews. Los tres eventos del ciclo de vida de una review
// son el mismo protocolo con distinto delta sobre (total, count); la política
// de piso en el delete (resetear a 0,0 cuando se va la última review) es el
// único caso especial.
type AggregateService struct {
	restaurants RestaurantAggregates
}

func NewAggregateService(r RestaurantAggregates) *AggregateService {
	return &AggregateService{restaurants: r}
}

func (s *AggregateService) OnReviewCreated(ctx context.Context, restID string, rating float64) error {
	return s.restaurants.UpdateAggregates(ctx, restID,
		func(total float64, count int) (float64, int, error) {
			return total + rating, count + 1, nil
		})
}

func (s *AggregateService) OnReviewUpdated(ctx context.Context, restID string, oldRating, newRating float64) error {
	return s.restaurants.UpdateAggregates(ctx, restID,
		func(total float64, count int) (float64, int, error) {
			if count <= 0 {
				return 0, 0, ErrNoReviews
			}
			return total + newRating - oldRating, count, nil
		})
}

func (s *AggregateService) OnReviewDeleted(ctx context.Context, restID string, rating float64) error {
	return s.restaurants.UpdateAggregates(ctx, restID,
		func(total float64, count int) (float64, int, error) {
			newCount := count - 1
			if newCount <= 0 {
				// se fue la última review: reset limpio, absorbe cualquier
				// residuo de punto flotante acumulado
				return 0, 0, nil
			}
			return total - rating, newCount, nil
		})
}
