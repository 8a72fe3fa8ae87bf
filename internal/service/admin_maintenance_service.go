package service

import (
	"context"
	"math"

	"tablemate-backend/internal/models"
)

// tolerancia al comparar el promedio guardado contra el real
const driftEpsilon = 1e-6

type MaintRestaurants interface {
	GetByID(ctx context.Context, restID string) (*models.RestaurantDoc, error)
	ListAll(ctx context.Context) ([]models.RestaurantDoc, error)
	SetAggregates(ctx context.Context, restID string, total float64, count int) error
}

type MaintReviews interface {
	TotalsByRestaurant(ctx context.Context, restID string) (float64, int, error)
}

// AdminMaintenanceService repara y audita los agregados denormalizados.
// El recount no corre dentro de la misma transacción que los eventos: si
// llegan eventos concurrentes el resultado puede quedar desfasado un
// instante, pero el siguiente recount (o el flujo normal de eventos) lo
// vuelve a dejar consistente.
type AdminMaintenanceService struct {
	restaurants MaintRestaurants
	reviews     MaintReviews
}

func NewAdminMaintenanceService(r MaintRestaurants, rev MaintReviews) *AdminMaintenanceService {
	return &AdminMaintenanceService{restaurants: r, reviews: rev}
}

// Recount recalcula (total, count) desde las reviews reales y lo escribe.
// Sirve para sanar drift de punto flotante o corrupción por eventos fuera
// de orden.
func (s *AdminMaintenanceService) Recount(ctx context.Context, restID string) (*models.AdminRecountResult, error) {
	doc, err := s.restaurants.GetByID(ctx, restID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	total, count, err := s.reviews.TotalsByRestaurant(ctx, restID)
	if err != nil {
		return nil, err
	}

	rating := 0.0
	if count > 0 {
		rating = total / float64(count)
	}

	changed := doc.NumReviews != count || math.Abs(doc.Rating-rating) > driftEpsilon
	if changed {
		if err := s.restaurants.SetAggregates(ctx, restID, total, count); err != nil {
			return nil, err
		}
	}

	return &models.AdminRecountResult{
		RestID:     restID,
		Rating:     rating,
		NumReviews: count,
		Changed:    changed,
	}, nil
}

// AggregatesSummary recorre todos los restaurantes y reporta cuáles tienen
// agregados que no coinciden con sus reviews. Solo lee, no repara.
func (s *AdminMaintenanceService) AggregatesSummary(ctx context.Context, limit int) (*models.AdminAggregateSummary, error) {
	docs, err := s.restaurants.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.AdminAggregateSummary{
		TotalRestaurants: int64(len(docs)),
		Drifted:          []models.RestaurantDrift{},
	}

	for _, doc := range docs {
		total, count, err := s.reviews.TotalsByRestaurant(ctx, doc.RestID)
		if err != nil {
			return nil, err
		}
		summary.Checked++

		rating := 0.0
		if count > 0 {
			rating = total / float64(count)
		}

		if doc.NumReviews != count || math.Abs(doc.Rating-rating) > driftEpsilon {
			summary.WithDrift++
			if limit <= 0 || len(summary.Drifted) < limit {
				summary.Drifted = append(summary.Drifted, models.RestaurantDrift{
					RestID:           doc.RestID,
					StoredRating:     doc.Rating,
					StoredNumReviews: doc.NumReviews,
					RealRating:       rating,
					RealNumReviews:   count,
				})
			}
		}
	}
	return summary, nil
}
