package service

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewBatcher expone las dos operaciones por lote que necesita el borrado
// en cascada: buscar hasta N ids (cualquier subconjunto) y borrarlos en una
// sola escritura.
type ReviewBatcher interface {
	FindIDs(ctx context.Context, restID string, limit int) ([]primitive.ObjectID, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// CleanupService borra todas las reviews de un restaurante eliminado, en
// lotes de tamaño acotado. Cada iteración es independiente: si el proceso
// muere entre lotes, quedan simplemente menos reviews y la operación se puede
// relanzar desde cero.
type CleanupService struct {
	reviews   ReviewBatcher
	batchSize int
}

func NewCleanupService(r ReviewBatcher, batchSize int) *CleanupService {
	return &CleanupService{reviews: r, batchSize: batchSize}
}

// DeleteAllReviews termina cuando no queda ninguna review bajo el
// restaurante. Es un loop iterativo a propósito: la cantidad de reviews no
// está acotada y no puede depender de la profundidad del stack.
func (s *CleanupService) DeleteAllReviews(ctx context.Context, restID string) (int64, error) {
	var deleted int64

	for {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}

		ids, err := s.reviews.FindIDs(ctx, restID, s.batchSize)
		if err != nil {
			return deleted, err
		}
		if len(ids) == 0 {
			// no queda nada que borrar
			if deleted > 0 {
				log.Printf("[cleanup] restId=%s: %d reviews borradas\n", restID, deleted)
			}
			return deleted, nil
		}

		n, err := s.reviews.DeleteByIDs(ctx, ids)
		deleted += n
		if err != nil {
			return deleted, err
		}
	}
}
