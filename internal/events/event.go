package events

import "tablemate-backend/internal/models"

type Kind string

const (
	RestaurantCreated Kind = "restaurant.created"
	RestaurantDeleted Kind = "restaurant.deleted"
	ReviewCreated     Kind = "review.created"
	ReviewUpdated     Kind = "review.updated"
	ReviewDeleted     Kind = "review.deleted"
)

// Event es una mutación de documento ya decodificada del change stream.
// ID es un uuid solo para correlacionar logs y reintentos.
type Event struct {
	ID     string
	Kind   Kind
	RestID string
	// ReviewCreated: la review nueva. ReviewUpdated: la versión nueva.
	// ReviewDeleted: la review borrada.
	Review *models.ReviewDoc
	// ReviewUpdated: la versión anterior (pre-image)
	Before *models.ReviewDoc
}
