package service

import (
	"context"

	"tablemate-backend/internal/models"
)

type RoleStore interface {
	UpsertRole(ctx context.Context, userID, permisos string) error
}

// ProvisionService crea el registro de usuario de un restaurante nuevo:
// users/{restId} con permisos "Restaurant". Un solo write incondicional.
type ProvisionService struct {
	users RoleStore
}

func NewProvisionService(u RoleStore) *ProvisionService {
	return &ProvisionService{users: u}
}

func (s *ProvisionService) OnRestaurantCreated(ctx context.Context, restID string) error {
	return s.users.UpsertRole(ctx, restID, models.PermisosRestaurant)
}
