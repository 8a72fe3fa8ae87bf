package repository

import (
	"context"
	"time"

	"tablemate-backend/internal/db"
	"tablemate-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// UpsertRole setea permisos del usuario, creando el documento si no existe.
// Es un write incondicional: ejecutarlo dos veces da el mismo resultado, lo
// que lo hace seguro ante re-entrega de eventos.
func (r *UserRepository) UpsertRole(ctx context.Context, userID, permisos string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         bson.M{"permisos": permisos},
			"$setOnInsert": bson.M{"createdAt": time.Now().Format(time.RFC3339)},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
