package repository

import (
	"context"

	"tablemate-backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

// FindIDs devuelve hasta `limit` ids de reviews del restaurante, sin ningún
// orden en particular. Lo usa el borrado en cascada para armar cada lote.
func (r *ReviewRepository) FindIDs(ctx context.Context, restID string, limit int) ([]primitive.ObjectID, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 1})

	cur, err := r.col.Find(ctx, bson.M{"restId": restID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []primitive.ObjectID
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}

// DeleteByIDs borra un lote de reviews en una sola operación.
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// TotalsByRestaurant calcula (suma, cantidad) de los ratings reales de un
// restaurante con un $group. Lo usa el mantenimiento admin para recontar.
func (r *ReviewRepository) TotalsByRestaurant(ctx context.Context, restID string) (float64, int, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"restId": restID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var res struct {
		Total float64 `bson:"total"`
		Count int     `bson:"count"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&res); err != nil {
			return 0, 0, err
		}
	}
	return res.Total, res.Count, cur.Err()
}
