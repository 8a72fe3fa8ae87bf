package repository

import (
	"context"
	"errors"
	"time"

	"tablemate-backend/internal/db"
	"tablemate-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrRestaurantNotFound = errors.New("restaurante no encontrado")

type RestaurantRepository struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{
		client: db.Client(),
		col:    db.DB().Collection("restaurants"),
	}
}

func (r *RestaurantRepository) GetByID(ctx context.Context, restID string) (*models.RestaurantDoc, error) {
	var doc models.RestaurantDoc
	err := r.col.FindOne(ctx, bson.M{"restId": restID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &doc, err
}

// UpdateAggregates ejecuta una lectura-modificación-escritura transaccional
// sobre los agregados (ratingTotal, numReviews) de un restaurante. El driver
// reintenta solo las transacciones que abortan por conflicto con otra
// escritura concurrente (TransientTransactionError), así que dos eventos
// sobre el mismo restaurante nunca computan a partir del mismo estado viejo.
// Eventos sobre restaurantes distintos no contienden entre sí.
func (r *RestaurantRepository) UpdateAggregates(ctx context.Context, restID string, apply models.AggregateApply) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		var doc models.RestaurantDoc
		if err := r.col.FindOne(sc, bson.M{"restId": restID}).Decode(&doc); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrRestaurantNotFound
			}
			return nil, err
		}

		total, count := doc.AggregateState()

		newTotal, newCount, err := apply(total, count)
		if err != nil {
			return nil, err
		}

		rating := 0.0
		if newCount > 0 {
			rating = newTotal / float64(newCount)
		}

		_, err = r.col.UpdateOne(sc,
			bson.M{"restId": restID},
			bson.M{"$set": bson.M{
				"rating":      rating,
				"numReviews":  newCount,
				"ratingTotal": newTotal,
				"updatedAt":   time.Now().Format(time.RFC3339),
			}},
		)
		return nil, err
	})
	return err
}

// SetAggregates escribe los agregados directamente (lo usa el recount admin).
func (r *RestaurantRepository) SetAggregates(ctx context.Context, restID string, total float64, count int) error {
	rating := 0.0
	if count > 0 {
		rating = total / float64(count)
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"restId": restID},
		bson.M{"$set": bson.M{
			"rating":      rating,
			"numReviews":  count,
			"ratingTotal": total,
			"updatedAt":   time.Now().Format(time.RFC3339),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

// ListWithLocation devuelve los restaurantes que tienen geoPoint seteado.
func (r *RestaurantRepository) ListWithLocation(ctx context.Context) ([]models.RestaurantDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"geoPoint": bson.M{"$exists": true}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RestaurantDoc
	for cur.Next(ctx) {
		var doc models.RestaurantDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

func (r *RestaurantRepository) ListAll(ctx context.Context) ([]models.RestaurantDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RestaurantDoc
	for cur.Next(ctx) {
		var doc models.RestaurantDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// WatchAggregates abre un change stream filtrado a un solo restaurante; cada
// vez que cambia el documento entrega la versión nueva completa.
func (r *RestaurantRepository) WatchAggregates(ctx context.Context, restID string) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType":       bson.M{"$in": bson.A{"update", "replace"}},
			"fullDocument.restId": restID,
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	return r.col.Watch(ctx, pipeline, opts)
}
