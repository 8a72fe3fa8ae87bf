package events

import (
	"context"
	"log"
	"time"

	"tablemate-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watcher convierte los change streams de Mongo en eventos de dominio.
// Para updates y deletes necesita las pre-images de la colección
// (changeStreamPreAndPostImages habilitado en `restaurants` y `reviews`);
// sin pre-image no hay forma de saber el rating anterior ni a qué
// restaurante pertenecía un documento borrado.
type Watcher struct {
	restaurants *mongo.Collection
	reviews     *mongo.Collection
	out         chan Event
}

func NewWatcher(database *mongo.Database) *Watcher {
	return &Watcher{
		restaurants: database.Collection("restaurants"),
		reviews:     database.Collection("reviews"),
		out:         make(chan Event, 64),
	}
}

func (w *Watcher) Events() <-chan Event {
	return w.out
}

// Run abre un stream por colección y los mantiene abiertos hasta que se
// cancele el contexto, reabriéndolos ante errores.
func (w *Watcher) Run(ctx context.Context) {
	go w.watchLoop(ctx, "restaurants", w.restaurants, w.decodeRestaurantChange)
	go w.watchLoop(ctx, "reviews", w.reviews, w.decodeReviewChange)
}

// changeDoc es la parte del documento de cambio que nos interesa.
type changeDoc struct {
	OperationType            string   `bson:"operationType"`
	FullDocument             bson.Raw `bson:"fullDocument"`
	FullDocumentBeforeChange bson.Raw `bson:"fullDocumentBeforeChange"`
}

func (w *Watcher) watchLoop(ctx context.Context, name string, col *mongo.Collection, decode func(changeDoc) (Event, bool)) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
		}}},
	}
	opts := options.ChangeStream().
		SetFullDocument(options.UpdateLookup).
		SetFullDocumentBeforeChange(options.WhenAvailable)

	for {
		if ctx.Err() != nil {
			return
		}

		stream, err := col.Watch(ctx, pipeline, opts)
		if err != nil {
			log.Printf("[watcher] no se pudo abrir stream de %s: %v (reintento en 5s)\n", name, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		log.Printf("[watcher] stream de %s abierto\n", name)

		for stream.Next(ctx) {
			var ch changeDoc
			if err := stream.Decode(&ch); err != nil {
				log.Printf("[watcher] %s: decode error: %v\n", name, err)
				continue
			}
			ev, ok := decode(ch)
			if !ok {
				continue
			}
			ev.ID = uuid.NewString()

			select {
			case w.out <- ev:
			case <-ctx.Done():
				stream.Close(context.Background())
				return
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.Printf("[watcher] stream de %s se cortó: %v (reabriendo)\n", name, err)
		}
		stream.Close(context.Background())

		if ctx.Err() != nil {
			return
		}
	}
}

func (w *Watcher) decodeRestaurantChange(ch changeDoc) (Event, bool) {
	switch ch.OperationType {
	case "insert":
		var doc models.RestaurantDoc
		if err := bson.Unmarshal(ch.FullDocument, &doc); err != nil || doc.RestID == "" {
			log.Printf("[watcher] restaurante insertado sin restId decodificable\n")
			return Event{}, false
		}
		return Event{Kind: RestaurantCreated, RestID: doc.RestID}, true

	case "delete":
		var doc models.RestaurantDoc
		if ch.FullDocumentBeforeChange == nil {
			log.Printf("[watcher] delete de restaurante sin pre-image, no se puede cascadear\n")
			return Event{}, false
		}
		if err := bson.Unmarshal(ch.FullDocumentBeforeChange, &doc); err != nil || doc.RestID == "" {
			return Event{}, false
		}
		return Event{Kind: RestaurantDeleted, RestID: doc.RestID}, true
	}
	// updates de restaurante (edición de campos por el dueño) no generan
	// trabajo acá
	return Event{}, false
}

func (w *Watcher) decodeReviewChange(ch changeDoc) (Event, bool) {
	switch ch.OperationType {
	case "insert":
		var doc models.ReviewDoc
		if err := bson.Unmarshal(ch.FullDocument, &doc); err != nil || doc.RestID == "" {
			return Event{}, false
		}
		return Event{Kind: ReviewCreated, RestID: doc.RestID, Review: &doc}, true

	case "update", "replace":
		if ch.FullDocument == nil || ch.FullDocumentBeforeChange == nil {
			log.Printf("[watcher] update de review sin before/after completos, se descarta\n")
			return Event{}, false
		}
		var after, before models.ReviewDoc
		if err := bson.Unmarshal(ch.FullDocument, &after); err != nil || after.RestID == "" {
			return Event{}, false
		}
		if err := bson.Unmarshal(ch.FullDocumentBeforeChange, &before); err != nil {
			return Event{}, false
		}
		if before.Rating == after.Rating {
			// cambió el texto u otro campo, el agregado no se mueve
			return Event{}, false
		}
		return Event{Kind: ReviewUpdated, RestID: after.RestID, Review: &after, Before: &before}, true

	case "delete":
		if ch.FullDocumentBeforeChange == nil {
			log.Printf("[watcher] delete de review sin pre-image, se pierde el rating\n")
			return Event{}, false
		}
		var doc models.ReviewDoc
		if err := bson.Unmarshal(ch.FullDocumentBeforeChange, &doc); err != nil || doc.RestID == "" {
			return Event{}, false
		}
		return Event{Kind: ReviewDeleted, RestID: doc.RestID, Review: &doc}, true
	}
	return Event{}, false
}
