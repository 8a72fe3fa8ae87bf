package handler

import (
	"net/http"

	"tablemate-backend/internal/models"
	"tablemate-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
)

// upgrader global
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RestaurantWSHandler empuja los agregados de un restaurante por WebSocket
// cada vez que cambian (alimentado por el change stream de Mongo, así
// funciona aunque el que escribe sea otro proceso).
type RestaurantWSHandler struct {
	restaurants *repository.RestaurantRepository
}

func NewRestaurantWSHandler(r *repository.RestaurantRepository) *RestaurantWSHandler {
	return &RestaurantWSHandler{restaurants: r}
}

type ratingUpdateMsg struct {
	Type       string  `json:"type"`
	RestID     string  `json:"restId"`
	Rating     float64 `json:"rating"`
	NumReviews int     `json:"numReviews"`
}

// @Summary Rating en tiempo real (WebSocket)
// @Tags restaurants
// @Produce json
// @Param id path string true "restId"
// @Success 200 {object} map[string]interface{}
// @Router /ws/restaurants/{id}/rating [get]
func (h *RestaurantWSHandler) StreamRating(w http.ResponseWriter, r *http.Request) {
	restID := chi.URLParam(r, "id")

	doc, err := h.restaurants.GetByID(r.Context(), restID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if doc == nil {
		http.Error(w, "restaurante no encontrado", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "no se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	// estado actual como primer mensaje
	_ = conn.WriteJSON(ratingUpdateMsg{
		Type:       "current",
		RestID:     doc.RestID,
		Rating:     doc.Rating,
		NumReviews: doc.NumReviews,
	})

	stream, err := h.restaurants.WatchAggregates(r.Context(), restID)
	if err != nil {
		_ = conn.WriteJSON(map[string]any{"type": "error", "msg": err.Error()})
		return
	}
	defer stream.Close(r.Context())

	for stream.Next(r.Context()) {
		var ch struct {
			FullDocument bson.Raw `bson:"fullDocument"`
		}
		if err := stream.Decode(&ch); err != nil || ch.FullDocument == nil {
			continue
		}
		var updated models.RestaurantDoc
		if err := bson.Unmarshal(ch.FullDocument, &updated); err != nil {
			continue
		}
		if err := conn.WriteJSON(ratingUpdateMsg{
			Type:       "update",
			RestID:     updated.RestID,
			Rating:     updated.Rating,
			NumReviews: updated.NumReviews,
		}); err != nil {
			// el cliente cerró
			return
		}
	}
}
