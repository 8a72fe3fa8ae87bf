package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"tablemate-backend/internal/models"
	"tablemate-backend/internal/service"
)

type NearbyHandler struct {
	svc *service.NearbyService
}

func NewNearbyHandler(s *service.NearbyService) *NearbyHandler {
	return &NearbyHandler{svc: s}
}

type nearbyResponse struct {
	Status      string                    `json:"status"`
	Restaurants []models.NearbyRestaurant `json:"restaurants"`
}

type failedResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// @Summary Restaurantes cercanos
// @Description Filtra y ordena los restaurantes por distancia al punto dado.
// @Tags restaurants
// @Produce json
// @Param lat query number true "latitud"
// @Param lng query number true "longitud"
// @Param radius query number true "radio en km (3 a 20)"
// @Success 200 {object} nearbyResponse
// @Failure 400 {object} failedResponse
// @Router /nearbyRestaurants [get]
func (h *NearbyHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := parseFloatParam(q.Get("lat"), "lat")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failedResponse{Status: "FAILED", Msg: err.Error()})
		return
	}
	lng, err := parseFloatParam(q.Get("lng"), "lng")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failedResponse{Status: "FAILED", Msg: err.Error()})
		return
	}
	radius, err := parseFloatParam(q.Get("radius"), "radius")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failedResponse{Status: "FAILED", Msg: err.Error()})
		return
	}
	if radius < service.RadiusMin || radius > service.RadiusMax {
		writeJSON(w, http.StatusBadRequest, failedResponse{
			Status: "FAILED",
			Msg:    fmt.Sprintf("radius debe estar entre %g y %g", service.RadiusMin, service.RadiusMax),
		})
		return
	}

	restaurants, err := h.svc.Nearby(r.Context(), lat, lng, radius)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, nearbyResponse{Status: "OK", Restaurants: restaurants})
}

func parseFloatParam(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("falta el parámetro %s", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser numérico", name)
	}
	return v, nil
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
