package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tablemate-backend/internal/models"
	"tablemate-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFinder struct {
	docs []models.RestaurantDoc
}

func (s *stubFinder) ListWithLocation(ctx context.Context) ([]models.RestaurantDoc, error) {
	return s.docs, nil
}

func newNearbyHandler(docs ...models.RestaurantDoc) *NearbyHandler {
	return NewNearbyHandler(service.NewNearbyService(&stubFinder{docs: docs}, 0))
}

func doNearby(t *testing.T, h *NearbyHandler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/nearbyRestaurants"+query, nil)
	rec := httptest.NewRecorder()
	h.GetNearby(rec, req)
	return rec
}

func TestNearbyMissingParams(t *testing.T) {
	rec := doNearby(t, newNearbyHandler(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body failedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FAILED", body.Status)
	assert.NotEmpty(t, body.Msg)
}

func TestNearbyNonNumericParam(t *testing.T) {
	rec := doNearby(t, newNearbyHandler(), "?lat=abc&lng=0&radius=5")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body failedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FAILED", body.Status)
}

func TestNearbyRadiusOutOfRange(t *testing.T) {
	for _, radius := range []string{"20.5", "2.9", "0", "-1"} {
		rec := doNearby(t, newNearbyHandler(), "?lat=0&lng=0&radius="+radius)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "radius=%s", radius)

		var body failedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "FAILED", body.Status)
	}
}

func TestNearbyOK(t *testing.T) {
	h := newNearbyHandler(models.RestaurantDoc{
		RestID:   "r1",
		Name:     "La Esquina",
		GeoPoint: &models.GeoPoint{Latitude: 0, Longitude: 0},
	})

	rec := doNearby(t, h, "?lat=0&lng=0.01&radius=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var body nearbyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	require.Len(t, body.Restaurants, 1)
	assert.Equal(t, "r1", body.Restaurants[0].Key)
	assert.InDelta(t, 1.11, body.Restaurants[0].Distance, 0.01)
}

func TestNearbyOKEmpty(t *testing.T) {
	rec := doNearby(t, newNearbyHandler(), "?lat=0&lng=0&radius=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var body nearbyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.NotNil(t, body.Restaurants)
	assert.Empty(t, body.Restaurants)
}
