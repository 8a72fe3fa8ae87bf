package service

import (
	"context"
	"fmt"
	"sort"

	"tablemate-backend/internal/cache"
	"tablemate-backend/internal/geo"
	"tablemate-backend/internal/models"
)

// Rango permitido para el radio de búsqueda (km).
const (
	RadiusMin = 3.0
	RadiusMax = 20.0
)

type RestaurantFinder interface {
	ListWithLocation(ctx context.Context) ([]models.RestaurantDoc, error)
}

type NearbyService struct {
	restaurants RestaurantFinder
	cacheTTL    int
}

func NewNearbyService(r RestaurantFinder, cacheTTL int) *NearbyService {
	return &NearbyService{restaurants: r, cacheTTL: cacheTTL}
}

const nearbyCachePrefix = "nearby:"

func nearbyCacheKey(lat, lng, radius float64) string {
	// redondear la key junta consultas casi idénticas
	return fmt.Sprintf("%s%.4f:%.4f:%.1f", nearbyCachePrefix, lat, lng, radius)
}

// NearbyCache borra todas las búsquedas cacheadas. El dispatcher lo invoca
// cuando un restaurante aparece o desaparece, que es cuando los resultados
// cacheados dejan de valer.
type NearbyCache struct{}

func (NearbyCache) InvalidateNearby(ctx context.Context) error {
	return cache.DelPrefix(ctx, nearbyCachePrefix)
}

// Nearby devuelve los restaurantes a menos de `radius` km de (lat, lng),
// ordenados por distancia ascendente. Los parámetros ya vienen validados por
// el handler.
func (s *NearbyService) Nearby(ctx context.Context, lat, lng, radius float64) ([]models.NearbyRestaurant, error) {
	key := nearbyCacheKey(lat, lng, radius)

	var cached []models.NearbyRestaurant
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	docs, err := s.restaurants.ListWithLocation(ctx)
	if err != nil {
		return nil, err
	}

	// slice no-nil para que el JSON sea [] y no null
	out := []models.NearbyRestaurant{}
	for _, d := range docs {
		if d.GeoPoint == nil {
			continue
		}
		dist := geo.Haversine(lat, lng, d.GeoPoint.Latitude, d.GeoPoint.Longitude)
		if dist <= radius {
			out = append(out, models.NearbyRestaurant{
				RestaurantDoc: d,
				Key:           d.RestID,
				Distance:      dist,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	_ = cache.SetJSON(ctx, key, out, s.cacheTTL)
	return out, nil
}
