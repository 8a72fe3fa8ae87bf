package models

type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// RestaurantDoc es el documento tal cual vive en Mongo.
//
// rating y numReviews son el contrato externo: rating es el promedio de las
// reviews actuales (0 si no hay ninguna). ratingTotal es la suma acumulada y
// es lo que realmente se mantiene en las transacciones; rating se recalcula
// como total/count en cada escritura para no acumular error de punto
// flotante. Documentos viejos pueden no traer ratingTotal (ver
// AggregateState).
type RestaurantDoc struct {
	RestID      string    `json:"restId" bson:"restId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	Categories  []string  `json:"categories,omitempty" bson:"categories,omitempty"`
	GeoPoint    *GeoPoint `json:"geoPoint,omitempty" bson:"geoPoint,omitempty"`
	Rating      float64   `json:"rating" bson:"rating"`
	NumReviews  int       `json:"numReviews" bson:"numReviews"`
	RatingTotal float64   `json:"-" bson:"ratingTotal"`
	CreatedAt   string    `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// AggregateState devuelve (total, count) reconstruyendo el total a partir de
// rating*numReviews para documentos creados antes de que existiera
// ratingTotal.
func (r *RestaurantDoc) AggregateState() (float64, int) {
	total := r.RatingTotal
	if total == 0 && r.NumReviews > 0 {
		total = r.Rating * float64(r.NumReviews)
	}
	return total, r.NumReviews
}

// AggregateApply recibe el estado actual (total, count) leído dentro de una
// transacción y devuelve el nuevo estado. Si devuelve error la transacción
// se aborta sin escribir nada.
type AggregateApply func(total float64, count int) (newTotal float64, newCount int, err error)

// NearbyRestaurant es lo que devuelve /nearbyRestaurants: el restaurante más
// su key y la distancia en km al punto consultado.
type NearbyRestaurant struct {
	RestaurantDoc
	Key      string  `json:"key"`
	Distance float64 `json:"distance"`
}
