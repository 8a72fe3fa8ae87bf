package models

// Respuesta del recount manual de un restaurante.
type AdminRecountResult struct {
	RestID     string  `json:"restId"`
	Rating     float64 `json:"rating"`
	NumReviews int     `json:"numReviews"`
	// true si los agregados guardados no coincidían con las reviews
	Changed bool `json:"changed"`
}

// Un restaurante cuyos agregados guardados no coinciden con sus reviews.
type RestaurantDrift struct {
	RestID           string  `json:"restId"`
	StoredRating     float64 `json:"storedRating"`
	StoredNumReviews int     `json:"storedNumReviews"`
	RealRating       float64 `json:"realRating"`
	RealNumReviews   int     `json:"realNumReviews"`
}

// Resumen global del estado de los agregados.
type AdminAggregateSummary struct {
	TotalRestaurants int64             `json:"totalRestaurants"`
	Checked          int64             `json:"checked"`
	WithDrift        int64             `json:"withDrift"`
	Drifted          []RestaurantDrift `json:"drifted"`
}
