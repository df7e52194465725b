package models

// Place is a point of interest identified by its Google Places id.
type Place struct {
	ID            int64
	GooglePlaceID string  `validate:"required,max=255"`
	Name          string  `validate:"required"`
	Address       string
	Latitude      float64 `validate:"gte=-90,lte=90"`
	Longitude     float64 `validate:"gte=-180,lte=180"`
}
