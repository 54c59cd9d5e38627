package service

import (
	"math"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

const earthRadiusMeters = 6371000

// Distance returns the great-circle distance in meters between two
// coordinates. Either coordinate being out of range yields
// domain.ErrInvalidCoordinate.
func Distance(a, b domain.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return haversine(a.Lat, a.Lon, b.Lat, b.Lon), nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
