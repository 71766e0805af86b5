package geo

import "math"

// earthRadiusMeters - радиус Земли в метрах (WGS-84 mean radius)
const earthRadiusMeters = 6371000.0

// DistanceMeters вычисляет расстояние большого круга между двумя точками
// по формуле гаверсинуса. Все расстояния в проекте считаются в метрах.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
