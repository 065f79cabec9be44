package geo

import "math"

// EarthRadiusMeters is the mean radius used by the haversine formula.
const EarthRadiusMeters = 6371000

// DefaultRadiusMeters is how far from the office an arrival is still accepted.
const DefaultRadiusMeters = 100

type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WithinRange reports whether distance is inside the threshold.
// A point exactly on the boundary counts as inside.
func WithinRange(distance, thresholdMeters float64) bool {
	return distance <= thresholdMeters
}

// Fence is a circular area around a reference coordinate.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

func NewFence(lat, lon, radiusMeters float64) Fence {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	return Fence{Center: Point{Latitude: lat, Longitude: lon}, RadiusMeters: radiusMeters}
}

// Contains returns the distance from the fence center and whether p is in range.
func (f Fence) Contains(p Point) (float64, bool) {
	d := Distance(f.Center, p)
	return d, WithinRange(d, f.RadiusMeters)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
