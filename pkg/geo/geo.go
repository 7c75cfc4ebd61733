package geo

import "math"

const earthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// BoundingBox is a lat/lng range used for the fallback range query when the
// nearest-neighbor RPC is unavailable or needs augmentation.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Distance returns the haversine distance between two points in meters.
func Distance(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// BoxAround returns the bounding box covering a circle of radiusMeters
// centered on p. Longitude span widens toward the poles; at the poles the
// box degenerates to the full longitude range.
func BoxAround(p Point, radiusMeters float64) BoundingBox {
	dLat := radiusMeters / earthRadiusMeters * 180 / math.Pi

	cosLat := math.Cos(p.Lat * math.Pi / 180)
	dLng := 180.0
	if cosLat > 1e-9 {
		dLng = dLat / cosLat
	}

	return BoundingBox{
		MinLat: math.Max(p.Lat-dLat, -90),
		MaxLat: math.Min(p.Lat+dLat, 90),
		MinLng: math.Max(p.Lng-dLng, -180),
		MaxLng: math.Min(p.Lng+dLng, 180),
	}
}

// Contains reports whether the point lies inside the box.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
