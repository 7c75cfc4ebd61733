package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		a       Point
		b       Point
		want    float64 // meters
		epsilon float64
	}{
		{
			name:    "same point",
			a:       Point{Lat: 52.5200, Lng: 13.4050},
			b:       Point{Lat: 52.5200, Lng: 13.4050},
			want:    0,
			epsilon: 0.001,
		},
		{
			name:    "berlin to hamburg",
			a:       Point{Lat: 52.5200, Lng: 13.4050},
			b:       Point{Lat: 53.5511, Lng: 9.9937},
			want:    255000,
			epsilon: 3000,
		},
		{
			name:    "one degree of latitude",
			a:       Point{Lat: 0, Lng: 0},
			b:       Point{Lat: 1, Lng: 0},
			want:    111195,
			epsilon: 100,
		},
		{
			name:    "across the antimeridian",
			a:       Point{Lat: 0, Lng: 179.9},
			b:       Point{Lat: 0, Lng: -179.9},
			want:    22239,
			epsilon: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.epsilon)

			// Distance is symmetric
			assert.InDelta(t, got, Distance(tt.b, tt.a), 0.001)
		})
	}
}

func TestBoxAround(t *testing.T) {
	center := Point{Lat: 40.7580, Lng: -73.9855}
	box := BoxAround(center, 2000)

	assert.True(t, box.Contains(center))
	assert.Less(t, box.MinLat, center.Lat)
	assert.Greater(t, box.MaxLat, center.Lat)
	assert.Less(t, box.MinLng, center.Lng)
	assert.Greater(t, box.MaxLng, center.Lng)

	// Every corner of the box must be at least radius away along an axis,
	// so a point just past the radius due north is still inside.
	north := Point{Lat: center.Lat + 0.017, Lng: center.Lng}
	assert.True(t, box.Contains(north))

	// A point well outside is excluded
	far := Point{Lat: center.Lat + 1, Lng: center.Lng}
	assert.False(t, box.Contains(far))
}

func TestBoxAroundPole(t *testing.T) {
	box := BoxAround(Point{Lat: 89.9999, Lng: 0}, 5000)

	assert.LessOrEqual(t, box.MaxLat, 90.0)
	assert.Equal(t, -180.0, box.MinLng)
	assert.Equal(t, 180.0, box.MaxLng)
}
