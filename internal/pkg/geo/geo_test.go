package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var office = Point{Latitude: 57.133063, Longitude: 65.506559}

func TestDistance_OfficeExample(t *testing.T) {
	d := Distance(office, Point{Latitude: 57.133200, Longitude: 65.506700})

	assert.Greater(t, d, 15.0)
	assert.Less(t, d, 20.0)
	assert.True(t, WithinRange(d, DefaultRadiusMeters))
}

func TestDistance_Symmetric(t *testing.T) {
	points := []Point{
		{57.133200, 65.506700},
		{57.140000, 65.520000},
		{-33.8688, 151.2093},
		{0, 0},
	}
	for _, p := range points {
		assert.InDelta(t, Distance(office, p), Distance(p, office), 1e-9)
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_KnownArc(t *testing.T) {
	// one degree of latitude on a 6371 km sphere
	d := Distance(Point{0, 0}, Point{1, 0})
	assert.InDelta(t, 111194.9, d, 0.1)
}

func TestFence_Contains(t *testing.T) {
	f := NewFence(office.Latitude, office.Longitude, 100)

	// ~0.0009 degrees of latitude is roughly 100 m
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", office, true},
		{"near", Point{57.133200, 65.506700}, true},
		{"about 89m north", Point{office.Latitude + 0.0008, office.Longitude}, true},
		{"about 111m north", Point{office.Latitude + 0.001, office.Longitude}, false},
		{"other city", Point{56.8389, 60.6057}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := f.Contains(c.p)
			assert.Equal(t, c.want, ok)
		})
	}
}

func TestWithinRange_Boundary(t *testing.T) {
	assert.True(t, WithinRange(100, 100))
	assert.True(t, WithinRange(99.999, 100))
	assert.False(t, WithinRange(100.001, 100))
}

func TestNewFence_DefaultRadius(t *testing.T) {
	f := NewFence(1, 2, 0)
	assert.Equal(t, float64(DefaultRadiusMeters), f.RadiusMeters)
}
