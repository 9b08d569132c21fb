package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	// Los Angeles to San Francisco, roughly 559 km great-circle.
	la := Coordinate{Lat: 34.0522, Lng: -118.2437}
	sf := Coordinate{Lat: 37.7749, Lng: -122.4194}

	d := DistanceKm(la, sf)
	if d < 540 || d > 580 {
		t.Errorf("DistanceKm(LA, SF) = %.1f, want ~559", d)
	}

	if got := DistanceKm(la, la); got != 0 {
		t.Errorf("distance to self = %f, want 0", got)
	}

	if got, want := DistanceKm(la, sf), DistanceKm(sf, la); math.Abs(got-want) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", got, want)
	}
}

func TestParseLatLng(t *testing.T) {
	coord, ok := ParseLatLng("34.05, -118.24")
	if !ok {
		t.Fatal("expected valid parse")
	}
	if coord.Lat != 34.05 || coord.Lng != -118.24 {
		t.Errorf("got %+v", coord)
	}

	for _, bad := range []string{"", "34.05", "abc,def", "91,0", "0,-181"} {
		if _, ok := ParseLatLng(bad); ok {
			t.Errorf("ParseLatLng(%q) accepted, want reject", bad)
		}
	}
}

func TestSortByDistance(t *testing.T) {
	type site struct {
		name string
		at   Coordinate
	}

	origin := Coordinate{Lat: 0, Lng: 0}
	sites := []site{
		{"far", Coordinate{Lat: 0, Lng: 0.05}},   // ~5.5 km
		{"near", Coordinate{Lat: 0, Lng: 0.009}}, // ~1 km
		{"mid", Coordinate{Lat: 0, Lng: 0.02}},
	}

	SortByDistance(sites, origin, func(s site) Coordinate { return s.at })

	if sites[0].name != "near" || sites[1].name != "mid" || sites[2].name != "far" {
		t.Errorf("wrong order: %v %v %v", sites[0].name, sites[1].name, sites[2].name)
	}
}

func TestSortByDistanceStable(t *testing.T) {
	type site struct {
		name string
		at   Coordinate
	}

	origin := Coordinate{Lat: 0, Lng: 0}
	same := Coordinate{Lat: 0, Lng: 0.01}
	sites := []site{
		{"first", same},
		{"second", same},
	}

	SortByDistance(sites, origin, func(s site) Coordinate { return s.at })

	if sites[0].name != "first" {
		t.Error("equal-distance order not preserved")
	}
}
