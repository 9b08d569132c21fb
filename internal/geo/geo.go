package geo

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371.0

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm is the great-circle distance between two coordinates on the
// R=6371 km sphere model (haversine).
func DistanceKm(a, b Coordinate) float64 {
	lat1Rad, lon1Rad := a.Lat*(math.Pi/180), a.Lng*(math.Pi/180)
	lat2Rad, lon2Rad := b.Lat*(math.Pi/180), b.Lng*(math.Pi/180)
	dLat, dLon := lat2Rad-lat1Rad, lon2Rad-lon1Rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ParseLatLng parses the legacy "lat,lng" free-text form. Used once at write
// time; stored locations are numeric columns.
func ParseLatLng(s string) (Coordinate, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Coordinate{}, false
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return Coordinate{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinate{}, false
	}

	return Coordinate{Lat: lat, Lng: lng}, true
}

// SortByDistance orders items ascending by distance from origin, preserving
// the incoming order among equal distances.
func SortByDistance[T any](items []T, origin Coordinate, location func(T) Coordinate) {
	sort.SliceStable(items, func(i, j int) bool {
		return DistanceKm(origin, location(items[i])) < DistanceKm(origin, location(items[j]))
	})
}
