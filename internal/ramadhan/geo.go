package ramadhan

import (
	"fmt"
	"math"
	"strings"
)

const EarthRadiusMeters = 6371e3

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters menghitung jarak great-circle (Haversine) antara dua titik.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

type GeofenceMode string

const (
	GeofenceBypassed GeofenceMode = "bypassed"
	GeofenceEnforced GeofenceMode = "enforced"
)

func ParseGeofenceMode(s string) (GeofenceMode, error) {
	switch m := GeofenceMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return GeofenceBypassed, nil
	case GeofenceBypassed, GeofenceEnforced:
		return m, nil
	default:
		return "", fmt.Errorf("unknown geofence mode %q", s)
	}
}

// Geofence memeriksa apakah seseorang berada di sekitar masjid.
// Mode bawaan (zero value) adalah GeofenceBypassed: jarak tetap dihitung
// untuk dicatat, tetapi hasilnya selalu lolos.
type Geofence struct {
	Venue        Coordinate
	RadiusMeters float64
	Mode         GeofenceMode
}

func (g Geofence) Check(lat, lon float64) (bool, float64) {
	distance := DistanceMeters(lat, lon, g.Venue.Latitude, g.Venue.Longitude)
	if g.Mode != GeofenceEnforced {
		return true, distance
	}
	return distance <= g.RadiusMeters, distance
}

func (g Geofence) IsWithin(lat, lon float64) bool {
	within, _ := g.Check(lat, lon)
	return within
}
