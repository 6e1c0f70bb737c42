package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// GeometryDigest returns a stable digest of a GeoJSON payload, used as the
// cache key component for per-layer query results.
func GeometryDigest(geojson []byte) string {
	sum := sha256.Sum256(geojson)
	return hex.EncodeToString(sum[:16])
}

// ValidateCoordinates checks a lon/lat pair is on the globe.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
