package kernel

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate with validated latitude and
// longitude. It is an immutable value object.
//
// The point (0, 0) is valid but treated as "location unknown" by callers:
// hauler profiles start there until the first position update, and matching
// skips proximity filtering for such profiles. IsZero reports this state.
//
// Example:
//
//	origin, err := kernel.NewGeoPoint(52.52, 13.405)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(origin) // GeoPoint(52.520000,13.405000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates in degrees.
// Latitude must lie in [LatitudeMin, LatitudeMax] and longitude in
// [LongitudeMin, LongitudeMax]; out-of-range values are rejected.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsZero reports whether the point is the (0, 0) "location unknown" marker.
func (p GeoPoint) IsZero() bool {
	return p.lat == 0 && p.lng == 0
}

// String returns "GeoPoint(lat,lng)" for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality. Both points must be
// properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the Haversine formula. Both points must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	berlin, _ := kernel.NewGeoPoint(52.52, 13.405)
//	hamburg, _ := kernel.NewGeoPoint(53.551, 9.993)
//
//	km, err := berlin.DistanceKm(hamburg)
//	// km ≈ 255, err = nil
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLat sets the latitude with range validation. The private setters use
// pointer receivers so construction can mutate the value; the public API
// stays value-based.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with range validation.
func (p *GeoPoint) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = lng
	return nil
}
