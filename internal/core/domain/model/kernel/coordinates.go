package kernel

import (
	"errors"
	"fmt"
	"math"

	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a point in degrees. The route optimizer treats latitude and
// longitude as a plane, which is accurate enough inside one city.
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates the latitude and longitude bounds.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// MustNewCoordinates panics on invalid input. Intended for static tables.
func MustNewCoordinates(lat, lng float64) Coordinates {
	c, err := NewCoordinates(lat, lng)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

func (c Coordinates) Lng() float64 {
	return c.lng
}

func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.lat, c.lng)
}

// Distance is the Euclidean distance between two points, in degrees.
func (c Coordinates) Distance(other Coordinates) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return math.Hypot(c.lat-other.lat, c.lng-other.lng), nil
}

// Offset shifts the point, clamping to the valid range.
func (c Coordinates) Offset(dLat, dLng float64) Coordinates {
	return Coordinates{
		lat:   clamp(c.lat+dLat, LatitudeMin, LatitudeMax),
		lng:   clamp(c.lng+dLng, LongitudeMin, LongitudeMax),
		guard: guard.NewConstructorGuard(),
	}
}

func (c *Coordinates) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	c.lat = lat
	return nil
}

func (c *Coordinates) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	c.lng = lng
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
