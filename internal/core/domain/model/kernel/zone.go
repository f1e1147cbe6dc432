package kernel

import (
	"errors"
	"fmt"
	"math"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when a zero value Zone is used.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError("zone must be created via NewZone constructor")

// Zone is a circle on the Earth's surface: a centre Location and a radius in meters.
// A dig site and the safety buffer around a protected asset are both zones.
type Zone struct { //nolint:recvcheck //using for validation
	center       Location
	radiusMeters float64
	guard        guard.ConstructorGuard
}

// NewZone creates a Zone. The centre must be a constructed Location and the
// radius a finite number of meters that is not negative.
func NewZone(center Location, radiusMeters float64) (Zone, error) {
	zone := Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(zone.setCenter(center), zone.setRadius(radiusMeters)); err != nil {
		return Zone{}, err
	}

	return zone, nil
}

// Validate reports whether the Zone was built by NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Center returns the centre of the zone.
func (z Zone) Center() Location {
	return z.center
}

// RadiusMeters returns the radius of the zone.
func (z Zone) RadiusMeters() float64 {
	return z.radiusMeters
}

// String implements fmt.Stringer.
func (z Zone) String() string {
	return fmt.Sprintf("Zone(%s,r=%gm)", z.center, z.radiusMeters)
}

// Overlaps reports whether two zones intersect and returns the distance between
// their centres.
//
// Zones overlap only when the centre distance is strictly less than the sum
// of both radii. Circles that exactly touch do not overlap.
func (z Zone) Overlaps(other Zone) (bool, float64, error) {
	if err := errors.Join(z.Validate(), other.Validate()); err != nil {
		return false, 0, err
	}

	distance, err := z.center.DistanceTo(other.center)
	if err != nil {
		return false, 0, err
	}

	return distance < z.radiusMeters+other.radiusMeters, distance, nil
}

func (z *Zone) setCenter(center Location) error {
	if err := center.Validate(); err != nil {
		return err
	}

	z.center = center
	return nil
}

func (z *Zone) setRadius(radiusMeters float64) error {
	if err := ValidateRadius(radiusMeters); err != nil {
		return err
	}

	z.radiusMeters = radiusMeters
	return nil
}

// ValidateRadius checks that a radius is a finite, non negative number of meters.
func ValidateRadius(radiusMeters float64) error {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return errs.NewValueIsInvalidErrorWithCause("radiusMeters", fmt.Errorf("%v is not a finite number", radiusMeters))
	}
	if radiusMeters < 0 {
		return errs.NewValueIsOutOfRangeError("radiusMeters", radiusMeters, 0, math.MaxFloat64)
	}
	return nil
}
