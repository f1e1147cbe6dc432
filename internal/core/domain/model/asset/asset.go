package asset

import (
	"errors"
	"fmt"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

var (
	// ErrProtectedAssetIsNotConstructed is returned when a ProtectedAsset was not
	// created through NewProtectedAsset.
	ErrProtectedAssetIsNotConstructed = errors.New("ProtectedAsset must be created via NewProtectedAsset constructor")

	// ErrDuplicateAssetID is returned when a registry receives two assets with the same id.
	ErrDuplicateAssetID = errors.New("duplicate protected asset id")
)

// ProtectedAsset is a piece of underground infrastructure, such as a high
// pressure gas main, that excavation must keep clear of.
//
// Invariants:
//   - id, name and owner are non-blank
//   - the safety zone is centred on the asset location with a radius equal
//     to the safety buffer, which is finite and not negative
type ProtectedAsset struct {
	id    string
	name  string
	owner string
	zone  kernel.Zone

	isConstructed bool
}

// NewProtectedAsset creates a ProtectedAsset.
//
// Parameters:
//   - id: stable identifier quoted in conflict reasons (e.g. "GAS-99")
//   - name: human readable asset name
//   - owner: party notified when a work order conflicts with the asset
//   - location: centre of the asset
//   - safetyBufferMeters: minimum clearance around the location
//
// All validation failures are reported together.
func NewProtectedAsset(
	id, name, owner string,
	location kernel.Location,
	safetyBufferMeters float64,
) (*ProtectedAsset, error) {
	a := &ProtectedAsset{
		isConstructed: true,
	}

	zone, zoneErr := kernel.NewZone(location, safetyBufferMeters)
	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setOwner(owner),
		zoneErr,
	); err != nil {
		return nil, err
	}
	a.zone = zone

	return a, nil
}

// Validate ensures the asset was created through NewProtectedAsset.
func (a *ProtectedAsset) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrProtectedAssetIsNotConstructed
	}
	return nil
}

// ID returns the asset identifier.
func (a *ProtectedAsset) ID() string {
	return a.id
}

// Name returns the human readable asset name.
func (a *ProtectedAsset) Name() string {
	return a.name
}

// Owner returns the party to notify about conflicts.
func (a *ProtectedAsset) Owner() string {
	return a.owner
}

// Location returns the asset centre.
func (a *ProtectedAsset) Location() kernel.Location {
	return a.zone.Center()
}

// SafetyBufferMeters returns the required clearance around the asset.
func (a *ProtectedAsset) SafetyBufferMeters() float64 {
	return a.zone.RadiusMeters()
}

// SafetyZone returns the buffered circle that work sites must not overlap.
func (a *ProtectedAsset) SafetyZone() kernel.Zone {
	return a.zone
}

// String implements fmt.Stringer.
func (a *ProtectedAsset) String() string {
	return fmt.Sprintf("%s (ID: %s)", a.name, a.id)
}

func (a *ProtectedAsset) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("asset id")
	}
	a.id = id
	return nil
}

func (a *ProtectedAsset) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("asset name")
	}
	a.name = name
	return nil
}

func (a *ProtectedAsset) setOwner(owner string) error {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return errs.NewValueIsRequiredError("asset owner")
	}
	a.owner = owner
	return nil
}
