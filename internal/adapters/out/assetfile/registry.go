// Package assetfile loads the protected asset registry from a TOML file.
//
// File format:
//
//	[[assets]]
//	id = "GAS-99"
//	name = "High Pressure Gas Main"
//	owner = "Gas Company"
//	latitude = 40.7128
//	longitude = -74.0060
//	safety_buffer_meters = 50.0
//
// Assets keep the order of the file; that order decides which conflict is
// reported first.
package assetfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"workorders/internal/core/domain/model/asset"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/pelletier/go-toml/v2"
)

type fileFormat struct {
	Assets []assetEntry `toml:"assets"`
}

type assetEntry struct {
	ID                 string   `toml:"id"`
	Name               string   `toml:"name"`
	Owner              string   `toml:"owner"`
	Latitude           *float64 `toml:"latitude"`
	Longitude          *float64 `toml:"longitude"`
	SafetyBufferMeters *float64 `toml:"safety_buffer_meters"`
}

// DefaultRegistry returns the built-in registry: the high pressure gas main.
func DefaultRegistry() asset.Registry {
	loc, err := kernel.NewLocation(40.7128, -74.0060)
	if err != nil {
		panic(err)
	}
	gas, err := asset.NewProtectedAsset("GAS-99", "High Pressure Gas Main", "Gas Company", loc, 50)
	if err != nil {
		panic(err)
	}
	registry, err := asset.NewRegistry(gas)
	if err != nil {
		panic(err)
	}
	return registry
}

// Load reads the registry at path. An empty path yields DefaultRegistry.
func Load(path string) (asset.Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return asset.Registry{}, fmt.Errorf("open asset registry: %w", err)
	}
	defer file.Close()

	registry, err := Decode(file)
	if err != nil {
		return asset.Registry{}, fmt.Errorf("%s: %w", path, err)
	}
	return registry, nil
}

// Decode parses a TOML registry. Unknown keys and invalid assets are errors.
func Decode(r io.Reader) (asset.Registry, error) {
	var content fileFormat
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&content); err != nil {
		return asset.Registry{}, fmt.Errorf("parse asset registry: %w", err)
	}

	assets := make([]*asset.ProtectedAsset, 0, len(content.Assets))
	var errList []error
	for i, entry := range content.Assets {
		a, err := entry.toDomain()
		if err != nil {
			errList = append(errList, fmt.Errorf("asset #%d: %w", i+1, err))
			continue
		}
		assets = append(assets, a)
	}
	if err := errors.Join(errList...); err != nil {
		return asset.Registry{}, err
	}

	return asset.NewRegistry(assets...)
}

func (e assetEntry) toDomain() (*asset.ProtectedAsset, error) {
	var missing []error
	if e.Latitude == nil {
		missing = append(missing, errs.NewValueIsRequiredError("latitude"))
	}
	if e.Longitude == nil {
		missing = append(missing, errs.NewValueIsRequiredError("longitude"))
	}
	if e.SafetyBufferMeters == nil {
		missing = append(missing, errs.NewValueIsRequiredError("safety_buffer_meters"))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	loc, err := kernel.NewLocation(*e.Latitude, *e.Longitude)
	if err != nil {
		return nil, err
	}

	return asset.NewProtectedAsset(e.ID, e.Name, e.Owner, loc, *e.SafetyBufferMeters)
}
