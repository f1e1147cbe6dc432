package asset

import (
	"fmt"
	"slices"
)

// Registry is an ordered, immutable set of protected assets.
// Iteration order is the order the assets were registered in, which keeps
// conflict detection deterministic.
type Registry struct {
	assets []*ProtectedAsset
}

// NewRegistry builds a registry from constructed assets with unique ids.
// An empty registry is valid: nothing can conflict with it.
func NewRegistry(assets ...*ProtectedAsset) (Registry, error) {
	seen := make(map[string]struct{}, len(assets))
	for i, a := range assets {
		if err := a.Validate(); err != nil {
			return Registry{}, fmt.Errorf("asset #%d: %w", i, err)
		}
		if _, ok := seen[a.ID()]; ok {
			return Registry{}, fmt.Errorf("%w: %s", ErrDuplicateAssetID, a.ID())
		}
		seen[a.ID()] = struct{}{}
	}

	return Registry{assets: slices.Clone(assets)}, nil
}

// Assets returns the registered assets in registration order.
// The returned slice is a copy.
func (r Registry) Assets() []*ProtectedAsset {
	return slices.Clone(r.assets)
}

// Len returns the number of registered assets.
func (r Registry) Len() int {
	return len(r.assets)
}

// Find returns the asset with the given id.
func (r Registry) Find(id string) (*ProtectedAsset, bool) {
	for _, a := range r.assets {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}
