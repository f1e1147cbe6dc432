package queries

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/asset"
	"workorders/internal/pkg/guard"
)

var ErrListProtectedAssetsQueryIsNotConstructed = errors.New(
	"ListProtectedAssetsQuery must be created via NewListProtectedAssetsQuery constructor",
)

// ListProtectedAssetsQuery lists the assets work orders are screened against.
type ListProtectedAssetsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProtectedAssetsQuery() ListProtectedAssetsQuery {
	return ListProtectedAssetsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProtectedAssetsQuery) Validate() error {
	return q.guard.Validate(ErrListProtectedAssetsQueryIsNotConstructed)
}

// ProtectedAssetResponse is the read model of a protected asset.
type ProtectedAssetResponse struct {
	ID                 string
	Name               string
	Owner              string
	Latitude           float64
	Longitude          float64
	SafetyBufferMeters float64
}

// AssetSource supplies protected assets in registry order.
type AssetSource interface {
	Assets() []*asset.ProtectedAsset
}

// ListProtectedAssetsQueryHandler reads the in-memory registry.
type ListProtectedAssetsQueryHandler struct {
	source AssetSource
}

func NewListProtectedAssetsQueryHandler(source AssetSource) ListProtectedAssetsQueryHandler {
	return ListProtectedAssetsQueryHandler{source: source}
}

// Handle returns the registry content in registry order.
func (h ListProtectedAssetsQueryHandler) Handle(
	_ context.Context,
	query ListProtectedAssetsQuery,
) ([]ProtectedAssetResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assets := h.source.Assets()
	resp := make([]ProtectedAssetResponse, 0, len(assets))
	for _, a := range assets {
		resp = append(resp, ProtectedAssetResponse{
			ID:                 a.ID(),
			Name:               a.Name(),
			Owner:              a.Owner(),
			Latitude:           a.Location().Latitude(),
			Longitude:          a.Location().Longitude(),
			SafetyBufferMeters: a.SafetyBufferMeters(),
		})
	}

	return resp, nil
}
