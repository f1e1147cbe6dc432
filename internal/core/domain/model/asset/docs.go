// Package asset models the protected underground infrastructure that work
// orders are screened against.
//
// The package includes:
//   - ProtectedAsset: an asset with an identifier, an owner to notify and a
//     safety zone (location plus safety buffer)
//   - Registry: an ordered set of assets with unique identifiers
//
// Registries are built once from configuration and handed to the conflict
// detector; the detector never hardcodes an asset.
package asset
