// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - ConflictDetector: screens a work order's dig site against the protected
//     asset registry and notifies the owner of the first asset it hits
package services
