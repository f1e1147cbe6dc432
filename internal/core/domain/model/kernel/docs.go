// Package kernel provides the value objects shared by the work order domain.
//
// The package includes:
//   - Location: a validated latitude/longitude pair with haversine distance
//   - Zone: a circle (centre and radius in meters) with the overlap rule used
//     for conflict detection
//   - UUID: an identifier value object for records the service creates itself
//
// Value objects are immutable and their zero values fail validation, so a
// missing coordinate can never silently turn into a distance computation.
package kernel
