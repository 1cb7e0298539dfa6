// Package services provides domain services that implement business rules
// spanning multiple aggregates in the kitchen system.
//
// The package includes:
//   - CapacityPolicy: Admission control deciding whether the kitchen can
//     accept another order given current load, staff, and configured limits
//   - StationCapability: The pluggable station/order matching check used
//     during station assignment
//
// Domain services hold no mutable state; they are constructed with validated
// configuration and invoked per request.
package services
