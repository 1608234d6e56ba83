// Package kernel provides shared value objects used across the domain model.
//
// The package contains fundamental building blocks:
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - Miles: positive distance used for destinations and service reach
//
// All value objects are immutable and validate their invariants at
// construction time, following the constructor-guard pattern.
package kernel
