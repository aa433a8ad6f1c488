// Package kernel contains shared value objects used across the domain model.
// Its central type is UUID, the identity value object for all aggregates.
//
// Kernel types are immutable, validated at construction, and carry no
// behavior specific to any single aggregate.
package kernel
