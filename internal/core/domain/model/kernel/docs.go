// Package kernel provides core domain primitives for the gift marketplace
// engine. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object for monetary amounts backed by arbitrary-precision decimals
//   - GeoPoint: A value object for geographic coordinates used in delivery pricing
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
