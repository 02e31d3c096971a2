// Package kernel provides core domain primitives for the dealership console.
// It implements fundamental building blocks that are used throughout the
// domain model.
//
// The package includes:
//   - OrderID: A value object for the externally assigned numeric order identifier
//   - Money: A value object for non-negative monetary amounts (rendered as VND)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
