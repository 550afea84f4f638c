// Package kernel provides core domain primitives shared across the shipping
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// The kernel holds only concepts that are not specific to a single aggregate.
// Its primitives are immutable and thread-safe, enforce their own invariants,
// and encapsulate the underlying library types they wrap.
package kernel
