// Package kernel provides core domain primitives shared across the pharmacy
// order pipeline.
//
// Its central type is UUID, a value object for unique identifiers with
// validation and comparison behavior. The primitive is immutable and
// thread-safe, and enforces construction through factory functions so domain
// objects are always in a valid state.
package kernel
