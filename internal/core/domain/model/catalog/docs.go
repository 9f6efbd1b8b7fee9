// Package catalog implements the master-data aggregate for substances.
// A Record holds the display name, company, pack-to-unit conversion factors,
// unit price, and optional image reference for one substance, keyed by a
// globally unique, case-sensitive, trimmed substance string.
//
// Catalog data is never denormalized into downstream rows; the read side
// joins against it on every query so names and prices cannot go stale. The
// only exception is the frozen archive bundle, which copies catalog fields
// because the live rows it describes are deleted at archival time.
package catalog
