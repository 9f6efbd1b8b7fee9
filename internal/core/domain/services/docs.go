// Package services provides domain services that implement business logic
// spanning multiple aggregates of the order pipeline.
//
// The package includes:
//   - PriorityReorderer: stable urgent-first partitioning and dense
//     renumbering of the order ledger
//   - CatalogMerger: duplicate-safe classification of bulk catalog upserts
//   - CostCalculator: derived cost figures for fulfillment rows
//
// Domain services hold no state and perform no I/O; command and query
// handlers feed them loaded aggregates and persist the outcome.
package services
