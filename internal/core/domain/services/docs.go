// Package services provides domain services that orchestrate the batch
// shipping-assignment pipeline across the order and carrier aggregates.
//
// The pipeline runs in four stages:
//   - CarrierOptimizer: minimum-cost feasible service for one (order, carrier) pair
//   - CarrierAggregator: optimizer applied across all orders for one carrier
//   - BestServiceSelector: cross-carrier winner per order via cost then carrier rank
//   - ResultMerger: final assignments joined back onto the order records
//
// Every stage is stateless and deterministic, so per-carrier aggregation
// can run concurrently; the selector only needs all carriers' results as a
// join barrier before resolving ties.
package services
