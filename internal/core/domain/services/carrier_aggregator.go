package services

import (
	"errors"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrCandidateIsNotConstructed is returned when using an improperly
// initialized Candidate.
var ErrCandidateIsNotConstructed = errors.New(
	"Candidate must be created via NewCandidate constructor")

// Candidate is one carrier's best offer for one order: the minimum-cost
// feasible service of that carrier. At most one candidate exists per
// (order, carrier) pair; orders with no feasible service produce an
// infeasibility marker instead of a candidate.
type Candidate struct {
	orderID     kernel.UUID
	carrier     string
	serviceType string
	cost        int
	guard       guard.ConstructorGuard
}

// NewCandidate creates a validated candidate assignment.
func NewCandidate(orderID kernel.UUID, carrierName string, serviceType string, cost int) (Candidate, error) {
	if err := orderID.Validate(); err != nil {
		return Candidate{}, err
	}
	if carrierName == "" {
		return Candidate{}, errs.NewValueIsRequiredError("carrier")
	}
	if serviceType == "" {
		return Candidate{}, errs.NewValueIsRequiredError("serviceType")
	}
	if cost <= 0 {
		return Candidate{}, errs.NewValueIsInvalidError("cost")
	}

	return Candidate{
		orderID:     orderID,
		carrier:     carrierName,
		serviceType: serviceType,
		cost:        cost,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Candidate was properly constructed.
func (c Candidate) Validate() error {
	return c.guard.Validate(ErrCandidateIsNotConstructed)
}

// OrderID returns the order this candidate was computed for.
func (c Candidate) OrderID() kernel.UUID {
	return c.orderID
}

// Carrier returns the offering carrier's identifier.
func (c Candidate) Carrier() string {
	return c.carrier
}

// ServiceType returns the selected delivery tier of the carrier.
func (c Candidate) ServiceType() string {
	return c.serviceType
}

// Cost returns the per-package cost of the selected tier.
func (c Candidate) Cost() int {
	return c.cost
}

// AggregationResult is the outcome of running the optimizer over a full
// order set for one carrier. Every input order appears exactly once, either
// as a candidate or as an explicit infeasibility marker.
type AggregationResult struct {
	// Carrier is the carrier the aggregation was run for.
	Carrier string
	// Candidates holds the per-order best offers in input order.
	Candidates []Candidate
	// Infeasible lists the orders this carrier cannot serve, in input order.
	Infeasible []kernel.UUID
}

// CarrierAggregator applies the CarrierOptimizer across all orders for one
// carrier. A single order's infeasibility never aborts the batch; it is
// recorded as an explicit marker and processing continues with the next
// order.
type CarrierAggregator struct {
	optimizer CarrierOptimizer
}

// NewCarrierAggregator creates a new CarrierAggregator instance.
func NewCarrierAggregator() CarrierAggregator {
	return CarrierAggregator{
		optimizer: NewCarrierOptimizer(),
	}
}

// Aggregate runs the optimizer once per order against the carrier's catalog.
//
// Parameters:
//   - c: the carrier whose catalog is used (must be valid)
//   - orders: the batch orders, each processed exactly once
//
// Returns an AggregationResult whose candidate and infeasible collections
// together cover every input order, or a validation error if the carrier or
// any order is improperly constructed.
func (a CarrierAggregator) Aggregate(c *carrier.Carrier, orders []*order.Order) (AggregationResult, error) {
	if err := c.Validate(); err != nil {
		return AggregationResult{}, err
	}

	result := AggregationResult{
		Carrier:    c.Name(),
		Candidates: make([]Candidate, 0, len(orders)),
	}

	for _, o := range orders {
		service, err := a.optimizer.SelectService(o, c)
		if errors.Is(err, ErrNoFeasibleService) {
			result.Infeasible = append(result.Infeasible, o.ID())
			continue
		}
		if err != nil {
			return AggregationResult{}, err
		}

		candidate, err := NewCandidate(o.ID(), c.Name(), service.ServiceType(), service.CostPerPackage())
		if err != nil {
			return AggregationResult{}, err
		}

		result.Candidates = append(result.Candidates, candidate)
	}

	return result, nil
}
