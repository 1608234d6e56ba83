package services

import (
	"errors"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/order"
)

// ErrNoFeasibleService is returned when no service type of a carrier can
// satisfy both delivery constraints for an order. Infeasibility is always
// reported through this sentinel, never through a numeric cost value that
// could be mistaken for a real price.
var ErrNoFeasibleService = errors.New("no feasible service found")

// CarrierOptimizer is a domain service that selects the minimum-cost
// feasible service type of a single carrier for a single order.
//
// A service type is feasible when both constraints hold simultaneously:
//   - its days in transit fit within the order's days to deliver
//   - its total reach covers the order's destination distance
//
// Among feasible services the cheapest per-package cost wins; a cost tie is
// broken by catalog order (the service registered first wins), which keeps
// the selection deterministic under permutation of equally priced services.
//
// The selection is equivalent to the binary "pick exactly one service"
// optimization: with exactly one selected service the transit-time and
// reach constraints reduce to per-service feasibility checks and the
// objective reduces to a minimum over the feasible subset, so direct
// enumeration gives identical results without a solver.
//
// Example usage:
//
//	optimizer := NewCarrierOptimizer()
//	service, err := optimizer.SelectService(order, fedex)
//	if errors.Is(err, ErrNoFeasibleService) {
//	    // No fedex service can deliver this order in time and distance
//	    return
//	}
type CarrierOptimizer struct{}

// NewCarrierOptimizer creates a new CarrierOptimizer instance.
func NewCarrierOptimizer() CarrierOptimizer {
	return CarrierOptimizer{}
}

// SelectService returns the cheapest service type of the carrier that
// satisfies both delivery constraints for the order.
//
// Parameters:
//   - o: the order to ship (must be valid)
//   - c: the carrier whose catalog is searched (must be valid)
//
// Returns:
//   - carrier.ServiceOption: the selected service
//   - error: ErrNoFeasibleService if no service satisfies both constraints,
//     or a validation error for improperly constructed inputs
func (CarrierOptimizer) SelectService(o *order.Order, c *carrier.Carrier) (carrier.ServiceOption, error) {
	if err := o.Validate(); err != nil {
		return carrier.ServiceOption{}, err
	}

	if err := c.Validate(); err != nil {
		return carrier.ServiceOption{}, err
	}

	var (
		best  carrier.ServiceOption
		found bool
	)

	for _, service := range c.Services() {
		feasible, err := service.CanDeliver(o.DaysToDeliver(), o.DistanceToDestination())
		if err != nil {
			return carrier.ServiceOption{}, err
		}

		if !feasible {
			continue
		}

		// Strict comparison keeps the first catalog entry on cost ties.
		if !found || service.CostPerPackage() < best.CostPerPackage() {
			best = service
			found = true
		}
	}

	if !found {
		return carrier.ServiceOption{}, ErrNoFeasibleService
	}

	return best, nil
}
