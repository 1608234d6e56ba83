package commands

import (
	"context"
	"errors"
	"sync"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
)

var (
	ErrNoPendingOrders = errors.New("no pending orders found")
	ErrNoCarriersFound = errors.New("no carriers found")
)

// AssignShippingCommandHandler orchestrates one batch assignment run.
//
// The run is a four-stage pipeline over a single snapshot of pending orders
// and carrier catalogs:
//
//  1. Fail fast: every stored carrier must have a configured priority rank,
//     otherwise the run aborts before any order is decided.
//  2. Aggregate: each carrier's catalog is evaluated against every order
//     concurrently, one goroutine per carrier. Stages are stateless and
//     deterministic, so concurrency cannot change the outcome.
//  3. Select: candidates from all carriers are merged and each order
//     resolves to the ascending (cost, carrier rank) winner.
//  4. Merge: decisions are written back onto the orders, explicitly marking
//     orders no carrier can serve as unassigned, and persisted in one
//     transaction.
//
// Example:
//
//	handler := NewAssignShippingCommandHandler(uowFactory, ranking)
//	cmd := NewAssignShippingCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("No pending orders")
//	case errors.Is(err, carrier.ErrCarrierNotRanked):
//	    log.Printf("Priority configuration incomplete: %v", err)
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignShippingCommandHandler struct {
	uowFactory UoWFactory
	ranking    carrier.Ranking
}

// NewAssignShippingCommandHandler creates a handler for batch assignment runs.
// Requires a UoWFactory for coordinating transactional updates and the
// configured carrier priority ranking used for cross-carrier tie-breaking.
func NewAssignShippingCommandHandler(uowFactory UoWFactory, ranking carrier.Ranking) AssignShippingCommandHandler {
	return AssignShippingCommandHandler{
		uowFactory: uowFactory,
		ranking:    ranking,
	}
}

// Handle processes the batch assignment command.
// Reads all pending orders and all carriers inside a single transaction,
// runs the assignment pipeline, and persists every order's decision.
// Returns ErrNoPendingOrders or ErrNoCarriersFound when there is nothing to
// do, and carrier.ErrCarrierNotRanked when the priority configuration does
// not cover every stored carrier.
func (h AssignShippingCommandHandler) Handle(ctx context.Context, command AssignShippingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.ranking.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()
	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoPendingOrders
	}

	carriers, err := carrierRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(carriers) == 0 {
		return ErrNoCarriersFound
	}

	names := make([]string, 0, len(carriers))
	for _, c := range carriers {
		names = append(names, c.Name())
	}
	if err = h.ranking.Covers(names); err != nil {
		return err
	}

	candidates, err := aggregateAllCarriers(carriers, orders)
	if err != nil {
		return err
	}

	finals, err := services.NewBestServiceSelector(h.ranking).Select(candidates)
	if err != nil {
		return err
	}

	if err = services.NewResultMerger().Merge(orders, finals); err != nil {
		return err
	}

	for _, o := range orders {
		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// aggregateAllCarriers runs the per-carrier aggregation stage with one
// goroutine per carrier and joins all results before returning. The final
// candidate list is assembled in stored carrier order so the combined output
// does not depend on goroutine scheduling.
func aggregateAllCarriers(carriers []*carrier.Carrier, orders []*order.Order) ([]services.Candidate, error) {
	aggregator := services.NewCarrierAggregator()

	results := make([]services.AggregationResult, len(carriers))
	aggErrs := make([]error, len(carriers))

	var wg sync.WaitGroup
	for i, c := range carriers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], aggErrs[i] = aggregator.Aggregate(c, orders)
		}()
	}
	wg.Wait()

	if err := errors.Join(aggErrs...); err != nil {
		return nil, err
	}

	var candidates []services.Candidate
	for _, result := range results {
		candidates = append(candidates, result.Candidates...)
	}

	return candidates, nil
}
