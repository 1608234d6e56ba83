package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// ResultMerger attaches the final assignments back onto the order records.
// It performs a left join by order ID: every order is preserved exactly
// once, orders with a winning assignment are marked assigned, and orders
// without one are explicitly marked unassigned with absent shipping fields.
type ResultMerger struct{}

// NewResultMerger creates a new ResultMerger instance.
func NewResultMerger() ResultMerger {
	return ResultMerger{}
}

// Merge records the batch outcome on each order in place.
//
// Parameters:
//   - orders: the full batch order set (no rows are dropped or duplicated)
//   - finals: winning assignments keyed by order ID
//
// Returns the first error encountered while recording a decision; on
// success every order is in Assigned or Unassigned status.
func (ResultMerger) Merge(orders []*order.Order, finals map[kernel.UUID]order.Assignment) error {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}

		assignment, ok := finals[o.ID()]
		if !ok {
			if err := o.MarkUnassigned(); err != nil {
				return err
			}
			continue
		}

		if err := o.Assign(assignment); err != nil {
			return err
		}
	}

	return nil
}
