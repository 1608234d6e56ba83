package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidate(t *testing.T) {
	t.Run("should create candidate with valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()

		candidate, err := services.NewCandidate(orderID, "fedex", "ground", 5)

		require.NoError(t, err)
		assert.NoError(t, candidate.Validate())
		assert.Equal(t, orderID, candidate.OrderID())
		assert.Equal(t, "fedex", candidate.Carrier())
		assert.Equal(t, "ground", candidate.ServiceType())
		assert.Equal(t, 5, candidate.Cost())
	})

	t.Run("should return error for empty carrier", func(t *testing.T) {
		_, err := services.NewCandidate(kernel.NewUUID(), "", "ground", 5)
		require.Error(t, err)
	})

	t.Run("should return error for empty service type", func(t *testing.T) {
		_, err := services.NewCandidate(kernel.NewUUID(), "fedex", "", 5)
		require.Error(t, err)
	})

	t.Run("should return error for non-positive cost", func(t *testing.T) {
		_, err := services.NewCandidate(kernel.NewUUID(), "fedex", "ground", 0)
		require.Error(t, err)
	})

	t.Run("default constructed candidate is invalid", func(t *testing.T) {
		var candidate services.Candidate
		require.ErrorIs(t, candidate.Validate(), services.ErrCandidateIsNotConstructed)
	})
}

func TestCarrierAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewCarrierAggregator()

	t.Run("should produce one candidate per servable order", func(t *testing.T) {
		fedex := newTestCarrier(t, "fedex",
			[4]any{"ground", 5, 3, 150.0},
			[4]any{"air", 20, 1, 500.0},
		)
		first := newTestOrder(t, 3, 400)
		second := newTestOrder(t, 1, 450)

		result, err := aggregator.Aggregate(fedex, []*order.Order{first, second})

		require.NoError(t, err)
		assert.Equal(t, "fedex", result.Carrier)
		require.Len(t, result.Candidates, 2)
		assert.Empty(t, result.Infeasible)

		assert.Equal(t, first.ID(), result.Candidates[0].OrderID())
		assert.Equal(t, "ground", result.Candidates[0].ServiceType())
		assert.Equal(t, 5, result.Candidates[0].Cost())

		assert.Equal(t, second.ID(), result.Candidates[1].OrderID())
		assert.Equal(t, "air", result.Candidates[1].ServiceType())
		assert.Equal(t, 20, result.Candidates[1].Cost())
	})

	t.Run("infeasible order is recorded and does not abort the batch", func(t *testing.T) {
		fedex := newTestCarrier(t, "fedex", [4]any{"ground", 5, 3, 150.0})
		servable := newTestOrder(t, 3, 400)
		tooFar := newTestOrder(t, 3, 5000)
		alsoServable := newTestOrder(t, 4, 200)

		result, err := aggregator.Aggregate(fedex, []*order.Order{servable, tooFar, alsoServable})

		require.NoError(t, err)
		require.Len(t, result.Candidates, 2)
		require.Len(t, result.Infeasible, 1)
		assert.Equal(t, tooFar.ID(), result.Infeasible[0])
	})

	t.Run("candidates and infeasible markers together cover every order", func(t *testing.T) {
		usps := newTestCarrier(t, "usps", [4]any{"priority", 15, 2, 175.0})
		orders := []*order.Order{
			newTestOrder(t, 2, 300),
			newTestOrder(t, 1, 300),
			newTestOrder(t, 2, 400),
			newTestOrder(t, 5, 100),
		}

		result, err := aggregator.Aggregate(usps, orders)

		require.NoError(t, err)
		assert.Equal(t, len(orders), len(result.Candidates)+len(result.Infeasible))

		seen := make(map[kernel.UUID]bool)
		for _, candidate := range result.Candidates {
			seen[candidate.OrderID()] = true
		}
		for _, id := range result.Infeasible {
			seen[id] = true
		}
		assert.Len(t, seen, len(orders))
	})

	t.Run("empty order set produces empty result", func(t *testing.T) {
		fedex := newTestCarrier(t, "fedex", [4]any{"ground", 5, 3, 150.0})

		result, err := aggregator.Aggregate(fedex, nil)

		require.NoError(t, err)
		assert.Empty(t, result.Candidates)
		assert.Empty(t, result.Infeasible)
	})

	t.Run("should return error for invalid carrier", func(t *testing.T) {
		var c *carrier.Carrier

		_, err := aggregator.Aggregate(c, []*order.Order{newTestOrder(t, 3, 100)})

		require.ErrorIs(t, err, carrier.ErrCarrierIsNotConstructed)
	})

	t.Run("should return error for invalid order in the batch", func(t *testing.T) {
		fedex := newTestCarrier(t, "fedex", [4]any{"ground", 5, 3, 150.0})

		_, err := aggregator.Aggregate(fedex, []*order.Order{nil})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
