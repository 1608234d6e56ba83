package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAssignment(t *testing.T, carrierName, serviceType string, cost int) order.Assignment {
	t.Helper()
	assignment, err := order.NewAssignment(carrierName, serviceType, cost)
	require.NoError(t, err)
	return assignment
}

func TestResultMerger_Merge(t *testing.T) {
	merger := services.NewResultMerger()

	t.Run("should assign winning order and mark the rest unassigned", func(t *testing.T) {
		winner := newTestOrder(t, 2, 300)
		loser := newTestOrder(t, 1, 5000)
		assignment := mustAssignment(t, "usps", "priority", 15)
		finals := map[kernel.UUID]order.Assignment{
			winner.ID(): assignment,
		}

		err := merger.Merge([]*order.Order{winner, loser}, finals)

		require.NoError(t, err)

		assert.Equal(t, order.StatusAssigned, winner.Status())
		require.NotNil(t, winner.Assignment())
		equal, eqErr := winner.Assignment().IsEqual(assignment)
		require.NoError(t, eqErr)
		assert.True(t, equal)

		assert.Equal(t, order.StatusUnassigned, loser.Status())
		assert.Nil(t, loser.Assignment())
	})

	t.Run("every order is preserved and decided exactly once", func(t *testing.T) {
		orders := []*order.Order{
			newTestOrder(t, 2, 300),
			newTestOrder(t, 3, 200),
			newTestOrder(t, 1, 900),
		}
		finals := map[kernel.UUID]order.Assignment{
			orders[1].ID(): mustAssignment(t, "fedex", "ground", 5),
		}

		err := merger.Merge(orders, finals)

		require.NoError(t, err)
		for _, o := range orders {
			assert.Contains(t, []order.Status{order.StatusAssigned, order.StatusUnassigned}, o.Status())
		}
	})

	t.Run("empty finals marks every order unassigned", func(t *testing.T) {
		orders := []*order.Order{newTestOrder(t, 2, 300), newTestOrder(t, 3, 200)}

		err := merger.Merge(orders, nil)

		require.NoError(t, err)
		for _, o := range orders {
			assert.Equal(t, order.StatusUnassigned, o.Status())
			assert.Nil(t, o.Assignment())
		}
	})

	t.Run("re-running the merge is idempotent", func(t *testing.T) {
		o := newTestOrder(t, 2, 300)
		assignment := mustAssignment(t, "usps", "priority", 15)
		finals := map[kernel.UUID]order.Assignment{o.ID(): assignment}

		require.NoError(t, merger.Merge([]*order.Order{o}, finals))
		require.NoError(t, merger.Merge([]*order.Order{o}, finals))

		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("should return error for invalid order", func(t *testing.T) {
		err := merger.Merge([]*order.Order{nil}, nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
