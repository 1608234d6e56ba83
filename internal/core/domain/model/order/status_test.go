package order_test

import (
	"testing"

	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusPending, order.StatusAssigned, order.StatusUnassigned} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown status fails", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.StatusPending.String())
	assert.Equal(t, "Assigned", order.StatusAssigned.String())
	assert.Equal(t, "Unassigned", order.StatusUnassigned.String())
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending can be assigned", func(t *testing.T) {
		next, err := order.StatusPending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, next)
	})

	t.Run("decided statuses can be re-assigned", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusAssigned, order.StatusUnassigned} {
			next, err := s.Assign()
			require.NoError(t, err)
			assert.Equal(t, order.StatusAssigned, next)
		}
	})

	t.Run("unknown cannot be assigned", func(t *testing.T) {
		_, err := order.StatusUnknown.Assign()

		require.Error(t, err)
	})
}

func TestStatus_MarkUnassigned(t *testing.T) {
	t.Run("pending can be marked unassigned", func(t *testing.T) {
		next, err := order.StatusPending.MarkUnassigned()

		require.NoError(t, err)
		assert.Equal(t, order.StatusUnassigned, next)
	})

	t.Run("unknown cannot be marked unassigned", func(t *testing.T) {
		_, err := order.StatusUnknown.MarkUnassigned()

		require.Error(t, err)
	})
}

func TestStatus_ValidateCanHaveAssignment(t *testing.T) {
	t.Run("assigned requires assignment", func(t *testing.T) {
		require.NoError(t, order.StatusAssigned.ValidateCanHaveAssignment(true))
		require.Error(t, order.StatusAssigned.ValidateCanHaveAssignment(false))
	})

	t.Run("pending and unassigned require no assignment", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusPending, order.StatusUnassigned} {
			require.NoError(t, s.ValidateCanHaveAssignment(false))
			require.Error(t, s.ValidateCanHaveAssignment(true))
		}
	})
}
