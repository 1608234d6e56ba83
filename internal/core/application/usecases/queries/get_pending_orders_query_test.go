package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}
