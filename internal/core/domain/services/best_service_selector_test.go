package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRanking(t *testing.T, priorities map[string]int) carrier.Ranking {
	t.Helper()
	ranking, err := carrier.NewRanking(priorities)
	require.NoError(t, err)
	return ranking
}

func mustCandidate(t *testing.T, orderID kernel.UUID, carrierName, serviceType string, cost int) services.Candidate {
	t.Helper()
	candidate, err := services.NewCandidate(orderID, carrierName, serviceType, cost)
	require.NoError(t, err)
	return candidate
}

func TestBestServiceSelector_Select(t *testing.T) {
	ranking := mustRanking(t, map[string]int{"fedex": 1, "usps": 2, "ups": 3})

	t.Run("should pick the cheapest candidate across carriers", func(t *testing.T) {
		selector := services.NewBestServiceSelector(ranking)
		orderID := kernel.NewUUID()
		candidates := []services.Candidate{
			mustCandidate(t, orderID, "fedex", "air", 20),
			mustCandidate(t, orderID, "usps", "priority", 15),
		}

		finals, err := selector.Select(candidates)

		require.NoError(t, err)
		require.Contains(t, finals, orderID)
		assert.Equal(t, "usps", finals[orderID].Carrier())
		assert.Equal(t, "priority", finals[orderID].ServiceType())
		assert.Equal(t, 15, finals[orderID].CostPerPackage())
	})

	t.Run("equal cost is broken by carrier rank", func(t *testing.T) {
		selector := services.NewBestServiceSelector(ranking)
		orderID := kernel.NewUUID()
		candidates := []services.Candidate{
			mustCandidate(t, orderID, "usps", "ground", 10),
			mustCandidate(t, orderID, "fedex", "ground", 10),
		}

		finals, err := selector.Select(candidates)

		require.NoError(t, err)
		assert.Equal(t, "fedex", finals[orderID].Carrier())
	})

	t.Run("winner does not depend on candidate arrival order", func(t *testing.T) {
		selector := services.NewBestServiceSelector(ranking)
		orderID := kernel.NewUUID()
		forward := []services.Candidate{
			mustCandidate(t, orderID, "fedex", "ground", 10),
			mustCandidate(t, orderID, "usps", "ground", 10),
			mustCandidate(t, orderID, "ups", "ground", 12),
		}
		reversed := []services.Candidate{forward[2], forward[1], forward[0]}

		first, err := selector.Select(forward)
		require.NoError(t, err)
		second, err := selector.Select(reversed)
		require.NoError(t, err)

		assert.Equal(t, first[orderID], second[orderID])
	})

	t.Run("each order is resolved independently", func(t *testing.T) {
		selector := services.NewBestServiceSelector(ranking)
		orderA := kernel.NewUUID()
		orderB := kernel.NewUUID()
		candidates := []services.Candidate{
			mustCandidate(t, orderA, "fedex", "air", 20),
			mustCandidate(t, orderA, "usps", "priority", 15),
			mustCandidate(t, orderB, "fedex", "ground", 5),
		}

		finals, err := selector.Select(candidates)

		require.NoError(t, err)
		require.Len(t, finals, 2)
		assert.Equal(t, "usps", finals[orderA].Carrier())
		assert.Equal(t, "fedex", finals[orderB].Carrier())
	})

	t.Run("order with no candidates is absent from the result", func(t *testing.T) {
		selector := services.NewBestServiceSelector(ranking)
		withCandidate := kernel.NewUUID()
		without := kernel.NewUUID()
		candidates := []services.Candidate{
			mustCandidate(t, withCandidate, "fedex", "ground", 5),
		}

		finals, err := selector.Select(candidates)

		require.NoError(t, err)
		assert.Contains(t, finals, withCandidate)
		assert.NotContains(t, finals, without)
	})

	t.Run("unranked carrier is a configuration error", func(t *testing.T) {
		selector := services.NewBestServiceSelector(mustRanking(t, map[string]int{"fedex": 1}))
		candidates := []services.Candidate{
			mustCandidate(t, kernel.NewUUID(), "dhl", "express", 30),
		}

		_, err := selector.Select(candidates)

		require.ErrorIs(t, err, carrier.ErrCarrierNotRanked)
	})

	t.Run("should return error for unconstructed ranking", func(t *testing.T) {
		selector := services.NewBestServiceSelector(carrier.Ranking{})

		_, err := selector.Select(nil)

		require.ErrorIs(t, err, carrier.ErrRankingIsNotConstructed)
	})

	t.Run("should return error for unconstructed candidate", func(t *testing.T) {
		selector := services.NewBestServiceSelector(ranking)

		_, err := selector.Select([]services.Candidate{{}})

		require.ErrorIs(t, err, services.ErrCandidateIsNotConstructed)
	})
}
