package cmd

import (
	"testing"

	"shipping/internal/core/domain/model/carrier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCarrierPriority(t *testing.T) {
	t.Run("parses a valid specification", func(t *testing.T) {
		ranking, err := ParseCarrierPriority("fedex:1,usps:2,ups:3")
		require.NoError(t, err)

		rank, err := ranking.RankOf("usps")
		require.NoError(t, err)
		assert.Equal(t, 2, rank)
	})

	t.Run("tolerates whitespace around pairs", func(t *testing.T) {
		ranking, err := ParseCarrierPriority(" fedex : 1 , usps : 2 ")
		require.NoError(t, err)

		rank, err := ranking.RankOf("fedex")
		require.NoError(t, err)
		assert.Equal(t, 1, rank)
	})

	t.Run("rejects empty specification", func(t *testing.T) {
		_, err := ParseCarrierPriority("   ")
		assert.ErrorIs(t, err, ErrInvalidCarrierPriority)
	})

	t.Run("rejects pair without rank", func(t *testing.T) {
		_, err := ParseCarrierPriority("fedex:1,usps")
		assert.ErrorIs(t, err, ErrInvalidCarrierPriority)
	})

	t.Run("rejects non-numeric rank", func(t *testing.T) {
		_, err := ParseCarrierPriority("fedex:first")
		assert.ErrorIs(t, err, ErrInvalidCarrierPriority)
	})

	t.Run("rejects duplicate carrier", func(t *testing.T) {
		_, err := ParseCarrierPriority("fedex:1,fedex:2")
		assert.ErrorIs(t, err, ErrInvalidCarrierPriority)
	})

	t.Run("rejects duplicate rank", func(t *testing.T) {
		_, err := ParseCarrierPriority("fedex:1,usps:1")

		assert.ErrorIs(t, err, ErrInvalidCarrierPriority)
		assert.ErrorIs(t, err, carrier.ErrDuplicateRank)
	})

	t.Run("rejects non-positive rank", func(t *testing.T) {
		_, err := ParseCarrierPriority("fedex:0")
		assert.ErrorIs(t, err, ErrInvalidCarrierPriority)
	})
}
