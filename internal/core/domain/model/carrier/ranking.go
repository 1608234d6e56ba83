package carrier

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for ranking operations.
var (
	// ErrRankingIsNotConstructed is returned when using an improperly initialized Ranking.
	ErrRankingIsNotConstructed = errors.New("Ranking must be created via NewRanking constructor")
	// ErrCarrierNotRanked is returned when a carrier has no configured priority.
	// This is a configuration error: rankings must cover every carrier in the
	// input before a batch run starts.
	ErrCarrierNotRanked = errors.New("carrier has no configured priority rank")
	// ErrDuplicateRank is returned when two carriers share the same priority value.
	ErrDuplicateRank = errors.New("carrier priority ranks must be unique")
)

// Ranking is the externally supplied carrier priority configuration used to
// break cost ties deterministically. It maps each carrier name to a fixed
// priority rank; a lower rank wins a tie.
//
// Ranks are carrier-unique, so no two candidates for the same order can tie
// on both cost and rank, which guarantees a unique winner.
//
// Carriers outside the configured mapping are rejected, never defaulted:
// an undefined ordering would make tie-breaks nondeterministic.
//
// Example:
//
//	ranking, err := NewRanking(map[string]int{
//	    "fedex": 1,
//	    "usps":  2,
//	    "ups":   3,
//	})
type Ranking struct {
	priorities map[string]int
	guard      guard.ConstructorGuard
}

// NewRanking creates a validated carrier priority configuration.
// The mapping must be non-empty, carrier names must be non-empty, ranks must
// be positive, and no two carriers may share a rank.
func NewRanking(priorities map[string]int) (Ranking, error) {
	if len(priorities) == 0 {
		return Ranking{}, errs.NewValueIsRequiredError("carrier priorities")
	}

	seen := make(map[int]string, len(priorities))
	for name, rank := range priorities {
		if name == "" {
			return Ranking{}, ErrNameIsRequired
		}
		if rank <= 0 {
			return Ranking{}, errs.NewValueIsInvalidErrorWithCause(
				"rank", fmt.Errorf("%d is not greater than 0", rank))
		}
		if other, ok := seen[rank]; ok {
			return Ranking{}, fmt.Errorf("%w: %s and %s both have rank %d",
				ErrDuplicateRank, other, name, rank)
		}
		seen[rank] = name
	}

	copied := make(map[string]int, len(priorities))
	for name, rank := range priorities {
		copied[name] = rank
	}

	return Ranking{
		priorities: copied,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Ranking was properly constructed.
func (r Ranking) Validate() error {
	return r.guard.Validate(ErrRankingIsNotConstructed)
}

// RankOf returns the configured priority for the given carrier name.
// Returns ErrCarrierNotRanked if the carrier is not in the mapping.
func (r Ranking) RankOf(name string) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	rank, ok := r.priorities[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCarrierNotRanked, name)
	}

	return rank, nil
}

// Covers verifies that every given carrier name has a configured rank.
// Used to fail fast at batch start before any optimization work begins.
func (r Ranking) Covers(names []string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	for _, name := range names {
		if _, ok := r.priorities[name]; !ok {
			return fmt.Errorf("%w: %s", ErrCarrierNotRanked, name)
		}
	}

	return nil
}
