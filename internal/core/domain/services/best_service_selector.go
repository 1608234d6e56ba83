package services

import (
	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// BestServiceSelector merges the candidates produced by every carrier and
// resolves each order to a single final assignment.
//
// Policy: candidates are grouped by order and compared by ascending
// (cost, carrier rank), where the rank comes from the externally configured
// carrier priority. Because ranks are carrier-unique, no two candidates for
// the same order can tie on both keys, so the winner is unique and
// deterministic regardless of candidate arrival order.
//
// A carrier without a configured rank is a configuration error; the
// selector fails rather than sorting with an undefined ordering.
//
// Example usage:
//
//	ranking, _ := carrier.NewRanking(map[string]int{"fedex": 1, "usps": 2})
//	selector := NewBestServiceSelector(ranking)
//	finals, err := selector.Select(candidates)
type BestServiceSelector struct {
	ranking carrier.Ranking
}

// NewBestServiceSelector creates a selector using the given carrier
// priority configuration.
func NewBestServiceSelector(ranking carrier.Ranking) BestServiceSelector {
	return BestServiceSelector{ranking: ranking}
}

// Select resolves each order's candidates to a single winning assignment.
//
// Orders absent from the returned map had no candidate from any carrier;
// that absence is the explicit "unassigned" outcome, to be recorded by the
// ResultMerger.
//
// Returns a configuration error if the ranking is invalid or any candidate
// names an unranked carrier.
func (s BestServiceSelector) Select(candidates []Candidate) (map[kernel.UUID]order.Assignment, error) {
	if err := s.ranking.Validate(); err != nil {
		return nil, err
	}

	type winner struct {
		candidate Candidate
		rank      int
	}

	winners := make(map[kernel.UUID]winner)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		rank, err := s.ranking.RankOf(candidate.Carrier())
		if err != nil {
			return nil, err
		}

		current, ok := winners[candidate.OrderID()]
		if !ok || beats(candidate.Cost(), rank, current.candidate.Cost(), current.rank) {
			winners[candidate.OrderID()] = winner{candidate: candidate, rank: rank}
		}
	}

	finals := make(map[kernel.UUID]order.Assignment, len(winners))
	for orderID, w := range winners {
		assignment, err := order.NewAssignment(w.candidate.Carrier(), w.candidate.ServiceType(), w.candidate.Cost())
		if err != nil {
			return nil, err
		}
		finals[orderID] = assignment
	}

	return finals, nil
}

// beats reports whether (cost, rank) sorts strictly before
// (otherCost, otherRank) in ascending lexicographic order.
func beats(cost, rank, otherCost, otherRank int) bool {
	if cost != otherCost {
		return cost < otherCost
	}
	return rank < otherRank
}
