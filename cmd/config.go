package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shipping/internal/core/domain/model/carrier"
)

// Config holds the runtime configuration of the shipping service.
// Carrier priority is part of the configuration, not the data set: the
// batch tie-break order is an operational decision.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	CarrierPriority    string
	AssignmentSchedule string
}

// ErrInvalidCarrierPriority is returned when the CARRIER_PRIORITY variable
// cannot be parsed into a carrier ranking.
var ErrInvalidCarrierPriority = errors.New("invalid carrier priority configuration")

// ParseCarrierPriority parses a priority specification of the form
// "fedex:1,usps:2,ups:3" into a validated carrier ranking.
//
// The configuration fails fast: malformed pairs, non-numeric ranks, and
// duplicate or non-positive ranks are all rejected here rather than
// surfacing mid-batch.
func ParseCarrierPriority(spec string) (carrier.Ranking, error) {
	if strings.TrimSpace(spec) == "" {
		return carrier.Ranking{}, fmt.Errorf("%w: empty specification", ErrInvalidCarrierPriority)
	}

	priorities := make(map[string]int)
	for _, pair := range strings.Split(spec, ",") {
		name, rankStr, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return carrier.Ranking{}, fmt.Errorf(
				"%w: %q is not a name:rank pair", ErrInvalidCarrierPriority, pair)
		}

		name = strings.TrimSpace(name)
		rank, err := strconv.Atoi(strings.TrimSpace(rankStr))
		if err != nil {
			return carrier.Ranking{}, fmt.Errorf(
				"%w: rank of %q is not a number", ErrInvalidCarrierPriority, name)
		}

		if _, exists := priorities[name]; exists {
			return carrier.Ranking{}, fmt.Errorf(
				"%w: carrier %q listed twice", ErrInvalidCarrierPriority, name)
		}
		priorities[name] = rank
	}

	ranking, err := carrier.NewRanking(priorities)
	if err != nil {
		return carrier.Ranking{}, fmt.Errorf("%w: %w", ErrInvalidCarrierPriority, err)
	}

	return ranking, nil
}
