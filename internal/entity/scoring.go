package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/knucklebones/internal/apperror"
)

// ScoringPolicy decides how the dice of one column add up.
type ScoringPolicy string

const (
	// ScoringMultiplicity adds count*face*count for every distinct face in the column.
	ScoringMultiplicity ScoringPolicy = "multiplicity"
	// ScoringProduct multiplies the occupied faces of the column.
	ScoringProduct ScoringPolicy = "product"

	DefaultScoring = ScoringMultiplicity
)

// ParseScoringPolicy - maps a config value to a policy. Empty means the default policy.
func ParseScoringPolicy(value string) (ScoringPolicy, error) {
	switch policy := ScoringPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case "":
		return DefaultScoring, nil
	case ScoringMultiplicity, ScoringProduct:
		return policy, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownScoringPolicy, value)
	}
}

// Score - returns the points of one column. Empty cells are skipped.
func (that ScoringPolicy) Score(values []int) int {
	if that == ScoringProduct {
		return productScore(values)
	}

	return multiplicityScore(values)
}

func (that ScoringPolicy) String() string {
	if that == "" {
		return string(DefaultScoring)
	}
	return string(that)
}

func multiplicityScore(values []int) int {
	var counts [MaxFace + 1]int
	for _, value := range values {
		if value >= MinFace && value <= MaxFace {
			counts[value]++
		}
	}

	total := 0
	for face, count := range counts {
		total += count * face * count
	}

	return total
}

func productScore(values []int) int {
	product, occupied := 1, 0
	for _, value := range values {
		if value == EmptyCell {
			continue
		}
		product *= value
		occupied++
	}

	if occupied == 0 {
		return 0
	}

	return product
}
