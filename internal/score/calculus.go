package score

import "math"

// Contribution is one question's share of an overall score
type Contribution struct {
	WeightedScore float64
	Weight        float64
}

// NormalizeConfidence maps a raw confidence onto 0-1.
//
// Values above 1 are read as percentages and divided by 100. A value of
// exactly 1 is ambiguous between "0-1 scale at max" and "1%"; it is kept
// as 1 because persisted records rely on that reading.
func NormalizeConfidence(raw float64) float64 {
	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	if raw > 1 {
		raw /= 100
	}
	return clamp(raw, 0, 1)
}

// NormalizeScore clamps a per-question score onto 0-1
func NormalizeScore(raw float64) float64 {
	if math.IsNaN(raw) {
		return 0
	}
	return clamp(raw, 0, 1)
}

// WeightedContribution returns score * weight
func WeightedContribution(score, weight float64) float64 {
	return score * weight
}

// AggregateOverallScore combines contributions into a 0-10 score with one decimal.
// Returns exactly 0 when the total weight is 0.
func AggregateOverallScore(contributions []Contribution) float64 {
	var weighted, total float64
	for _, c := range contributions {
		weighted += c.WeightedScore
		total += c.Weight
	}
	return ScaledRatio(weighted, total)
}

// ScaledRatio returns weighted/total on a 0-10 scale rounded to one decimal,
// or 0 when total is not positive.
func ScaledRatio(weighted, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(Round(weighted/total*10, 1), 0, 10)
}

// Round rounds half away from zero to the given number of decimal places
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// Grade maps a 0-10 overall score to a coarse label
func Grade(overall float64) string {
	switch {
	case overall >= 8:
		return "strong"
	case overall >= 5:
		return "moderate"
	case overall > 0:
		return "weak"
	default:
		return "none"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
