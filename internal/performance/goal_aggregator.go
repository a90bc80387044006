package performance

import "math"

// keyResultProgress scores a single key result from 0 to 100.
func keyResultProgress(kr KeyResult) float64 {
	if kr.Binary {
		if kr.CurrentValue >= kr.TargetValue {
			return 100
		}
		return 0
	}
	if kr.TargetValue <= 0 {
		return 0
	}
	return math.Min(kr.CurrentValue/kr.TargetValue*100, 100)
}

// AggregateProgress rolls key results up into a goal percentage: the
// weighted average of the per-key-result scores, rounded to the nearest
// whole percent. With no key results, or with all weights at zero, there
// is nothing to aggregate and the goal's current value stands.
func AggregateProgress(current int, keyResults []KeyResult) int {
	if len(keyResults) == 0 {
		return current
	}

	var weightedSum, totalWeight float64
	for _, kr := range keyResults {
		weightedSum += keyResultProgress(kr) * kr.Weight
		totalWeight += kr.Weight
	}
	if totalWeight == 0 {
		return current
	}

	return int(math.Round(weightedSum / totalWeight))
}
