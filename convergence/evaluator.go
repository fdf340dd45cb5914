package convergence

import (
	"math"

	"autoscale/models"
)

// ComputeNewCapacity evaluates a policy's adjustment against the current
// desired capacity and returns the new desired capacity clamped into
// [minEntities, maxEntities].
//
// Percentage adjustments round away from zero on any nonzero fractional
// server count: -0.25 servers becomes -1, +1.2 becomes +2. This is a
// business rule of the scaling contract, not standard rounding.
func ComputeNewCapacity(policy *models.ScalingPolicy, currentDesired int, minEntities int, maxEntities int) (int, error) {
	if policy.AdjustmentCount() != 1 {
		return -1, &models.ValidationError{Message: "policy must have exactly one of change, changePercent or desiredCapacity"}
	}

	var newDesired int
	switch {
	case policy.DesiredCapacity != nil:
		newDesired = *policy.DesiredCapacity
	case policy.Change != nil:
		newDesired = currentDesired + *policy.Change
	case policy.ChangePercent != nil:
		raw := float64(currentDesired) * *policy.ChangePercent / 100
		var delta int
		if raw > 0 {
			delta = int(math.Ceil(raw))
		} else {
			delta = int(math.Floor(raw))
		}
		newDesired = currentDesired + delta
	}

	if newDesired < minEntities {
		newDesired = minEntities
	}
	if newDesired > maxEntities {
		newDesired = maxEntities
	}
	return newDesired, nil
}
