// Package control implements the condenser's actuator decision: a fixed
// two-threshold step function over the dry-bulb/dew-point spread.
package control

import "condenser-go/types"

// Decide maps a dry-bulb temperature and dew point (both °F) to the
// actuator state and system status. spreadThresholdF is the spread at or
// below which the condenser runs (types.DefaultConfig().SpreadThresholdF
// for the stock device).
//
// A small spread means the air is near saturation: at the default 12°F
// threshold the heuristic is roughly 60 %RH and above. The final branch is
// only reachable when the spread is NaN (undefined dew point); both
// comparisons are then false and the actuators are forced off.
func Decide(dryBulbF, dewPointF, spreadThresholdF float64) (types.ActuatorState, types.Status) {
	spread := dryBulbF - dewPointF
	switch {
	case spread <= spreadThresholdF:
		return types.ActuatorState{Pump: true, Fan: true, TEC: true}, types.StatusOn
	case spread > spreadThresholdF:
		return types.ActuatorState{}, types.StatusOff
	default:
		return types.ActuatorState{}, types.StatusError
	}
}
