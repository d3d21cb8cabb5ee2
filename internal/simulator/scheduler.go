package simulator

import (
	"sort"

	"solar_household/internal/model"
)

// Decision is the outcome of scheduling one hour.
type Decision struct {
	// Running holds one flag per appliance, in declared order.
	Running []bool

	// ConsumptionW is the combined draw of every appliance that runs.
	ConsumptionW float64

	// UnmetMustRunW is the combined draw of must-run appliances that were
	// shed because the budget could not cover them.
	UnmetMustRunW float64
}

// Schedule decides which appliances run during the given hour. budgetW is the
// total power available this hour (generation plus battery discharge, already
// capped by the inverter). hoursRun holds each appliance's hours-run-today
// counter in declared order; it is not modified — the returned slice is the
// updated copy.
//
// An appliance is must-run when the hours left in its window are no more than
// the hours it still needs to reach its daily minimum. Must-run appliances
// are served first; within each group lower priority values win, and equal
// priorities keep declared order (the sort is stable).
func Schedule(hour int, budgetW float64, appliances []model.Appliance, hoursRun []int) (Decision, []int) {
	updated := make([]int, len(hoursRun))
	copy(updated, hoursRun)

	dec := Decision{Running: make([]bool, len(appliances))}

	var candidates []int
	for i, a := range appliances {
		if a.EligibleAt(hour) {
			candidates = append(candidates, i)
		}
	}

	mustRun := make(map[int]bool, len(candidates))
	for _, i := range candidates {
		a := appliances[i]
		needed := a.MinRuntimeHours - updated[i]
		remaining := a.EndHour - hour
		if needed > 0 && remaining <= needed {
			mustRun[i] = true
		}
	}

	sort.SliceStable(candidates, func(x, y int) bool {
		i, j := candidates[x], candidates[y]
		if mustRun[i] != mustRun[j] {
			return mustRun[i]
		}
		return appliances[i].Priority < appliances[j].Priority
	})

	remaining := budgetW
	for _, i := range candidates {
		a := appliances[i]
		if a.PowerW <= remaining {
			dec.Running[i] = true
			dec.ConsumptionW += a.PowerW
			remaining -= a.PowerW
			updated[i]++
		} else if mustRun[i] {
			dec.UnmetMustRunW += a.PowerW
		}
	}

	return dec, updated
}
