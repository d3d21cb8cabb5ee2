package simulator

import (
	"fmt"

	"solar_household/internal/model"
	"solar_household/internal/solar"
)

// Observer receives simulation output as it is produced. Implementations run
// on the simulation goroutine and must not block for long.
type Observer interface {
	OnHour(rec model.HourlyRecord)
	OnDay(summary model.DaySummary)
}

// Clock drives the hour loop over N days: generation, scheduling, battery
// update, record assembly. The whole run is a deterministic, single-threaded
// fold over hours; nothing in it does I/O.
type Clock struct {
	profile solar.Profile
}

// NewClock creates a clock with the given generation profile.
func NewClock(profile solar.Profile) *Clock {
	return &Clock{profile: profile}
}

// Run simulates the household for the given number of days. obs may be nil.
// The configuration is validated up front; once validation passes the loop
// is total — shortages and curtailment are reported in the records, never
// returned as errors.
func (c *Clock) Run(h model.Household, days int, obs Observer) (*model.SimulationRun, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", model.ErrInvalidConfig, days)
	}

	cfg := h.System
	battery := NewBattery(cfg.BatteryCapacityWh)
	run := &model.SimulationRun{
		Days:  days,
		Hours: make([]model.HourlyRecord, 0, days*model.HoursPerDay),
	}

	hoursRun := make([]int, len(h.Appliances))

	for day := 0; day < days; day++ {
		// Day boundary: runtime counters reset, battery charge carries over.
		for i := range hoursRun {
			hoursRun[i] = 0
		}

		var summary model.DaySummary
		summary.Day = day

		for hour := 0; hour < model.HoursPerDay; hour++ {
			gen := c.profile.GenerationAt(hour, cfg.SunriseHour, cfg.SunsetHour, cfg.PanelCapacityW)

			// Everything the appliances consume flows through the inverter.
			budget := gen + battery.Available()
			if budget > cfg.InverterMaxW {
				budget = cfg.InverterMaxW
			}

			dec, updated := Schedule(hour, budget, h.Appliances, hoursRun)
			hoursRun = updated

			// One-hour steps, so watts and watt-hours are interchangeable.
			net := gen - dec.ConsumptionW
			var curtailed float64
			if net > 0 {
				offered := net
				if offered > cfg.ChargeControllerMaxW {
					curtailed = offered - cfg.ChargeControllerMaxW
					offered = cfg.ChargeControllerMaxW
				}
				applied := battery.ApplyDelta(offered)
				curtailed += offered - applied
			} else if net < 0 {
				battery.ApplyDelta(net)
			}

			statuses := make([]model.ApplianceStatus, len(h.Appliances))
			for i, a := range h.Appliances {
				statuses[i] = model.ApplianceStatus{Name: a.Name, Running: dec.Running[i]}
			}

			rec := model.HourlyRecord{
				Day:           day,
				Hour:          hour,
				GenerationW:   gen,
				ConsumptionW:  dec.ConsumptionW,
				BatteryWh:     battery.ChargeWh,
				CurtailedWh:   curtailed,
				UnmetMustRunW: dec.UnmetMustRunW,
				Appliances:    statuses,
			}
			run.Hours = append(run.Hours, rec)
			if obs != nil {
				obs.OnHour(rec)
			}

			summary.GenerationWh += gen
			summary.ConsumptionWh += dec.ConsumptionW
			summary.CurtailedWh += curtailed
		}

		summary.EndBatteryWh = battery.ChargeWh
		summary.Appliances = make([]model.ApplianceDayResult, len(h.Appliances))
		for i, a := range h.Appliances {
			deficit := a.MinRuntimeHours - hoursRun[i]
			if deficit < 0 {
				deficit = 0
			}
			summary.Appliances[i] = model.ApplianceDayResult{
				Name:            a.Name,
				HoursRun:        hoursRun[i],
				MinRuntimeHours: a.MinRuntimeHours,
				DeficitHours:    deficit,
			}
		}
		run.Summaries = append(run.Summaries, summary)
		if obs != nil {
			obs.OnDay(summary)
		}
	}

	return run, nil
}
