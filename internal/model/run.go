package model

// HoursPerDay is the fixed resolution of the simulation.
const HoursPerDay = 24

// ApplianceStatus records whether one appliance ran during an hour.
type ApplianceStatus struct {
	Name    string `json:"name"`
	Running bool   `json:"running"`
}

// HourlyRecord captures everything that happened in one simulated hour.
// Records are immutable once appended to a run.
type HourlyRecord struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`

	GenerationW  float64 `json:"generation_w"`
	ConsumptionW float64 `json:"consumption_w"`

	// BatteryWh is the stored charge after this hour's net delta was applied.
	BatteryWh float64 `json:"battery_wh"`

	// CurtailedWh is generated energy that could be neither consumed nor
	// stored this hour and was lost.
	CurtailedWh float64 `json:"curtailed_wh"`

	// UnmetMustRunW is the combined draw of must-run appliances shed this
	// hour for lack of budget. Reported, never fatal.
	UnmetMustRunW float64 `json:"unmet_must_run_w"`

	// Appliances holds one status per configured appliance, in declared order.
	Appliances []ApplianceStatus `json:"appliances"`
}

// ApplianceDayResult reports one appliance's runtime accounting for a day.
type ApplianceDayResult struct {
	Name            string `json:"name"`
	HoursRun        int    `json:"hours_run"`
	MinRuntimeHours int    `json:"min_runtime_hours"`

	// DeficitHours is the shortfall below the minimum runtime, zero when
	// the minimum was met.
	DeficitHours int `json:"deficit_hours"`
}

// DaySummary aggregates one simulated day.
type DaySummary struct {
	Day int `json:"day"`

	GenerationWh  float64 `json:"generation_wh"`
	ConsumptionWh float64 `json:"consumption_wh"`
	CurtailedWh   float64 `json:"curtailed_wh"`

	// EndBatteryWh is the battery charge at the end of the day; it carries
	// into the next day unchanged.
	EndBatteryWh float64 `json:"end_battery_wh"`

	Appliances []ApplianceDayResult `json:"appliances"`
}

// HasDeficit reports whether any appliance missed its minimum runtime.
func (s DaySummary) HasDeficit() bool {
	for _, a := range s.Appliances {
		if a.DeficitHours > 0 {
			return true
		}
	}
	return false
}

// SimulationRun is the complete, ordered output of one simulation.
type SimulationRun struct {
	Days      int            `json:"days"`
	Hours     []HourlyRecord `json:"hours"`
	Summaries []DaySummary   `json:"day_summaries"`
}

// Day returns the 24 hourly records of the given day, or nil when the day is
// out of range.
func (r *SimulationRun) Day(day int) []HourlyRecord {
	start := day * HoursPerDay
	end := start + HoursPerDay
	if day < 0 || end > len(r.Hours) {
		return nil
	}
	return r.Hours[start:end]
}
