package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration rejected before any simulation hour
// runs. Callers can match it with errors.Is to distinguish bad input from
// internal failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// SystemConfig holds the fixed parameters of the solar installation.
// It is immutable for the duration of a simulation run.
type SystemConfig struct {
	PanelCapacityW       float64 `json:"panel_capacity_w"`
	BatteryCapacityWh    float64 `json:"battery_capacity_wh"`
	ChargeControllerMaxW float64 `json:"charge_controller_max_w"`
	InverterMaxW         float64 `json:"inverter_max_w"`
	SunriseHour          int     `json:"sunrise_hour"`
	SunsetHour           int     `json:"sunset_hour"`
	SystemVoltage        float64 `json:"system_voltage"`
}

func (c SystemConfig) Validate() error {
	if c.PanelCapacityW <= 0 {
		return fmt.Errorf("%w: panel capacity must be positive, got %g W", ErrInvalidConfig, c.PanelCapacityW)
	}
	if c.BatteryCapacityWh <= 0 {
		return fmt.Errorf("%w: battery capacity must be positive, got %g Wh", ErrInvalidConfig, c.BatteryCapacityWh)
	}
	if c.ChargeControllerMaxW <= 0 {
		return fmt.Errorf("%w: charge controller throughput must be positive, got %g W", ErrInvalidConfig, c.ChargeControllerMaxW)
	}
	if c.InverterMaxW <= 0 {
		return fmt.Errorf("%w: inverter output must be positive, got %g W", ErrInvalidConfig, c.InverterMaxW)
	}
	if c.SunriseHour < 0 || c.SunriseHour > 23 {
		return fmt.Errorf("%w: sunrise hour %d outside [0, 23]", ErrInvalidConfig, c.SunriseHour)
	}
	if c.SunsetHour < 0 || c.SunsetHour > 24 {
		return fmt.Errorf("%w: sunset hour %d outside [0, 24]", ErrInvalidConfig, c.SunsetHour)
	}
	if c.SunriseHour >= c.SunsetHour {
		return fmt.Errorf("%w: sunrise (%d) must be before sunset (%d)", ErrInvalidConfig, c.SunriseHour, c.SunsetHour)
	}
	return nil
}

// Appliance describes one load. Windows are [StartHour, EndHour) within a
// single day; wrapping past midnight is not supported.
type Appliance struct {
	Name            string  `json:"name"`
	PowerW          float64 `json:"power_w"`
	Priority        int     `json:"priority"`
	StartHour       int     `json:"start_hour"`
	EndHour         int     `json:"end_hour"`
	MinRuntimeHours int     `json:"min_runtime_hours"`
}

func (a Appliance) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: appliance name is required", ErrInvalidConfig)
	}
	if a.PowerW < 0 {
		return fmt.Errorf("%w: appliance %q power must not be negative, got %g W", ErrInvalidConfig, a.Name, a.PowerW)
	}
	if a.StartHour < 0 || a.StartHour > 23 {
		return fmt.Errorf("%w: appliance %q start hour %d outside [0, 23]", ErrInvalidConfig, a.Name, a.StartHour)
	}
	if a.EndHour < 0 || a.EndHour > 24 {
		return fmt.Errorf("%w: appliance %q end hour %d outside [0, 24]", ErrInvalidConfig, a.Name, a.EndHour)
	}
	if a.StartHour > a.EndHour {
		return fmt.Errorf("%w: appliance %q window start (%d) after end (%d)", ErrInvalidConfig, a.Name, a.StartHour, a.EndHour)
	}
	if a.MinRuntimeHours < 0 {
		return fmt.Errorf("%w: appliance %q minimum runtime must not be negative", ErrInvalidConfig, a.Name)
	}
	if a.MinRuntimeHours > a.WindowHours() {
		return fmt.Errorf("%w: appliance %q minimum runtime %dh exceeds window length %dh",
			ErrInvalidConfig, a.Name, a.MinRuntimeHours, a.WindowHours())
	}
	return nil
}

// EligibleAt reports whether the appliance's window contains the given hour.
func (a Appliance) EligibleAt(hour int) bool {
	return hour >= a.StartHour && hour < a.EndHour
}

// WindowHours returns the length of the allowed operating window in hours.
func (a Appliance) WindowHours() int {
	return a.EndHour - a.StartHour
}

// Household bundles the system configuration with its appliance list. This is
// the shape the simulation entry point consumes; loaders (JSON file, HTTP
// request body) produce it.
type Household struct {
	System     SystemConfig `json:"system"`
	Appliances []Appliance  `json:"appliances"`
}

func (h Household) Validate() error {
	if err := h.System.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(h.Appliances))
	for _, a := range h.Appliances {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate appliance name %q", ErrInvalidConfig, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

// TotalConnectedLoadW sums the power draw of every appliance.
func (h Household) TotalConnectedLoadW() float64 {
	var total float64
	for _, a := range h.Appliances {
		total += a.PowerW
	}
	return total
}
