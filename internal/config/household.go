package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"solar_household/internal/model"
)

// The persisted household shape predates this codebase: component capacities
// live under named records, times are "HH:MM" strings, appliance priority may
// be a number or one of "High"/"Medium"/"Low", and the charge controller
// capacity is in amps (converted to watts via the system voltage).

type componentRecord struct {
	Name     string  `json:"name"`
	Capacity float64 `json:"capacity"`
}

type applianceRecord struct {
	Name       string          `json:"name"`
	Power      float64         `json:"power"`
	Priority   json.RawMessage `json:"priority"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	MinRuntime float64         `json:"min_runtime"`
}

type householdRecord struct {
	SolarPanel       *componentRecord  `json:"solar_panel"`
	Battery          *componentRecord  `json:"battery"`
	ChargeController *componentRecord  `json:"charge_controller"`
	Inverter         *componentRecord  `json:"inverter"`
	Appliances       []applianceRecord `json:"appliances"`
	Sunrise          string            `json:"sunrise"`
	Sunset           string            `json:"sunset"`
	SystemVoltage    float64           `json:"system_voltage"`
}

// LoadHousehold reads a household configuration file and validates it.
func LoadHousehold(path string) (model.Household, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Household{}, err
	}
	h, err := ParseHousehold(raw)
	if err != nil {
		return model.Household{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return h, nil
}

// ParseHousehold decodes the persisted JSON shape into a validated Household.
func ParseHousehold(data []byte) (model.Household, error) {
	var rec householdRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Household{}, err
	}

	for name, c := range map[string]*componentRecord{
		"solar_panel":       rec.SolarPanel,
		"battery":           rec.Battery,
		"charge_controller": rec.ChargeController,
		"inverter":          rec.Inverter,
	} {
		if c == nil {
			return model.Household{}, fmt.Errorf("%w: missing component %q", model.ErrInvalidConfig, name)
		}
	}

	sunrise, err := parseHour(rec.Sunrise)
	if err != nil {
		return model.Household{}, fmt.Errorf("%w: sunrise: %v", model.ErrInvalidConfig, err)
	}
	sunset, err := parseHour(rec.Sunset)
	if err != nil {
		return model.Household{}, fmt.Errorf("%w: sunset: %v", model.ErrInvalidConfig, err)
	}

	h := model.Household{
		System: model.SystemConfig{
			PanelCapacityW:       rec.SolarPanel.Capacity,
			BatteryCapacityWh:    rec.Battery.Capacity,
			ChargeControllerMaxW: rec.ChargeController.Capacity * rec.SystemVoltage,
			InverterMaxW:         rec.Inverter.Capacity,
			SunriseHour:          sunrise,
			SunsetHour:           sunset,
			SystemVoltage:        rec.SystemVoltage,
		},
	}

	for _, ar := range rec.Appliances {
		prio, err := parsePriority(ar.Priority)
		if err != nil {
			return model.Household{}, fmt.Errorf("%w: appliance %q: %v", model.ErrInvalidConfig, ar.Name, err)
		}
		start, err := parseHour(ar.StartTime)
		if err != nil {
			return model.Household{}, fmt.Errorf("%w: appliance %q start time: %v", model.ErrInvalidConfig, ar.Name, err)
		}
		end, err := parseHour(ar.EndTime)
		if err != nil {
			return model.Household{}, fmt.Errorf("%w: appliance %q end time: %v", model.ErrInvalidConfig, ar.Name, err)
		}
		h.Appliances = append(h.Appliances, model.Appliance{
			Name:            ar.Name,
			PowerW:          ar.Power,
			Priority:        prio,
			StartHour:       start,
			EndHour:         end,
			MinRuntimeHours: int(math.Round(ar.MinRuntime)),
		})
	}

	if err := h.Validate(); err != nil {
		return model.Household{}, err
	}
	return h, nil
}

// WriteHousehold writes a Household back out in the persisted shape.
func WriteHousehold(path string, h model.Household) error {
	rec := householdRecord{
		SolarPanel: &componentRecord{Name: "Solar Panel", Capacity: h.System.PanelCapacityW},
		Battery:    &componentRecord{Name: "Battery", Capacity: h.System.BatteryCapacityWh},
		ChargeController: &componentRecord{
			Name:     "Charge Controller",
			Capacity: controllerAmps(h.System),
		},
		Inverter:      &componentRecord{Name: "Inverter", Capacity: h.System.InverterMaxW},
		Sunrise:       formatHour(h.System.SunriseHour),
		Sunset:        formatHour(h.System.SunsetHour),
		SystemVoltage: h.System.SystemVoltage,
	}
	for _, a := range h.Appliances {
		rec.Appliances = append(rec.Appliances, applianceRecord{
			Name:       a.Name,
			Power:      a.PowerW,
			Priority:   json.RawMessage(strconv.Itoa(a.Priority)),
			StartTime:  formatHour(a.StartHour),
			EndTime:    formatHour(a.EndHour),
			MinRuntime: float64(a.MinRuntimeHours),
		})
	}

	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

func controllerAmps(c model.SystemConfig) float64 {
	if c.SystemVoltage <= 0 {
		return 0
	}
	return c.ChargeControllerMaxW / c.SystemVoltage
}

// parseHour extracts the hour from an "HH:MM" string. Minutes are accepted
// but ignored: the simulation resolution is one hour.
func parseHour(s string) (int, error) {
	part, _, found := strings.Cut(s, ":")
	if !found {
		part = s
	}
	h, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, fmt.Errorf("bad time %q", s)
	}
	if h < 0 || h > 24 {
		return 0, fmt.Errorf("hour %d outside [0, 24]", h)
	}
	return h, nil
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

// parsePriority accepts an integer rank (lower runs first) or one of the
// named levels used by older configuration files.
func parsePriority(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("priority is required")
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("bad priority %s", string(raw))
	}
	switch strings.ToLower(s) {
	case "high":
		return 1, nil
	case "medium":
		return 2, nil
	case "low":
		return 3, nil
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}
