package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar_household/internal/model"
)

const sampleHousehold = `{
  "solar_panel": {"name": "Solar Panel", "capacity": 1000},
  "battery": {"name": "Battery", "capacity": 2000},
  "charge_controller": {"name": "Charge Controller", "capacity": 30},
  "inverter": {"name": "Inverter", "capacity": 1500},
  "appliances": [
    {"name": "Fridge", "power": 150, "priority": "High", "start_time": "00:00", "end_time": "24:00", "min_runtime": 8},
    {"name": "Washer", "power": 500, "priority": 2, "start_time": "09:00", "end_time": "17:00", "min_runtime": 2.0}
  ],
  "sunrise": "06:00",
  "sunset": "20:00",
  "system_voltage": 12
}`

func TestParseHousehold(t *testing.T) {
	h, err := ParseHousehold([]byte(sampleHousehold))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, h.System.PanelCapacityW)
	assert.Equal(t, 2000.0, h.System.BatteryCapacityWh)
	assert.Equal(t, 1500.0, h.System.InverterMaxW)
	assert.Equal(t, 6, h.System.SunriseHour)
	assert.Equal(t, 20, h.System.SunsetHour)
	assert.Equal(t, 12.0, h.System.SystemVoltage)

	// The controller capacity is persisted in amps: 30A x 12V = 360W.
	assert.InDelta(t, 360, h.System.ChargeControllerMaxW, 0.01)

	require.Len(t, h.Appliances, 2)
	fridge := h.Appliances[0]
	assert.Equal(t, "Fridge", fridge.Name)
	assert.Equal(t, 1, fridge.Priority, "named priority High maps to rank 1")
	assert.Equal(t, 0, fridge.StartHour)
	assert.Equal(t, 24, fridge.EndHour)
	assert.Equal(t, 8, fridge.MinRuntimeHours)

	washer := h.Appliances[1]
	assert.Equal(t, 2, washer.Priority, "numeric priority passes through")
	assert.Equal(t, 9, washer.StartHour)
	assert.Equal(t, 17, washer.EndHour)
}

func TestParseHousehold_MissingComponent(t *testing.T) {
	_, err := ParseHousehold([]byte(`{
	  "solar_panel": {"name": "Solar Panel", "capacity": 1000},
	  "sunrise": "06:00", "sunset": "20:00", "system_voltage": 12
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestParseHousehold_BadPriority(t *testing.T) {
	_, err := ParseHousehold([]byte(`{
	  "solar_panel": {"name": "Solar Panel", "capacity": 1000},
	  "battery": {"name": "Battery", "capacity": 2000},
	  "charge_controller": {"name": "Charge Controller", "capacity": 30},
	  "inverter": {"name": "Inverter", "capacity": 1500},
	  "appliances": [
	    {"name": "Fridge", "power": 150, "priority": "urgent", "start_time": "00:00", "end_time": "24:00", "min_runtime": 8}
	  ],
	  "sunrise": "06:00", "sunset": "20:00", "system_voltage": 12
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestParseHousehold_BadTime(t *testing.T) {
	_, err := ParseHousehold([]byte(`{
	  "solar_panel": {"name": "Solar Panel", "capacity": 1000},
	  "battery": {"name": "Battery", "capacity": 2000},
	  "charge_controller": {"name": "Charge Controller", "capacity": 30},
	  "inverter": {"name": "Inverter", "capacity": 1500},
	  "sunrise": "dawn", "sunset": "20:00", "system_voltage": 12
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestParseHousehold_InvalidHousehold(t *testing.T) {
	// Parses fine but fails model validation: sunrise after sunset.
	_, err := ParseHousehold([]byte(`{
	  "solar_panel": {"name": "Solar Panel", "capacity": 1000},
	  "battery": {"name": "Battery", "capacity": 2000},
	  "charge_controller": {"name": "Charge Controller", "capacity": 30},
	  "inverter": {"name": "Inverter", "capacity": 1500},
	  "sunrise": "21:00", "sunset": "06:00", "system_voltage": 12
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestWriteHousehold_Roundtrip(t *testing.T) {
	h, err := ParseHousehold([]byte(sampleHousehold))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "household.json")
	require.NoError(t, WriteHousehold(path, h))

	loaded, err := LoadHousehold(path)
	require.NoError(t, err)
	assert.Equal(t, h, loaded)
}

func TestLoadHousehold_MissingFile(t *testing.T) {
	_, err := LoadHousehold(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
