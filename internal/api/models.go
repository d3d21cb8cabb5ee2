package api

import (
	"time"

	"solar_household/internal/model"
)

// SimulateRequest is the body of POST /api/v1/simulate.
type SimulateRequest struct {
	Household model.Household `json:"household"`
	Days      int             `json:"days"`
}

// SimulateResponse returns the stored run's ID and its day summaries; full
// hourly records are fetched per day through the runs endpoints.
type SimulateResponse struct {
	RunID     string             `json:"run_id"`
	Days      int                `json:"days"`
	Summaries []model.DaySummary `json:"day_summaries"`
}

// RunInfo is one entry in the run listing.
type RunInfo struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Days          int       `json:"days"`
	Appliances    int       `json:"appliances"`
	GenerationWh  float64   `json:"generation_wh"`
	ConsumptionWh float64   `json:"consumption_wh"`
	CurtailedWh   float64   `json:"curtailed_wh"`
	DeficitHours  int       `json:"deficit_hours"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
