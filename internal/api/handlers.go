package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"solar_household/internal/model"
	"solar_household/internal/simulator"
	"solar_household/internal/store"
)

// Handler serves the simulation REST API.
type Handler struct {
	clock       *simulator.Clock
	store       *store.Store
	log         *logrus.Logger
	defaultDays int
}

func NewHandler(clock *simulator.Clock, st *store.Store, log *logrus.Logger, defaultDays int) *Handler {
	if defaultDays <= 0 {
		defaultDays = 3
	}
	return &Handler{clock: clock, store: st, log: log, defaultDays: defaultDays}
}

// Simulate handles POST /api/v1/simulate.
func (h *Handler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}
	if req.Days <= 0 {
		req.Days = h.defaultDays
	}

	run, err := h.clock.Run(req.Household, req.Days, nil)
	if err != nil {
		status := http.StatusInternalServerError
		code := "SIMULATION_FAILED"
		if errors.Is(err, model.ErrInvalidConfig) {
			status = http.StatusBadRequest
			code = "INVALID_CONFIG"
		}
		c.JSON(status, ErrorResponse{
			Error: ErrorDetail{Code: code, Message: err.Error()},
		})
		return
	}

	sr := h.store.Add(req.Household, run)
	h.log.WithFields(logrus.Fields{
		"run_id":     sr.ID,
		"days":       run.Days,
		"appliances": len(req.Household.Appliances),
	}).Info("simulation complete")

	c.JSON(http.StatusOK, SimulateResponse{
		RunID:     sr.ID,
		Days:      run.Days,
		Summaries: run.Summaries,
	})
}

// ListRuns handles GET /api/v1/runs.
func (h *Handler) ListRuns(c *gin.Context) {
	stored := h.store.List()
	infos := make([]RunInfo, 0, len(stored))
	for _, sr := range stored {
		infos = append(infos, runInfo(sr))
	}
	c.JSON(http.StatusOK, gin.H{"runs": infos})
}

// GetRun handles GET /api/v1/runs/:id.
func (h *Handler) GetRun(c *gin.Context) {
	sr, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "RUN_NOT_FOUND", Message: "no run with that id"},
		})
		return
	}
	c.JSON(http.StatusOK, sr)
}

// GetRunHours handles GET /api/v1/runs/:id/hours?day=N — the hour browser
// boundary: one day's records at a time.
func (h *Handler) GetRunHours(c *gin.Context) {
	sr, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "RUN_NOT_FOUND", Message: "no run with that id"},
		})
		return
	}

	dayParam := c.DefaultQuery("day", "0")
	day, err := strconv.Atoi(dayParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_DAY", Message: "day must be an integer"},
		})
		return
	}

	hours := sr.Run.Day(day)
	if hours == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "DAY_OUT_OF_RANGE", Message: "run has no such day"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": sr.ID,
		"day":    day,
		"hours":  hours,
	})
}

func runInfo(sr *store.StoredRun) RunInfo {
	info := RunInfo{
		ID:         sr.ID,
		CreatedAt:  sr.CreatedAt,
		Days:       sr.Run.Days,
		Appliances: len(sr.Household.Appliances),
	}
	for _, s := range sr.Run.Summaries {
		info.GenerationWh += s.GenerationWh
		info.ConsumptionWh += s.ConsumptionWh
		info.CurtailedWh += s.CurtailedWh
		for _, a := range s.Appliances {
			info.DeficitHours += a.DeficitHours
		}
	}
	return info
}
