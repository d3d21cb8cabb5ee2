package ws

import (
	"encoding/json"

	"solar_household/internal/model"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client -> Server messages

// RunRequestPayload asks the server to simulate a household and stream the
// results back hour by hour.
type RunRequestPayload struct {
	Household model.Household `json:"household"`
	Days      int             `json:"days"`
}

// Server -> Client messages

type RunStartedPayload struct {
	Days       int `json:"days"`
	Appliances int `json:"appliances"`
}

type RunCompletePayload struct {
	RunID        string  `json:"run_id"`
	Days         int     `json:"days"`
	TotalDeficit int     `json:"total_deficit_hours"`
	CurtailedWh  float64 `json:"curtailed_wh"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Message type constants
const (
	// Client -> Server
	TypeSimRun = "sim:run"

	// Server -> Client
	TypeRunStarted  = "run:started"
	TypeRunHour     = "run:hour"
	TypeRunDay      = "run:day"
	TypeRunComplete = "run:complete"
	TypeError       = "error"
)

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
