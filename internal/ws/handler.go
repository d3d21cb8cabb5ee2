package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"solar_household/internal/simulator"
	"solar_household/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and routes client messages to the
// simulation clock. Completed runs land in the store so the REST API can
// serve them afterwards.
type Handler struct {
	hub   *Hub
	clock *simulator.Clock
	store *store.Store
	log   *logrus.Logger
}

func NewHandler(hub *Hub, clock *simulator.Clock, st *store.Store, log *logrus.Logger) *Handler {
	return &Handler{hub: hub, clock: clock, store: st, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("websocket upgrade")
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Warn("websocket read")
			}
			return
		}

		h.handleMessage(msg)
	}
}

func (h *Handler) handleMessage(msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.sendError("invalid message")
		return
	}

	switch env.Type {
	case TypeSimRun:
		var p RunRequestPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.sendError("invalid run payload")
			return
		}
		if p.Days <= 0 {
			p.Days = 3
		}
		go h.runSimulation(p)

	default:
		h.log.WithField("type", env.Type).Warn("unknown message type")
	}
}

// runSimulation executes one simulation, streaming records through the
// bridge. Runs are fast enough that concurrent requests are simply allowed
// to interleave on the hub; each run's records carry no shared state.
func (h *Handler) runSimulation(p RunRequestPayload) {
	bridge := NewBridge(h.hub, h.log)

	if msg, err := NewEnvelope(TypeRunStarted, RunStartedPayload{
		Days:       p.Days,
		Appliances: len(p.Household.Appliances),
	}); err == nil {
		h.hub.Broadcast(msg)
	}

	run, err := h.clock.Run(p.Household, p.Days, bridge)
	if err != nil {
		h.sendError(err.Error())
		return
	}

	sr := h.store.Add(p.Household, run)

	var totalDeficit int
	var curtailed float64
	for _, s := range run.Summaries {
		curtailed += s.CurtailedWh
		for _, a := range s.Appliances {
			totalDeficit += a.DeficitHours
		}
	}

	msg, err := NewEnvelope(TypeRunComplete, RunCompletePayload{
		RunID:        sr.ID,
		Days:         run.Days,
		TotalDeficit: totalDeficit,
		CurtailedWh:  curtailed,
	})
	if err != nil {
		h.log.WithError(err).Error("marshaling run complete")
		return
	}
	h.hub.Broadcast(msg)
}

func (h *Handler) sendError(message string) {
	msg, err := NewEnvelope(TypeError, ErrorPayload{Message: message})
	if err != nil {
		return
	}
	h.hub.Broadcast(msg)
}
