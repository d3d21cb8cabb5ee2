package ws

import (
	"github.com/sirupsen/logrus"

	"solar_household/internal/model"
)

// Bridge implements simulator.Observer and broadcasts each record to the
// WebSocket hub as it is produced.
type Bridge struct {
	hub *Hub
	log *logrus.Logger
}

func NewBridge(hub *Hub, log *logrus.Logger) *Bridge {
	return &Bridge{hub: hub, log: log}
}

func (b *Bridge) OnHour(rec model.HourlyRecord) {
	msg, err := NewEnvelope(TypeRunHour, rec)
	if err != nil {
		b.log.WithError(err).Error("marshaling hourly record")
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnDay(summary model.DaySummary) {
	msg, err := NewEnvelope(TypeRunDay, summary)
	if err != nil {
		b.log.WithError(err).Error("marshaling day summary")
		return
	}
	b.hub.Broadcast(msg)
}
