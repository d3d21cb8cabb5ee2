package ws

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewEnvelope(t *testing.T) {
	payload := RunStartedPayload{Days: 3, Appliances: 2}

	msg, err := NewEnvelope(TypeRunStarted, payload)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	assert.Equal(t, TypeRunStarted, env.Type)

	var parsed RunStartedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &parsed))
	assert.Equal(t, 3, parsed.Days)
	assert.Equal(t, 2, parsed.Appliances)
}

func TestNewEnvelope_NoPayload(t *testing.T) {
	msg, err := NewEnvelope(TypeSimRun, nil)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	assert.Equal(t, TypeSimRun, env.Type)
	assert.Nil(t, env.Payload)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(testLogger())

	c := &Client{
		hub:  hub,
		send: make(chan []byte, 16),
	}

	hub.Register(c)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(testLogger())

	c1 := &Client{hub: hub, send: make(chan []byte, 16)}
	c2 := &Client{hub: hub, send: make(chan []byte, 16)}

	hub.Register(c1)
	hub.Register(c2)

	msg := []byte(`{"type":"test"}`)
	hub.Broadcast(msg)

	assert.Equal(t, msg, <-c1.send)
	assert.Equal(t, msg, <-c2.send)
}

func TestMessageTypes(t *testing.T) {
	assert.Equal(t, "sim:run", TypeSimRun)
	assert.Equal(t, "run:started", TypeRunStarted)
	assert.Equal(t, "run:hour", TypeRunHour)
	assert.Equal(t, "run:day", TypeRunDay)
	assert.Equal(t, "run:complete", TypeRunComplete)
}
