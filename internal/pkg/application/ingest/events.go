package ingest

import (
	"encoding/json"
	"time"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

type ReadingStored struct {
	Reading   types.SensorReading `json:"reading"`
	Timestamp time.Time           `json:"timestamp"`
}

func (m *ReadingStored) ContentType() string {
	return "application/json"
}
func (m *ReadingStored) TopicName() string {
	return "telemetry.readingStored"
}
func (m *ReadingStored) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Timestamp time.Time   `json:"timestamp"`
}

func (m *AlertCreated) ContentType() string {
	return "application/json"
}
func (m *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (m *AlertCreated) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
