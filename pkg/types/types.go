package types

import (
	"time"
)

// SensorReading is one telemetry sample submitted by a machine. Readings are
// immutable once stored.
type SensorReading struct {
	ID                uint64    `json:"id,omitempty"`
	AssetID           string    `json:"asset_id"`
	Temperature       float64   `json:"temperature"`
	Pressure          float64   `json:"pressure"`
	Vibration         float64   `json:"vibration"`
	EnergyConsumption float64   `json:"energy_consumption"`
	Timestamp         time.Time `json:"timestamp"`
}

// MetricRange is the configured [min, max] normal operating envelope for a
// single metric on a single asset.
type MetricRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type Asset struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Temperature       MetricRange `json:"temperature"`
	Pressure          MetricRange `json:"pressure"`
	Vibration         MetricRange `json:"vibration"`
	EnergyConsumption MetricRange `json:"energy_consumption"`
}

const (
	AlertSeverityLow      = "low"
	AlertSeverityMedium   = "medium"
	AlertSeverityHigh     = "high"
	AlertSeverityCritical = "critical"
)

const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

// Alert is a detected threshold violation. ID and CreatedAt are assigned when
// the alert is persisted. Status transitions past "active" are owned by the
// maintenance subsystem.
type Alert struct {
	ID        string    `json:"id,omitempty"`
	AssetID   string    `json:"asset_id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Subject is the identity that a verified credential resolves to.
type Subject struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
