package database

import (
	"time"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

type Asset struct {
	ID   string `gorm:"primaryKey"`
	Name string

	TemperatureMin float64
	TemperatureMax float64
	PressureMin    float64
	PressureMax    float64
	VibrationMin   float64
	VibrationMax   float64
	EnergyMin      float64
	EnergyMax      float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type SensorReading struct {
	ID      uint64 `gorm:"primaryKey"`
	AssetID string `gorm:"index"`

	Temperature       float64
	Pressure          float64
	Vibration         float64
	EnergyConsumption float64

	Timestamp time.Time `gorm:"index"`
	CreatedAt time.Time
}

type Alert struct {
	ID      string `gorm:"primaryKey"`
	AssetID string `gorm:"index"`

	Type     string
	Severity string
	Message  string
	Status   string

	CreatedAt time.Time
}

func (a Asset) toModel() types.Asset {
	return types.Asset{
		ID:                a.ID,
		Name:              a.Name,
		Temperature:       types.MetricRange{Min: a.TemperatureMin, Max: a.TemperatureMax},
		Pressure:          types.MetricRange{Min: a.PressureMin, Max: a.PressureMax},
		Vibration:         types.MetricRange{Min: a.VibrationMin, Max: a.VibrationMax},
		EnergyConsumption: types.MetricRange{Min: a.EnergyMin, Max: a.EnergyMax},
	}
}

func assetFromModel(a types.Asset) Asset {
	return Asset{
		ID:             a.ID,
		Name:           a.Name,
		TemperatureMin: a.Temperature.Min,
		TemperatureMax: a.Temperature.Max,
		PressureMin:    a.Pressure.Min,
		PressureMax:    a.Pressure.Max,
		VibrationMin:   a.Vibration.Min,
		VibrationMax:   a.Vibration.Max,
		EnergyMin:      a.EnergyConsumption.Min,
		EnergyMax:      a.EnergyConsumption.Max,
	}
}

func (r SensorReading) toModel() types.SensorReading {
	return types.SensorReading{
		ID:                r.ID,
		AssetID:           r.AssetID,
		Temperature:       r.Temperature,
		Pressure:          r.Pressure,
		Vibration:         r.Vibration,
		EnergyConsumption: r.EnergyConsumption,
		Timestamp:         r.Timestamp,
	}
}

func (a Alert) toModel() types.Alert {
	return types.Alert{
		ID:        a.ID,
		AssetID:   a.AssetID,
		Type:      a.Type,
		Severity:  a.Severity,
		Message:   a.Message,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
