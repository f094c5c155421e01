package ingest

import (
	"fmt"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

// criticalExceedance is the percentage beyond a threshold above which a
// violation is classified as critical instead of medium.
const criticalExceedance = 10.0

// EvaluateThresholds compares a validated reading against the owning asset's
// operating envelope and returns zero or more alert drafts, evaluated per
// metric in a fixed order. A value exactly at a boundary is not a violation.
// IDs and creation times are assigned at persistence time.
//
// Every violating reading produces a new draft. There is no tracking of
// already-active alerts per (asset, metric, direction), so a machine that
// keeps violating the same threshold raises a new alert on every reading.
func EvaluateThresholds(reading types.SensorReading, asset types.Asset) []types.Alert {
	metrics := []struct {
		name   string
		value  float64
		bounds types.MetricRange
	}{
		{"temperature", reading.Temperature, asset.Temperature},
		{"pressure", reading.Pressure, asset.Pressure},
		{"vibration", reading.Vibration, asset.Vibration},
		{"energy_consumption", reading.EnergyConsumption, asset.EnergyConsumption},
	}

	alerts := make([]types.Alert, 0)

	for _, m := range metrics {
		switch {
		case m.value > m.bounds.Max:
			exceedance := (m.value - m.bounds.Max) / m.bounds.Max * 100
			alerts = append(alerts, types.Alert{
				AssetID:  reading.AssetID,
				Type:     m.name + "_high",
				Severity: severityFor(exceedance),
				Message:  fmt.Sprintf("%s value %.2f exceeds maximum threshold %.2f", m.name, m.value, m.bounds.Max),
				Status:   types.AlertStatusActive,
			})
		case m.bounds.Min != 0 && m.value < m.bounds.Min:
			// a configured min of 0 disables the low check, which also keeps
			// the exceedance ratio total (ingestion already rejects negative
			// pressure, vibration and energy values)
			exceedance := (m.bounds.Min - m.value) / m.bounds.Min * 100
			alerts = append(alerts, types.Alert{
				AssetID:  reading.AssetID,
				Type:     m.name + "_low",
				Severity: severityFor(exceedance),
				Message:  fmt.Sprintf("%s value %.2f is below minimum threshold %.2f", m.name, m.value, m.bounds.Min),
				Status:   types.AlertStatusActive,
			})
		}
	}

	return alerts
}

func severityFor(exceedance float64) string {
	if exceedance > criticalExceedance {
		return types.AlertSeverityCritical
	}
	return types.AlertSeverityMedium
}
