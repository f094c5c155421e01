package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

// ReadingPayload is the wire form of a submitted reading. Pointer fields let
// the validator distinguish absent fields from zero values. Unknown extra
// fields are ignored. The timestamp is kept as a string so that a malformed
// value is reported as a field error rather than a decode failure.
type ReadingPayload struct {
	AssetID           *string  `json:"asset_id"`
	Temperature       *float64 `json:"temperature"`
	Pressure          *float64 `json:"pressure"`
	Vibration         *float64 `json:"vibration"`
	EnergyConsumption *float64 `json:"energy_consumption"`
	Timestamp         *string  `json:"timestamp"`
}

// ValidationError names the first field that failed validation and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// DecodePayload unmarshals a request body into a ReadingPayload. Decode
// failures are the submitter's fault, so a type mismatch on a known field is
// reported as a ValidationError for that field and a body that is not valid
// JSON at all as a ValidationError on the body itself.
func DecodePayload(body []byte) (ReadingPayload, error) {
	p := ReadingPayload{}

	err := json.Unmarshal(body, &p)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			switch typeErr.Field {
			case "asset_id":
				return ReadingPayload{}, &ValidationError{Field: typeErr.Field, Reason: "must be a string"}
			case "timestamp":
				return ReadingPayload{}, &ValidationError{Field: typeErr.Field, Reason: "must be an ISO-8601 timestamp"}
			default:
				return ReadingPayload{}, &ValidationError{Field: typeErr.Field, Reason: "must be a number"}
			}
		}

		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return ReadingPayload{}, &ValidationError{Field: "body", Reason: "must be valid JSON"}
		}

		return ReadingPayload{}, fmt.Errorf("unable to unmarshal reading payload: %w", err)
	}

	return p, nil
}

// Validate checks a submitted reading against the ingestion sanity bounds and
// returns a SensorReading ready for persistence. The rules are applied in a
// fixed priority order and the first failing rule determines the reported
// reason. These bounds are independent of any asset's configured envelope.
func Validate(p ReadingPayload) (types.SensorReading, error) {
	if p.AssetID == nil || *p.AssetID == "" {
		return types.SensorReading{}, &ValidationError{Field: "asset_id", Reason: "is required"}
	}

	metrics := []struct {
		name  string
		value *float64
	}{
		{"temperature", p.Temperature},
		{"pressure", p.Pressure},
		{"vibration", p.Vibration},
		{"energy_consumption", p.EnergyConsumption},
	}

	for _, m := range metrics {
		if m.value == nil {
			return types.SensorReading{}, &ValidationError{Field: m.name, Reason: "is required"}
		}
		if math.IsNaN(*m.value) || math.IsInf(*m.value, 0) {
			return types.SensorReading{}, &ValidationError{Field: m.name, Reason: "must be a finite number"}
		}
	}

	if *p.Temperature < -50 || *p.Temperature > 150 {
		return types.SensorReading{}, &ValidationError{Field: "temperature", Reason: "must be between -50 and 150"}
	}
	if *p.Pressure < 0 {
		return types.SensorReading{}, &ValidationError{Field: "pressure", Reason: "must not be negative"}
	}
	if *p.Vibration < 0 {
		return types.SensorReading{}, &ValidationError{Field: "vibration", Reason: "must not be negative"}
	}
	if *p.EnergyConsumption < 0 {
		return types.SensorReading{}, &ValidationError{Field: "energy_consumption", Reason: "must not be negative"}
	}

	reading := types.SensorReading{
		AssetID:           *p.AssetID,
		Temperature:       *p.Temperature,
		Pressure:          *p.Pressure,
		Vibration:         *p.Vibration,
		EnergyConsumption: *p.EnergyConsumption,
	}

	if p.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *p.Timestamp)
		if err != nil {
			return types.SensorReading{}, &ValidationError{Field: "timestamp", Reason: "must be an ISO-8601 timestamp"}
		}
		reading.Timestamp = ts.UTC()
	}

	return reading, nil
}
