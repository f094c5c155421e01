package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"

	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/alerts"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/ingest"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/infrastructure/router"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/presentation/api/auth"
	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

func TestThatHealthEndpointReturns204(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", "", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatIngestRequiresACredential(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "", []byte(readingJSON("press-01", 72.5)))

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
	is.Equal(len(deps.readings.AddReadingCalls()), 0)
}

func TestThatAValidReadingIsIngested(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", []byte(readingJSON("press-01", 72.5)))

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(deps.readings.AddReadingCalls()), 1)

	result := struct {
		Message      string `json:"message"`
		AlertsRaised int    `json:"alerts_raised"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.Message, "sensor reading ingested")
	is.Equal(result.AlertsRaised, 0)
}

func TestThatAnOutOfEnvelopeReadingReportsRaisedAlerts(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", []byte(readingJSON("press-01", 95.0)))

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(deps.alerts.AddAlertsCalls()), 1)

	result := struct {
		AlertsRaised int `json:"alerts_raised"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.AlertsRaised, 1)
}

func TestThatAMalformedPayloadYields400WithTheFailingField(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	payload := []byte(`{"asset_id":"press-01","temperature":"hot","pressure":101.0,"vibration":1.2,"energy_consumption":120.0}`)
	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", payload)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(deps.readings.AddReadingCalls()), 0)

	result := struct {
		Error string `json:"error"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.Error, "temperature must be a number")
}

func TestThatAMissingFieldYields400(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	payload := []byte(`{"asset_id":"press-01","temperature":72.5,"vibration":1.2,"energy_consumption":120.0}`)
	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", payload)

	is.Equal(resp.StatusCode, http.StatusBadRequest)

	result := struct {
		Error string `json:"error"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.Error, "pressure is required")
}

func TestThatAMalformedTimestampYields400(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	payload := []byte(`{"asset_id":"press-01","temperature":72.5,"pressure":101.0,"vibration":1.2,"energy_consumption":120.0,"timestamp":"31/12/2025 10:00"}`)
	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", payload)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(deps.readings.AddReadingCalls()), 0)

	result := struct {
		Error string `json:"error"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.Error, "timestamp must be an ISO-8601 timestamp")
}

func TestThatATruncatedBodyYields400(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", []byte(`{"asset_id": `))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(deps.readings.AddReadingCalls()), 0)

	result := struct {
		Error string `json:"error"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.Error, "body must be valid JSON")
}

func TestThatAnUnknownAssetYields404(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	deps.assets.GetAssetByIDFunc = func(ctx context.Context, assetID string) (types.Asset, error) {
		return types.Asset{}, database.ErrAssetNotFound
	}

	resp, _ := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", []byte(readingJSON("ghost-99", 72.5)))

	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(len(deps.readings.AddReadingCalls()), 0)
}

func TestThatAFailedReadingWriteYields500WithoutInternalDetail(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	deps.readings.AddReadingFunc = func(ctx context.Context, reading types.SensorReading) (types.SensorReading, error) {
		return types.SensorReading{}, errors.New("pq: connection reset by peer")
	}

	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", []byte(readingJSON("press-01", 72.5)))

	is.Equal(resp.StatusCode, http.StatusInternalServerError)

	result := struct {
		Error string `json:"error"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.Error, "unable to ingest reading")
}

func TestThatAFailedAlertWriteStillAcknowledgesTheReading(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	deps.alerts.AddAlertsFunc = func(ctx context.Context, a []types.Alert) ([]types.Alert, error) {
		return nil, errors.New("pq: connection reset by peer")
	}

	resp, body := testRequest(is, server, http.MethodPost, "/api/ingest-sensor", "Bearer sometoken", []byte(readingJSON("press-01", 95.0)))

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(deps.readings.AddReadingCalls()), 1)

	// the reported count covers detected violations even when none were stored
	result := struct {
		AlertsRaised int `json:"alerts_raised"`
	}{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(result.AlertsRaised, 1)
}

func TestThatPreflightRequestsAreAnsweredWithoutAuthentication(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/api/ingest-sensor", nil)
	req.Header.Set("Origin", "https://dashboard.plantpulse.io")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(resp.Header.Get("Access-Control-Allow-Origin"), "*")
	is.Equal(resp.Header.Get("Access-Control-Allow-Methods"), "POST")
	is.True(strings.Contains(resp.Header.Get("Access-Control-Allow-Headers"), "Authorization"))
	is.Equal(len(deps.readings.AddReadingCalls()), 0)
}

func TestThatGetOnTheIngestEndpointIsRejected(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/ingest-sensor", "Bearer sometoken", nil)

	is.Equal(resp.StatusCode, http.StatusMethodNotAllowed)
}

func TestThatAlertsCanBeQueried(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/alerts", "Bearer sometoken", nil)

	is.Equal(resp.StatusCode, http.StatusOK)

	result := []types.Alert{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(len(result), 1)
	is.Equal(result[0].Type, "temperature_high")
}

func TestThatAlertsCanBeFilteredByAsset(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alerts?asset_id=press-01", "Bearer sometoken", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(deps.alertStore.GetAlertsByAssetIDCalls()), 1)
	is.Equal(deps.alertStore.GetAlertsByAssetIDCalls()[0].AssetID, "press-01")
}

func TestThatReadingsCanBeQueried(t *testing.T) {
	is, server, deps := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/readings?asset_id=press-01&limit=5", "Bearer sometoken", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(deps.readings.GetReadingsCalls()[0].AssetID, "press-01")
	is.Equal(deps.readings.GetReadingsCalls()[0].Limit, 5)

	result := []types.SensorReading{}
	is.NoErr(json.Unmarshal(body, &result))
	is.Equal(len(result), 0)
}

type testDeps struct {
	readings   *ingest.ReadingStorageMock
	alerts     *ingest.AlertStorageMock
	assets     *ingest.AssetDirectoryMock
	alertStore *alerts.AlertStorageMock
}

func testSetup(t *testing.T) (*is.I, *httptest.Server, *testDeps) {
	is := is.New(t)

	deps := &testDeps{
		readings: &ingest.ReadingStorageMock{
			AddReadingFunc: func(ctx context.Context, reading types.SensorReading) (types.SensorReading, error) {
				reading.ID = 1
				return reading, nil
			},
			GetReadingsFunc: func(ctx context.Context, assetID string, limit int) ([]types.SensorReading, error) {
				return []types.SensorReading{}, nil
			},
		},
		alerts: &ingest.AlertStorageMock{
			AddAlertsFunc: func(ctx context.Context, a []types.Alert) ([]types.Alert, error) {
				return a, nil
			},
		},
		assets: &ingest.AssetDirectoryMock{
			GetAssetByIDFunc: func(ctx context.Context, assetID string) (types.Asset, error) {
				return types.Asset{
					ID:                assetID,
					Name:              "Hydraulic Press 1",
					Temperature:       types.MetricRange{Min: 20, Max: 85},
					Pressure:          types.MetricRange{Min: 95, Max: 110},
					Vibration:         types.MetricRange{Max: 2.5},
					EnergyConsumption: types.MetricRange{Min: 50, Max: 200},
				}, nil
			},
		},
		alertStore: &alerts.AlertStorageMock{
			GetAlertsFunc: func(ctx context.Context, limit int) ([]types.Alert, error) {
				return []types.Alert{{ID: "f2a1", AssetID: "press-01", Type: "temperature_high", Severity: types.AlertSeverityCritical}}, nil
			},
			GetAlertsByAssetIDFunc: func(ctx context.Context, assetID string) ([]types.Alert, error) {
				return []types.Alert{}, nil
			},
		},
	}

	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	verifier := &auth.TokenVerifierMock{
		VerifyFunc: func(ctx context.Context, credential string) (types.Subject, error) {
			return types.Subject{ID: "operator-1"}, nil
		},
	}

	r := router.New("telemetry-ingest")
	r, err := RegisterHandlers(context.Background(), r,
		ingest.New(deps.readings, deps.alerts, deps.assets, msgCtx),
		alerts.New(deps.alertStore),
		verifier,
	)
	is.NoErr(err)

	return is, httptest.NewServer(r), deps
}

func testRequest(is *is.I, ts *httptest.Server, method, path, authHeader string, body []byte) (*http.Response, []byte) {
	req, _ := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody := new(bytes.Buffer)
	_, err = respBody.ReadFrom(resp.Body)
	is.NoErr(err)

	return resp, respBody.Bytes()
}

func readingJSON(assetID string, temperature float64) string {
	buf, _ := json.Marshal(map[string]any{
		"asset_id":           assetID,
		"temperature":        temperature,
		"pressure":           101.0,
		"vibration":          1.2,
		"energy_consumption": 120.0,
	})
	return string(buf)
}
