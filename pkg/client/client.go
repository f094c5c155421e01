package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

var tracer = otel.Tracer("telemetry-ingest/client")

// TelemetryClient submits sensor readings to a telemetry-ingest instance on
// behalf of a machine or gateway.
type TelemetryClient interface {
	SubmitReading(ctx context.Context, reading types.SensorReading) error
}

type telemetryClient struct {
	baseURL     string
	accessToken string
	httpClient  http.Client
}

func New(serviceURL, accessToken string) TelemetryClient {
	return &telemetryClient{
		baseURL:     strings.TrimSuffix(serviceURL, "/"),
		accessToken: accessToken,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *telemetryClient) SubmitReading(ctx context.Context, reading types.SensorReading) error {
	var err error
	ctx, span := tracer.Start(ctx, "submit-reading")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	body, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ingest-sensor", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit reading: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		err = fmt.Errorf("reading was not accepted: status %d (%s)", resp.StatusCode, strings.TrimSpace(string(respBody)))
		return err
	}

	return nil
}
