package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

var tracer = otel.Tracer("telemetry-ingest/ingest")

// externalCallTimeout bounds each call to the asset directory and the stores.
const externalCallTimeout = 10 * time.Second

//go:generate moq -rm -out readingstorage_mock.go . ReadingStorage
type ReadingStorage interface {
	AddReading(ctx context.Context, reading types.SensorReading) (types.SensorReading, error)
	GetReadings(ctx context.Context, assetID string, limit int) ([]types.SensorReading, error)
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlerts(ctx context.Context, alerts []types.Alert) ([]types.Alert, error)
}

//go:generate moq -rm -out assetdirectory_mock.go . AssetDirectory
type AssetDirectory interface {
	GetAssetByID(ctx context.Context, assetID string) (types.Asset, error)
}

//go:generate moq -rm -out ingestservice_mock.go . IngestService
type IngestService interface {
	Ingest(ctx context.Context, payload ReadingPayload) ([]types.Alert, error)
	GetReadings(ctx context.Context, assetID string, limit int) ([]types.SensorReading, error)
}

type service struct {
	readings  ReadingStorage
	alerts    AlertStorage
	assets    AssetDirectory
	messenger messaging.MsgContext
}

func New(readings ReadingStorage, alerts AlertStorage, assets AssetDirectory, messenger messaging.MsgContext) IngestService {
	return &service{
		readings:  readings,
		alerts:    alerts,
		assets:    assets,
		messenger: messenger,
	}
}

// Ingest validates a submitted reading, persists it and raises any threshold
// alerts against the owning asset's envelope. The reading write is the one
// side effect that must succeed; alert persistence and event publishing are
// best-effort and never fail the call.
func (s *service) Ingest(ctx context.Context, payload ReadingPayload) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "ingest-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	reading, err := Validate(payload)
	if err != nil {
		return nil, err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	asset, err := s.assets.GetAssetByID(lookupCtx, reading.AssetID)
	if err != nil {
		err = fmt.Errorf("unable to resolve asset %s: %w", reading.AssetID, err)
		return nil, err
	}

	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}

	writeCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	storedReading, err := s.readings.AddReading(writeCtx, reading)
	if err != nil {
		err = fmt.Errorf("unable to store reading for asset %s: %w", reading.AssetID, err)
		return nil, err
	}
	reading = storedReading

	s.publish(ctx, &ReadingStored{Reading: reading, Timestamp: time.Now().UTC()})

	alerts := EvaluateThresholds(reading, asset)
	if len(alerts) == 0 {
		return alerts, nil
	}

	alertCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	stored, alertErr := s.alerts.AddAlerts(alertCtx, alerts)
	if alertErr != nil {
		// the reading is already durable, which is the contract with the
		// submitter; a degraded alert write is an operational concern only
		log.Error("unable to store alerts", "asset_id", reading.AssetID, "count", len(alerts), "err", alertErr.Error())
		return alerts, nil
	}

	for _, a := range stored {
		s.publish(ctx, &AlertCreated{Alert: a, Timestamp: a.CreatedAt})
	}

	return stored, nil
}

func (s *service) GetReadings(ctx context.Context, assetID string, limit int) ([]types.SensorReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-readings")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	readings, err := s.readings.GetReadings(ctx, assetID, limit)
	if err != nil {
		return nil, err
	}

	return readings, nil
}

func (s *service) publish(ctx context.Context, msg messaging.TopicMessage) {
	log := logging.GetFromContext(ctx)

	err := s.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		log.Error("unable to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}
