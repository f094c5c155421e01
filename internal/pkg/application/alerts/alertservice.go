package alerts

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

var tracer = otel.Tracer("telemetry-ingest/alerts")

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	GetAlerts(ctx context.Context, limit int) ([]types.Alert, error)
	GetAlertsByAssetID(ctx context.Context, assetID string) ([]types.Alert, error)
}

// AlertService serves the dashboard boundary with read access to raised
// alerts. Status transitions are owned by the maintenance subsystem and are
// not exposed here.
type AlertService interface {
	Get(ctx context.Context, limit int) ([]types.Alert, error)
	GetByAssetID(ctx context.Context, assetID string) ([]types.Alert, error)
}

type alertSvc struct {
	storage AlertStorage
}

func New(storage AlertStorage) AlertService {
	return &alertSvc{
		storage: storage,
	}
}

func (svc *alertSvc) Get(ctx context.Context, limit int) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	alerts, err := svc.storage.GetAlerts(ctx, limit)
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

func (svc *alertSvc) GetByAssetID(ctx context.Context, assetID string) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alerts-by-asset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	alerts, err := svc.storage.GetAlertsByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return alerts, nil
}
