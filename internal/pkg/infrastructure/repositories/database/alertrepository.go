package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

const defaultAlertLimit = 100

type AlertRepository interface {
	AddAlerts(ctx context.Context, alerts []types.Alert) ([]types.Alert, error)
	GetAlerts(ctx context.Context, limit int) ([]types.Alert, error)
	GetAlertsByAssetID(ctx context.Context, assetID string) ([]types.Alert, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(connect ConnectorFunc) (AlertRepository, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Alert{})
	if err != nil {
		return nil, err
	}

	return &alertRepository{db: impl}, nil
}

// AddAlerts persists a batch of alert drafts, assigning ids and creation
// times. The batch is inserted in a single statement.
func (r *alertRepository) AddAlerts(ctx context.Context, alerts []types.Alert) ([]types.Alert, error) {
	if len(alerts) == 0 {
		return []types.Alert{}, nil
	}

	now := time.Now().UTC()

	rows := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, Alert{
			ID:        uuid.NewString(),
			AssetID:   a.AssetID,
			Type:      a.Type,
			Severity:  a.Severity,
			Message:   a.Message,
			Status:    a.Status,
			CreatedAt: now,
		})
	}

	result := r.db.WithContext(ctx).Create(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	stored := make([]types.Alert, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, row.toModel())
	}

	return stored, nil
}

func (r *alertRepository) GetAlerts(ctx context.Context, limit int) ([]types.Alert, error) {
	if limit <= 0 {
		limit = defaultAlertLimit
	}

	var rows []Alert

	result := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return alertsToModel(rows), nil
}

func (r *alertRepository) GetAlertsByAssetID(ctx context.Context, assetID string) ([]types.Alert, error) {
	var rows []Alert

	result := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Order("created_at DESC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return alertsToModel(rows), nil
}

func alertsToModel(rows []Alert) []types.Alert {
	alerts := make([]types.Alert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, row.toModel())
	}
	return alerts
}
