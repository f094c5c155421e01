package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

const defaultReadingLimit = 100

type ReadingRepository interface {
	AddReading(ctx context.Context, reading types.SensorReading) (types.SensorReading, error)
	GetReadings(ctx context.Context, assetID string, limit int) ([]types.SensorReading, error)
	LatestReadingTime(ctx context.Context, assetID string) (time.Time, error)
}

type readingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(connect ConnectorFunc) (ReadingRepository, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&SensorReading{})
	if err != nil {
		return nil, err
	}

	return &readingRepository{db: impl}, nil
}

// AddReading appends a reading. Readings are never updated or deleted.
func (r *readingRepository) AddReading(ctx context.Context, reading types.SensorReading) (types.SensorReading, error) {
	row := SensorReading{
		AssetID:           reading.AssetID,
		Temperature:       reading.Temperature,
		Pressure:          reading.Pressure,
		Vibration:         reading.Vibration,
		EnergyConsumption: reading.EnergyConsumption,
		Timestamp:         reading.Timestamp,
	}

	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return types.SensorReading{}, result.Error
	}

	return row.toModel(), nil
}

func (r *readingRepository) GetReadings(ctx context.Context, assetID string, limit int) ([]types.SensorReading, error) {
	if limit <= 0 {
		limit = defaultReadingLimit
	}

	var rows []SensorReading

	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit)
	if assetID != "" {
		query = query.Where("asset_id = ?", assetID)
	}

	result := query.Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	readings := make([]types.SensorReading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, row.toModel())
	}

	return readings, nil
}

// LatestReadingTime returns the timestamp of the most recent reading for an
// asset, or the zero time if the asset has never reported.
func (r *readingRepository) LatestReadingTime(ctx context.Context, assetID string) (time.Time, error) {
	var row SensorReading

	result := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Order("timestamp DESC").First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, result.Error
	}

	return row.Timestamp, nil
}
