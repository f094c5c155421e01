package database

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

var ErrAssetNotFound = fmt.Errorf("asset not found")
var ErrAssetAlreadyExists = fmt.Errorf("asset already exists")

type AssetRepository interface {
	GetAssetByID(ctx context.Context, assetID string) (types.Asset, error)
	ListAssets(ctx context.Context) ([]types.Asset, error)
	Save(ctx context.Context, asset types.Asset) error
	Seed(ctx context.Context, reader io.Reader) error
}

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(connect ConnectorFunc) (AssetRepository, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Asset{})
	if err != nil {
		return nil, err
	}

	return &assetRepository{db: impl}, nil
}

func (r *assetRepository) GetAssetByID(ctx context.Context, assetID string) (types.Asset, error) {
	var asset Asset

	result := r.db.WithContext(ctx).First(&asset, "id = ?", assetID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return types.Asset{}, ErrAssetNotFound
		}
		return types.Asset{}, result.Error
	}

	return asset.toModel(), nil
}

func (r *assetRepository) ListAssets(ctx context.Context) ([]types.Asset, error) {
	var assets []Asset

	result := r.db.WithContext(ctx).Order("id").Find(&assets)
	if result.Error != nil {
		return nil, result.Error
	}

	list := make([]types.Asset, 0, len(assets))
	for _, a := range assets {
		list = append(list, a.toModel())
	}

	return list, nil
}

func (r *assetRepository) Save(ctx context.Context, asset types.Asset) error {
	if asset.ID == "" {
		return fmt.Errorf("no id is set on asset")
	}

	result := r.db.WithContext(ctx).Save(assetFromModel(asset))

	return result.Error
}
