package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

// Seed loads assets and their operating envelopes from a semicolon separated
// file. Assets that already exist are left untouched.
func (r *assetRepository) Seed(ctx context.Context, reader io.Reader) error {
	cr := csv.NewReader(reader)
	cr.Comma = ';'

	rows, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv data: %w", err)
	}

	assets, err := assetsFromRows(rows)
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)
	log.Info("loaded assets from file", "count", len(assets))

	for _, asset := range assets {
		_, err := r.GetAssetByID(ctx, asset.ID)
		if errors.Is(err, ErrAssetNotFound) {
			err := r.Save(ctx, asset)
			if err != nil {
				log.Error("could not seed asset", "asset_id", asset.ID, "err", err.Error())
			}
		} else if err != nil {
			log.Error("unable to check if asset exists", "asset_id", asset.ID, "err", err.Error())
		}
	}

	return nil
}

func assetsFromRows(rows [][]string) ([]types.Asset, error) {
	assets := make([]types.Asset, 0, len(rows))

	for idx, row := range rows {
		if idx == 0 {
			// skip the csv header
			continue
		}

		if len(row) < 10 {
			return nil, fmt.Errorf("too few columns on line %d in assets file", idx+1)
		}

		bounds := make([]float64, 0, 8)
		for col := 2; col < 10; col++ {
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse threshold for asset %s on line %d: %s", row[0], idx+1, err.Error())
			}
			bounds = append(bounds, v)
		}

		assets = append(assets, types.Asset{
			ID:                row[0],
			Name:              row[1],
			Temperature:       types.MetricRange{Min: bounds[0], Max: bounds[1]},
			Pressure:          types.MetricRange{Min: bounds[2], Max: bounds[3]},
			Vibration:         types.MetricRange{Min: bounds[4], Max: bounds[5]},
			EnergyConsumption: types.MetricRange{Min: bounds[6], Max: bounds[7]},
		})
	}

	return assets, nil
}
