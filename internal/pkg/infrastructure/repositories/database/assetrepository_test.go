package database

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

func TestThatAnUnknownAssetReturnsNotFound(t *testing.T) {
	is, ctx, r := testSetupAssetRepository(t)

	_, err := r.GetAssetByID(ctx, "nosuchasset")
	is.True(errors.Is(err, ErrAssetNotFound))
}

func TestSaveAndGetAsset(t *testing.T) {
	is, ctx, r := testSetupAssetRepository(t)

	err := r.Save(ctx, createAsset("press-01"))
	is.NoErr(err)

	asset, err := r.GetAssetByID(ctx, "press-01")
	is.NoErr(err)
	is.Equal("press-01", asset.ID)
	is.Equal(85.0, asset.Temperature.Max)
	is.Equal(0.0, asset.Vibration.Min)
}

func TestListAssets(t *testing.T) {
	is, ctx, r := testSetupAssetRepository(t)

	is.NoErr(r.Save(ctx, createAsset("press-02")))
	is.NoErr(r.Save(ctx, createAsset("press-01")))

	assets, err := r.ListAssets(ctx)
	is.NoErr(err)
	is.Equal(2, len(assets))
	is.Equal("press-01", assets[0].ID)
}

func TestSeedFromCSV(t *testing.T) {
	is, ctx, r := testSetupAssetRepository(t)

	err := r.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	asset, err := r.GetAssetByID(ctx, "press-01")
	is.NoErr(err)
	is.Equal("hydraulic press", asset.Name)
	is.Equal(types.MetricRange{Min: 20, Max: 85}, asset.Temperature)
	is.Equal(types.MetricRange{Min: 50, Max: 200}, asset.EnergyConsumption)

	_, err = r.GetAssetByID(ctx, "cnc-07")
	is.NoErr(err)
}

func TestThatSeedDoesNotOverwriteExistingAssets(t *testing.T) {
	is, ctx, r := testSetupAssetRepository(t)

	existing := createAsset("press-01")
	existing.Name = "configured elsewhere"
	is.NoErr(r.Save(ctx, existing))

	err := r.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	asset, err := r.GetAssetByID(ctx, "press-01")
	is.NoErr(err)
	is.Equal("configured elsewhere", asset.Name)
}

func TestThatSeedRejectsMalformedThresholds(t *testing.T) {
	is, ctx, r := testSetupAssetRepository(t)

	err := r.Seed(ctx, bytes.NewBufferString("id;name;tempMin;tempMax;pressureMin;pressureMax;vibrationMin;vibrationMax;energyMin;energyMax\npress-01;p;a;85;95;110;0;2.5;50;200\n"))
	is.True(err != nil)
}

func testSetupAssetRepository(t *testing.T) (*is.I, context.Context, AssetRepository) {
	is := is.New(t)
	ctx := context.Background()

	r, err := NewAssetRepository(NewSQLiteConnector(ctx))
	is.NoErr(err)

	return is, ctx, r
}

func createAsset(id string) types.Asset {
	return types.Asset{
		ID:                id,
		Name:              "asset " + id,
		Temperature:       types.MetricRange{Min: 20, Max: 85},
		Pressure:          types.MetricRange{Min: 95, Max: 110},
		Vibration:         types.MetricRange{Min: 0, Max: 2.5},
		EnergyConsumption: types.MetricRange{Min: 50, Max: 200},
	}
}

const csvMock string = `id;name;tempMin;tempMax;pressureMin;pressureMax;vibrationMin;vibrationMax;energyMin;energyMax
press-01;hydraulic press;20;85;95;110;0;2.5;50;200
cnc-07;cnc mill;15;70;90;105;0;1.8;30;150
`
