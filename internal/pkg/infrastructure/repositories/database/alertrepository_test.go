package database

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

func TestAddAlertsAssignsIDsAndCreationTimes(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	stored, err := r.AddAlerts(ctx, []types.Alert{
		createAlertDraft("press-01", "temperature_high", types.AlertSeverityCritical),
		createAlertDraft("press-01", "pressure_high", types.AlertSeverityMedium),
	})
	is.NoErr(err)
	is.Equal(2, len(stored))
	is.True(stored[0].ID != "")
	is.True(stored[0].ID != stored[1].ID)
	is.True(!stored[0].CreatedAt.IsZero())
	is.Equal(types.AlertStatusActive, stored[0].Status)
}

func TestThatAnEmptyBatchIsANoOp(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	stored, err := r.AddAlerts(ctx, []types.Alert{})
	is.NoErr(err)
	is.Equal(0, len(stored))
}

func TestGetAlertsByAssetID(t *testing.T) {
	is, ctx, r := testSetupAlertRepository(t)

	_, err := r.AddAlerts(ctx, []types.Alert{
		createAlertDraft("press-01", "temperature_high", types.AlertSeverityMedium),
		createAlertDraft("cnc-07", "vibration_high", types.AlertSeverityCritical),
	})
	is.NoErr(err)

	alerts, err := r.GetAlertsByAssetID(ctx, "cnc-07")
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal("vibration_high", alerts[0].Type)

	all, err := r.GetAlerts(ctx, 0)
	is.NoErr(err)
	is.Equal(2, len(all))
}

func testSetupAlertRepository(t *testing.T) (*is.I, context.Context, AlertRepository) {
	is := is.New(t)
	ctx := context.Background()

	r, err := NewAlertRepository(NewSQLiteConnector(ctx))
	is.NoErr(err)

	return is, ctx, r
}

func createAlertDraft(assetID, alertType, severity string) types.Alert {
	return types.Alert{
		AssetID:  assetID,
		Type:     alertType,
		Severity: severity,
		Message:  alertType + " on " + assetID,
		Status:   types.AlertStatusActive,
	}
}
