package watchdog

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

const AlertTypeTelemetrySilent string = "telemetry_silent"

//go:generate moq -rm -out assetlister_mock.go . AssetLister
type AssetLister interface {
	ListAssets(ctx context.Context) ([]types.Asset, error)
}

//go:generate moq -rm -out readingtimeline_mock.go . ReadingTimeline
type ReadingTimeline interface {
	LatestReadingTime(ctx context.Context, assetID string) (time.Time, error)
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlerts(ctx context.Context, alerts []types.Alert) ([]types.Alert, error)
}

// Watchdog periodically checks for assets that have stopped reporting and
// raises a telemetry_silent alert when one is found.
type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	assets    AssetLister
	readings  ReadingTimeline
	alerts    AlertStorage
	messenger messaging.MsgContext

	interval    time.Duration
	gracePeriod time.Duration

	done chan struct{}
}

func New(assets AssetLister, readings ReadingTimeline, alerts AlertStorage, messenger messaging.MsgContext, interval, gracePeriod time.Duration) Watchdog {
	return &watchdogImpl{
		assets:      assets,
		readings:    readings,
		alerts:      alerts,
		messenger:   messenger,
		interval:    interval,
		gracePeriod: gracePeriod,
		done:        make(chan struct{}),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	close(w.done)
}

func (w *watchdogImpl) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.checkAssets(ctx)
		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// checkAssets raises an alert for each asset whose silence began within the
// last tick, so a silent asset is reported once per silence episode rather
// than on every tick. Assets that have never reported are skipped.
func (w *watchdogImpl) checkAssets(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	assets, err := w.assets.ListAssets(ctx)
	if err != nil {
		log.Error("unable to list assets", "err", err.Error())
		return
	}

	now := time.Now().UTC()

	for _, asset := range assets {
		latest, err := w.readings.LatestReadingTime(ctx, asset.ID)
		if err != nil {
			log.Error("unable to fetch latest reading time", "asset_id", asset.ID, "err", err.Error())
			continue
		}

		if latest.IsZero() {
			continue
		}

		silentFor := now.Sub(latest)
		if silentFor <= w.gracePeriod || silentFor > w.gracePeriod+w.interval {
			continue
		}

		log.Warn("asset has stopped reporting", "asset_id", asset.ID, "silent_for", silentFor.String())

		_, err = w.alerts.AddAlerts(ctx, []types.Alert{
			{
				AssetID:  asset.ID,
				Type:     AlertTypeTelemetrySilent,
				Severity: types.AlertSeverityMedium,
				Message:  fmt.Sprintf("asset %s has not reported telemetry since %s", asset.ID, latest.Format(time.RFC3339)),
				Status:   types.AlertStatusActive,
			},
		})
		if err != nil {
			log.Error("unable to store alert", "asset_id", asset.ID, "err", err.Error())
			continue
		}

		err = w.messenger.PublishOnTopic(ctx, &AssetNotObserved{
			AssetID:    asset.ID,
			ObservedAt: latest,
			Timestamp:  now,
		})
		if err != nil {
			log.Error("unable to publish message", "asset_id", asset.ID, "err", err.Error())
		}
	}
}
