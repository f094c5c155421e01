package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/alerts"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/ingest"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/presentation/api/auth"
	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

var tracer = otel.Tracer("telemetry-ingest/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, ingestSvc ingest.IngestService, alertSvc alerts.AlertService, verifier auth.TokenVerifier) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.NewAuthenticator(verifier))

		r.Post("/api/ingest-sensor", NewIngestSensorReadingHandler(log, ingestSvc))
		r.Get("/api/v0/alerts", NewQueryAlertsHandler(log, alertSvc))
		r.Get("/api/v0/readings", NewQueryReadingsHandler(log, ingestSvc))
	})

	return router, nil
}

func NewIngestSensorReadingHandler(log *slog.Logger, svc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "ingest-sensor-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read request body", "err", err.Error())
			problem(w, http.StatusBadRequest, "unable to read request body")
			return
		}

		payload, err := ingest.DecodePayload(body)
		if err != nil {
			writeIngestError(ctx, w, err)
			return
		}

		raised, err := svc.Ingest(ctx, payload)
		if err != nil {
			writeIngestError(ctx, w, err)
			return
		}

		// alerts_raised counts detected threshold violations; alert
		// persistence is best-effort, so it is not a receipt of stored alerts
		response(w, http.StatusOK, map[string]any{
			"message":       "sensor reading ingested",
			"alerts_raised": len(raised),
		})
	}
}

func NewQueryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		assetID := r.URL.Query().Get("asset_id")

		var result []types.Alert

		if assetID != "" {
			result, err = svc.GetByAssetID(ctx, assetID)
		} else {
			result, err = svc.Get(ctx, limitFromQuery(r))
		}

		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			problem(w, http.StatusInternalServerError, "unable to fetch alerts")
			return
		}

		if result == nil {
			result = []types.Alert{}
		}

		response(w, http.StatusOK, result)
	}
}

func NewQueryReadingsHandler(log *slog.Logger, svc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.GetReadings(ctx, r.URL.Query().Get("asset_id"), limitFromQuery(r))
		if err != nil {
			requestLogger.Error("unable to fetch readings", "err", err.Error())
			problem(w, http.StatusInternalServerError, "unable to fetch readings")
			return
		}

		if result == nil {
			result = []types.SensorReading{}
		}

		response(w, http.StatusOK, result)
	}
}

func writeIngestError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logging.GetFromContext(ctx)

	var verr *ingest.ValidationError

	if errors.As(err, &verr) {
		problem(w, http.StatusBadRequest, verr.Error())
		return
	}

	if errors.Is(err, database.ErrAssetNotFound) {
		problem(w, http.StatusNotFound, "asset not found")
		return
	}

	log.Error("unable to ingest reading", "err", err.Error())
	problem(w, http.StatusInternalServerError, "unable to ingest reading")
}

func limitFromQuery(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func response(w http.ResponseWriter, code int, body any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func problem(w http.ResponseWriter, code int, msg string) {
	response(w, code, map[string]string{"error": msg})
}
