package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"gopkg.in/yaml.v2"

	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/alerts"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/ingest"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/application/watchdog"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/infrastructure/identity"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/infrastructure/router"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/presentation/api"
	"github.com/plantpulse/telemetry-ingest/internal/pkg/presentation/api/auth"
)

const serviceName string = "telemetry-ingest"

type appConfig struct {
	Watchdog struct {
		Interval    time.Duration `yaml:"interval"`
		GracePeriod time.Duration `yaml:"gracePeriod"`
	} `yaml:"watchdog"`
}

func defaultAppConfig() *appConfig {
	cfg := &appConfig{}
	cfg.Watchdog.Interval = 1 * time.Minute
	cfg.Watchdog.GracePeriod = 15 * time.Minute
	return cfg
}

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	assetsFileName := flag.String("assets", "/opt/plantpulse/config/assets.csv", "A file of assets and their operating envelopes to seed")
	configFileName := flag.String("config", "/opt/plantpulse/config/config.yaml", "A configuration file for the service")
	flag.Parse()

	cfg := defaultAppConfig()
	if configFile, err := os.Open(*configFileName); err == nil {
		cfg, err = parseConfigFile(configFile)
		configFile.Close()
		exitIf(err, logger, "could not parse configuration file")
	} else {
		logger.Info("no configuration file found, using defaults", "file", *configFileName)
	}

	connect := database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv(ctx))

	assetRepository, err := database.NewAssetRepository(connect)
	exitIf(err, logger, "could not connect asset repository to database")

	readingRepository, err := database.NewReadingRepository(connect)
	exitIf(err, logger, "could not connect reading repository to database")

	alertRepository, err := database.NewAlertRepository(connect)
	exitIf(err, logger, "could not connect alert repository to database")

	if assetsFile, err := os.Open(*assetsFileName); err == nil {
		err = assetRepository.Seed(ctx, assetsFile)
		assetsFile.Close()
		exitIf(err, logger, "could not seed assets from file")
	} else {
		logger.Info("no assets file found, skipping seed", "file", *assetsFileName)
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	messenger.Start()
	defer messenger.Close()

	ingestSvc := ingest.New(readingRepository, alertRepository, assetRepository, messenger)
	alertSvc := alerts.New(alertRepository)

	wd := watchdog.New(assetRepository, readingRepository, alertRepository, messenger, cfg.Watchdog.Interval, cfg.Watchdog.GracePeriod)
	wd.Start(ctx)
	defer wd.Stop(ctx)

	r := router.New(serviceName)
	r, err = api.RegisterHandlers(ctx, r, ingestSvc, alertSvc, newTokenVerifier(ctx))
	exitIf(err, logger, "failed to register handlers")

	servicePort := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")

	webServer := &http.Server{Addr: ":" + servicePort, Handler: r}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting to listen for incoming connections", "port", servicePort)

		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		exitIf(err, logger, "web server failed")
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	exitIf(err, logger, "failed to shut down web server")
}

// newTokenVerifier selects the identity service verifier when IDENTITY_URL is
// set, and falls back to local verification of HS256 signed tokens otherwise.
func newTokenVerifier(ctx context.Context) auth.TokenVerifier {
	identityURL := env.GetVariableOrDefault(ctx, "IDENTITY_URL", "")
	if identityURL != "" {
		return identity.NewTokenVerifier(identityURL)
	}

	return auth.NewJWTVerifier([]byte(env.GetVariableOrDefault(ctx, "TOKEN_SECRET", "")))
}

func parseConfigFile(f io.Reader) (*appConfig, error) {
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	cfg := defaultAppConfig()

	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}

	return cfg, nil
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		os.Exit(1)
	}
}
