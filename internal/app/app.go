package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-analyzer/internal/aggregators"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/ingestors"
	"log-analyzer/internal/renderers"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/stores"
	"log-analyzer/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	logDirectoryTailer ingestors.LogDirectoryTailer
	batchScheduler     streams.BatchScheduler
	cycleDriver        *aggregators.CycleDriver

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-analyzer").
		Logger()

	// Initialize blob store (checkpoints + rendered output)
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize the aggregation engine
	checkpointStore := stores.NewCheckpointStore(fileStorage)
	cumulativeTracker, err := aggregators.NewCumulativeTracker(checkpointStore, config.Aggregation.CheckpointEveryCycles)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cumulative tracker: %w", err)
	}
	cumulativeTracker.Restore(appLogger.WithContext(context.Background()))

	windowTracker, err := aggregators.NewWindowTracker(config.Aggregation.WindowLength(), config.Aggregation.SlideInterval())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize window tracker: %w", err)
	}

	snapshotStore := stores.NewSnapshotStore()
	htmlRenderer, err := renderers.NewHTMLRenderer(fileStorage, config.Renderer.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	cycleDriver := aggregators.NewCycleDriver(cumulativeTracker, windowTracker, config.Aggregation.TopN, snapshotStore, htmlRenderer)

	// Initialize ingestion: directory tailer feeding the record queue
	recordQueue := streams.NewRecordQueue()
	accessLogParser := ingestors.NewAccessLogParser()
	tailerLogger := appLogger.With().Str(loggers.FieldComponent, "tailer").Logger()
	logDirectoryTailer := ingestors.NewLogDirectoryTailer(config.Ingestion.LogsDir, accessLogParser, recordQueue, tailerLogger)

	// Initialize the batch scheduler driving one cycle per slide interval
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	batchScheduler := streams.NewBatchScheduler(recordQueue, cycleDriver, config.Aggregation.SlideInterval(), schedulerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(snapshotStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:             config,
		appLogger:          appLogger,
		server:             server,
		logDirectoryTailer: logDirectoryTailer,
		batchScheduler:     batchScheduler,
		cycleDriver:        cycleDriver,
	}, nil
}

// Start starts the pipeline and the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-analyzer service on port %d (log_level=%s, logs_dir=%s, window=%ds, slide=%ds)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Ingestion.LogsDir,
			app.config.Aggregation.WindowLengthSeconds,
			app.config.Aggregation.SlideIntervalSeconds)

	// start background pipeline: tailer -> queue -> scheduler -> engine
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	if err := app.logDirectoryTailer.Start(app.backgroundCtx); err != nil {
		app.backgroundCancel()
		return fmt.Errorf("failed to start log directory tailer: %w", err)
	}
	app.batchScheduler.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application: stop serving reads, stop
// ingesting, stop the cycle loop, then flush a final checkpoint.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop ingesting new records, then stop the cycle loop
	app.logDirectoryTailer.Stop()
	app.batchScheduler.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Pipeline stopped")

	// 3) Flush the final checkpoint so restart resumes at the last cycle
	if err := app.cycleDriver.Close(app.appLogger.WithContext(ctx)); err != nil {
		return fmt.Errorf("final checkpoint flush failed: %w", err)
	}
	app.appLogger.Info().Msg("Checkpoint flushed")

	return nil
}
