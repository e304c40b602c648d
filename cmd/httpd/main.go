// Command httpd runs the complaint classifier HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/complaintiq/classifier/internal/api"
	"github.com/complaintiq/classifier/internal/artifact"
	"github.com/complaintiq/classifier/internal/categorizer"
	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/dataset"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/pipeline"
	"github.com/complaintiq/classifier/internal/predictor"
	"github.com/complaintiq/classifier/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "classifier: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrDefault(config.GetConfigPath("config.yml"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting complaint classifier",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
	)

	provider := telemetry.NewProvider()
	service := predictor.NewService(predictor.NewStubPredictor(), cfg, log)
	store := artifact.NewStore(cfg.Model.ArtifactDir, log)
	pipe := pipeline.New(
		cfg,
		log,
		dataset.NewLog(),
		categorizer.NewDefaultCategorizer(),
		categorizer.NewTaxonomyMapper(),
		store,
		service,
	)

	// Restore the saved model when one exists; stub mode otherwise.
	if _, err := pipe.LoadSaved(); err != nil {
		if domain.IsMissingArtifact(err) {
			log.Warn("No saved model found, serving stub predictions until trained",
				logger.String("artifact_dir", cfg.Model.ArtifactDir),
			)
		} else {
			return fmt.Errorf("loading saved model: %w", err)
		}
	}
	provider.SetModelTrained(service.Trained())

	handler := api.NewHandler(cfg, service, pipe, provider, log)
	server := api.NewServer(cfg, handler, provider, log)
	return server.Run()
}
