// Command trainer runs the collect-and-train pipeline from the command line:
// it imports labeled complaints from CSV files, trains a model, saves the
// artifact, and prints the evaluation report.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/complaintiq/classifier/internal/artifact"
	"github.com/complaintiq/classifier/internal/categorizer"
	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/dataset"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/pipeline"
	"github.com/complaintiq/classifier/internal/predictor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trainer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH or config.yml)")
	artifactDir := flag.String("out", "", "artifact output directory (overrides config)")
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("usage: trainer [-config path] [-out dir] data.csv [data2.csv ...]")
	}

	path := *configPath
	if path == "" {
		path = config.GetConfigPath("config.yml")
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if *artifactDir != "" {
		cfg.Model.ArtifactDir = *artifactDir
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: "console",
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	data := dataset.NewLog()
	for _, file := range flag.Args() {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file, err)
		}
		imported, err := dataset.ImportCSV(f, data, "csv_file")
		f.Close()
		if err != nil {
			return fmt.Errorf("importing %s: %w", file, err)
		}
		log.Info("CSV imported", logger.String("file", file), logger.Int("records", imported))
	}

	service := predictor.NewService(predictor.NewStubPredictor(), cfg, log)
	pipe := pipeline.New(
		cfg,
		log,
		data,
		categorizer.NewDefaultCategorizer(),
		categorizer.NewTaxonomyMapper(),
		artifact.NewStore(cfg.Model.ArtifactDir, log),
		service,
	)

	result, err := pipe.Train()
	if err != nil {
		return err
	}

	fmt.Printf("Model saved to %s\n\n", cfg.Model.ArtifactDir)
	fmt.Printf("Train/test split:   %d / %d\n", result.TrainSize, result.TestSize)
	fmt.Printf("Test accuracy:      %.4f\n", result.TestAccuracy)
	fmt.Printf("CV accuracy:        %.4f (+/- %.4f, %d folds)\n", result.CVMean, result.CVStd, result.CVFolds)
	fmt.Printf("Precision (wtd):    %.4f\n", result.PrecisionWeighted)
	fmt.Printf("Recall (wtd):       %.4f\n", result.RecallWeighted)
	fmt.Printf("F1 (wtd):           %.4f\n", result.F1Weighted)
	return nil
}
