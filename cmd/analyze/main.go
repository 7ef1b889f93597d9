package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/client"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/csvio"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/infrastructure/config"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/infrastructure/logger"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/report"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/usecase"
)

type cliOptions struct {
	inputPath      string
	outputPath     string
	feedbackColumn string
	chart          bool
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	flag.StringVar(&opts.inputPath, "input", "", "CSV file containing the feedback texts to classify")
	flag.StringVar(&opts.outputPath, "output", "", "CSV file to write the annotated table (default: stdout is skipped)")
	flag.StringVar(&opts.feedbackColumn, "feedback-column", csvio.DefaultFeedbackColumn, "Column holding the feedback text")
	flag.BoolVar(&opts.chart, "chart", true, "Print a per-label count bar chart to stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

func run(opts cliOptions) error {
	if opts.inputPath == "" {
		flag.Usage()
		return fmt.Errorf("--input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	texts, err := csvio.ReadTextsFile(opts.inputPath, opts.feedbackColumn)
	if err != nil {
		return err
	}
	log.Info("Loaded feedback table",
		zap.String("input", opts.inputPath),
		zap.Int("rows", len(texts)),
	)

	modelClient := client.NewModelClient(
		cfg.Classifier.URL,
		time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second,
	)
	classifier := client.NewSentimentClassifier(modelClient)
	analyzeUC := usecase.NewAnalyzeUsecase(classifier)

	start := time.Now()
	table, err := analyzeUC.AnalyzeBatch(context.Background(), texts)
	if err != nil {
		// A single bad row aborts the run; no partial table is written.
		return fmt.Errorf("classification failed: %w", err)
	}
	log.Info("Classified feedback table",
		zap.Int("rows", len(table)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if opts.outputPath != "" {
		if err := csvio.WriteTableFile(opts.outputPath, table); err != nil {
			return err
		}
		log.Info("Wrote annotated table", zap.String("output", opts.outputPath))
	}

	if opts.chart {
		if err := report.Summarize(table).Render(os.Stdout); err != nil {
			return err
		}
	}

	return nil
}
