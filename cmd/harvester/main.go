package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haluvia/leadharvest/internal/collector"
	"github.com/haluvia/leadharvest/internal/config"
	"github.com/haluvia/leadharvest/internal/export"
	"github.com/haluvia/leadharvest/internal/metrics"
	"github.com/haluvia/leadharvest/internal/places"
	"github.com/haluvia/leadharvest/internal/storage"
	"github.com/haluvia/leadharvest/internal/version"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Configure logging
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logrus.Infof("Lead Harvest v%s starting...", version.Version)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logrus.Infof("Configuration loaded: output=%s, max_results=%d, site_inclusion=%t",
		cfg.OutputFile, cfg.MaxResultsPerSearch, cfg.SiteInclusion)

	// Initialize checkpoint storage
	store, err := storage.NewStorage(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	logrus.Infof("Database initialized: %s", cfg.DBPath)

	// Initialize metrics tracker
	tracker := metrics.NewTracker()

	// Wire up the harvest pipeline
	client := places.NewClient(cfg.APIKey, cfg.RequestTimeout)
	pacer := collector.NewPacer(cfg.PaginationDelay, cfg.DetailDelay, cfg.SearchDelay, nil)
	driver := collector.NewDriver(client, pacer, cfg.MaxResultsPerSearch, tracker.AddPages)
	agg := collector.NewAggregator(client, pacer, cfg.SiteInclusion, store, tracker.IncrementDetailFailures)

	// Resume from checkpoint: earlier accepted rows keep their place in the
	// output and their keys block re-acceptance
	previous, placeIDs, err := store.LoadBusinesses()
	if err != nil {
		logrus.Fatalf("Failed to load checkpoint: %v", err)
	}
	if len(previous) > 0 {
		logrus.Infof("Resuming: %d businesses already checkpointed", len(previous))
		agg.Seed(previous, placeIDs)
	}

	tasks := collector.BuildMatrix()
	logrus.Infof("Task matrix: %d industries x %d cities = %d searches",
		len(collector.Industries), len(collector.Cities), len(tasks))

	bar := progressbar.NewOptions(len(tasks),
		progressbar.OptionSetDescription("harvesting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)

	onOutcome := func(outcome collector.Outcome) {
		tracker.IncrementCandidatesSeen()
		switch outcome {
		case collector.Accepted:
			tracker.IncrementAccepted()
		case collector.RejectedDuplicate:
			tracker.IncrementDuplicatesSkipped()
		case collector.RejectedNoWebsite:
			tracker.IncrementRejectedNoWebsite()
		case collector.RejectedNoName:
			tracker.IncrementRejectedNoName()
		}
	}

	runner := collector.NewRunner(tasks, driver, agg, pacer, bar, onOutcome, tracker.IncrementTasksCompleted)

	// Setup signal handler for graceful shutdown. Cancelling the context
	// stops pagination; Stop ends the run after the current candidate.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logrus.Warnf("Received signal: %v - finishing current candidate before exit", sig)
		runner.Stop()
		cancel()
	}()

	// Start progress logger
	stopProgress := make(chan struct{})
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				logrus.Info(tracker.LogProgress())
			case <-stopProgress:
				return
			}
		}
	}()

	runErr := runner.Run(ctx)
	close(stopProgress)

	terminationReason := "completed"
	if runErr != nil {
		terminationReason = "interrupted"
	}

	// Serialize the result set; a failed write is fatal
	records := agg.Results()
	if err := export.WriteCSV(cfg.OutputFile, records); err != nil {
		if merr := tracker.WriteToFile(cfg.MetricsPath, "csv_write_failed"); merr != nil {
			logrus.Errorf("Failed to write metrics: %v", merr)
		}
		logrus.Fatalf("Failed to write CSV: %v", err)
	}
	logrus.Infof("Wrote %d rows to %s", len(records), cfg.OutputFile)

	logrus.Info("Final stats: " + tracker.LogProgress())
	if err := tracker.WriteToFile(cfg.MetricsPath, terminationReason); err != nil {
		logrus.Errorf("Failed to write metrics: %v", err)
	} else {
		logrus.Infof("Metrics written to %s", cfg.MetricsPath)
	}

	if runErr != nil {
		os.Exit(1)
	}
}
