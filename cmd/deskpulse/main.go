package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/deskpulse/deskpulse/internal/cache"
	"github.com/deskpulse/deskpulse/internal/config"
	"github.com/deskpulse/deskpulse/internal/domain"
	"github.com/deskpulse/deskpulse/internal/instrumentation"
	"github.com/deskpulse/deskpulse/internal/report"
	"github.com/deskpulse/deskpulse/internal/workforce"
)

// Build information, set via -ldflags at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		ticketsPath = flag.String("tickets", "", "Path to the tickets JSON file")
		callsPath   = flag.String("calls", "", "Path to the calls JSON file")
		groupsPath  = flag.String("groups", "", "Path to the groups JSON file")
		startDate   = flag.String("start", "", "Report window start date (YYYY-MM-DD)")
		endDate     = flag.String("end", "", "Report window end date (YYYY-MM-DD)")
		kind        = flag.String("report", "basic", "Report kind: basic or full")
		budget      = flag.Float64("budget", 0, "Total support budget for cost-per-ticket")
		callsPerHr  = flag.Float64("calls-per-hour", 0, "Peak-hour call volume for Erlang-C staffing")
		ahtSeconds  = flag.Float64("aht", 0, "Average handle time in seconds for Erlang-C staffing")
		output      = flag.String("output", "", "Write the report to this file instead of stdout")
		showVersion = flag.Bool("version", false, "Print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("deskpulse %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return
	}

	// Load .env file if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"version": Version,
		"env":     cfg.Engine.Environment,
	}).Info("deskpulse starting")

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(instrumentation.Registry, promhttp.HandlerOpts{}))
			logger.WithField("addr", cfg.Metrics.Addr).Info("Metrics server listening")
			if err := http.ListenAndServe(cfg.Metrics.Addr, nil); err != nil {
				logger.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	if *ticketsPath == "" || *startDate == "" || *endDate == "" {
		fmt.Fprintln(os.Stderr, "Usage: deskpulse -tickets tickets.json -start YYYY-MM-DD -end YYYY-MM-DD [-calls calls.json] [-groups groups.json] [-report basic|full]")
		os.Exit(2)
	}

	var tickets []domain.TicketRecord
	if err := readJSONFile(*ticketsPath, &tickets); err != nil {
		logger.WithError(err).WithField("path", *ticketsPath).Fatal("Failed to load tickets")
	}

	var calls []domain.CallRecord
	if *callsPath != "" {
		if err := readJSONFile(*callsPath, &calls); err != nil {
			logger.WithError(err).WithField("path", *callsPath).Fatal("Failed to load calls")
		}
	}

	var groups []domain.Group
	if *groupsPath != "" {
		if err := readJSONFile(*groupsPath, &groups); err != nil {
			logger.WithError(err).WithField("path", *groupsPath).Fatal("Failed to load groups")
		}
	}

	logger.WithFields(logrus.Fields{
		"tickets": len(tickets),
		"calls":   len(calls),
		"groups":  len(groups),
		"kind":    *kind,
	}).Info("Input data loaded")

	opts := report.Options{
		StartDate: *startDate,
		EndDate:   *endDate,
		Budget:    *budget,
	}
	if opts.Budget == 0 {
		opts.Budget = cfg.Engine.Budget
	}
	if *callsPerHr > 0 && *ahtSeconds > 0 {
		opts.Workforce = &workforce.ErlangParams{
			CallsPerHour:        *callsPerHr,
			AvgHandleTimeSec:    *ahtSeconds,
			TargetServiceLevel:  cfg.Engine.DefaultServiceLevel,
			TargetAnswerTimeSec: float64(cfg.Engine.DefaultAnswerTimeSec),
			Shrinkage:           0.22,
		}
	}

	engine := report.NewEngineWithTopGroups(cfg.Engine.TopEscalationGroups)
	cached := report.NewCachedEngine(engine, newStore(cfg.Cache, logger), cfg.Cache.TTL, logger)
	ctx := context.Background()

	var payload interface{}
	switch *kind {
	case "basic":
		result, err := cached.Basic(ctx, tickets, calls, groups, opts)
		if err != nil {
			logger.WithError(err).Fatal("Failed to generate basic report")
		}
		payload = result
	case "full":
		result, err := cached.Full(ctx, tickets, calls, groups, opts)
		if err != nil {
			logger.WithError(err).Fatal("Failed to generate full report")
		}
		payload = result
	default:
		logger.WithField("kind", *kind).Fatal("Unknown report kind")
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.WithError(err).Fatal("Failed to encode report")
	}

	if *output != "" {
		if err := os.WriteFile(*output, append(encoded, '\n'), 0o644); err != nil {
			logger.WithError(err).WithField("path", *output).Fatal("Failed to write report")
		}
		logger.WithField("path", *output).Info("Report written")
		return
	}
	fmt.Println(string(encoded))
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func newStore(cfg config.CacheConfig, logger *logrus.Logger) cache.Store {
	if !cfg.Enabled {
		return cache.NewNoopStore()
	}
	if cfg.Backend == "redis" {
		store, err := cache.NewRedisStore(cfg.RedisURL, logger)
		if err != nil {
			logger.WithError(err).Warn("Falling back to in-memory report cache")
			return cache.NewMemoryStore()
		}
		return store
	}
	return cache.NewMemoryStore()
}

func readJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
