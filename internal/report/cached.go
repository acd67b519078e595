package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deskpulse/deskpulse/internal/cache"
	"github.com/deskpulse/deskpulse/internal/domain"
	"github.com/deskpulse/deskpulse/internal/instrumentation"
)

const (
	kindBasic = "basic"
	kindFull  = "full"
)

// CachedEngine wraps an Engine with a TTL report cache. Cache failures
// are logged and the report is computed anyway.
type CachedEngine struct {
	engine *Engine
	store  cache.Store
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachedEngine returns a caching wrapper around engine.
func NewCachedEngine(engine *Engine, store cache.Store, ttl time.Duration, logger *logrus.Logger) *CachedEngine {
	return &CachedEngine{
		engine: engine,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Basic returns the cached basic report for the request parameters,
// computing and storing it on a miss.
func (c *CachedEngine) Basic(ctx context.Context, tickets []domain.TicketRecord, calls []domain.CallRecord, groups []domain.Group, opts Options) (BasicReport, error) {
	var report BasicReport
	key := cache.Key(kindBasic, opts.StartDate, opts.EndDate, opts.GroupID, opts.AgentID)

	if c.lookup(ctx, kindBasic, key, &report) {
		return report, nil
	}

	start := time.Now()
	report = c.engine.Basic(tickets, calls, groups, opts)
	instrumentation.ComputeDuration.WithLabelValues(kindBasic).Observe(time.Since(start).Seconds())
	instrumentation.ReportsGenerated.WithLabelValues(kindBasic).Inc()

	c.save(ctx, kindBasic, key, report)
	return report, nil
}

// Full returns the cached full report for the request parameters,
// computing and storing it on a miss.
func (c *CachedEngine) Full(ctx context.Context, tickets []domain.TicketRecord, calls []domain.CallRecord, groups []domain.Group, opts Options) (FullReport, error) {
	var report FullReport
	key := cache.Key(kindFull, opts.StartDate, opts.EndDate, opts.GroupID, opts.AgentID)

	if c.lookup(ctx, kindFull, key, &report) {
		return report, nil
	}

	start := time.Now()
	report = c.engine.Full(tickets, calls, groups, opts)
	instrumentation.ComputeDuration.WithLabelValues(kindFull).Observe(time.Since(start).Seconds())
	instrumentation.ReportsGenerated.WithLabelValues(kindFull).Inc()

	c.save(ctx, kindFull, key, report)
	return report, nil
}

func (c *CachedEngine) lookup(ctx context.Context, kind, key string, out interface{}) bool {
	payload, err := c.store.Get(ctx, key)
	if err != nil {
		if err != cache.ErrNotFound {
			instrumentation.CacheErrors.Inc()
			c.logger.WithError(err).WithField("key", key).Warn("Report cache lookup failed")
		}
		instrumentation.CacheMisses.WithLabelValues(kind).Inc()
		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		instrumentation.CacheErrors.Inc()
		c.logger.WithError(err).WithField("key", key).Warn("Discarding malformed cached report")
		instrumentation.CacheMisses.WithLabelValues(kind).Inc()
		return false
	}

	instrumentation.CacheHits.WithLabelValues(kind).Inc()
	c.logger.WithFields(logrus.Fields{
		"kind": kind,
		"key":  key,
	}).Debug("Report served from cache")
	return true
}

func (c *CachedEngine) save(ctx context.Context, kind, key string, report interface{}) {
	payload, err := json.Marshal(report)
	if err != nil {
		instrumentation.CacheErrors.Inc()
		c.logger.WithError(err).WithField("key", key).Warn("Failed to serialize report for cache")
		return
	}
	if err := c.store.Set(ctx, key, payload, c.ttl); err != nil {
		instrumentation.CacheErrors.Inc()
		c.logger.WithError(err).WithField("key", key).Warn("Failed to cache report")
		return
	}
	c.logger.WithFields(logrus.Fields{
		"kind": kind,
		"key":  key,
		"ttl":  c.ttl,
	}).Debug("Report cached")
}
