// Package ingest coordinates one ingestion run: every catalog descriptor is
// dispatched to its adapter through a bounded worker pool, a collector
// merges the per-source results into one candidate sequence, and the whole
// sequence is handed to the store as a single batch.
package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonesrussell/gridironwire/internal/archive"
	"github.com/jonesrussell/gridironwire/internal/canonical"
	"github.com/jonesrussell/gridironwire/internal/catalog"
	"github.com/jonesrussell/gridironwire/internal/domain"
	"github.com/jonesrussell/gridironwire/internal/feed"
	"github.com/jonesrussell/gridironwire/internal/logger"
	"github.com/jonesrussell/gridironwire/internal/store"
)

// DefaultWorkers is the global fetch concurrency when none is configured.
// Per-host concurrency is always capped at one in-flight request.
const DefaultWorkers = 16

// FeedAdapter turns a feed source into candidates.
type FeedAdapter interface {
	Fetch(ctx context.Context, src feed.Source) ([]domain.Article, error)
}

// ArchiveAdapter turns an HTML listing source into candidates.
type ArchiveAdapter interface {
	Fetch(ctx context.Context, src archive.Source) ([]domain.Article, error)
}

// Storer is the persistence boundary; the store package implements it.
type Storer interface {
	UpsertBatch(ctx context.Context, articles []domain.Article) (store.UpsertResult, error)
}

// Config tunes one run.
type Config struct {
	// Workers bounds global fetch concurrency. Zero means DefaultWorkers.
	Workers int
	// RunTimeout bounds the whole run; no new fetches start after it.
	// Zero means no deadline.
	RunTimeout time.Duration
}

// Stats summarizes a completed run.
type Stats struct {
	Sources    int
	Failed     int
	Candidates int
	Stored     int
	Skipped    int
}

// Orchestrator runs the ingestion pipeline.
type Orchestrator struct {
	feeds    FeedAdapter
	archives ArchiveAdapter
	store    Storer
	log      logger.Interface
	cfg      Config

	hostMu    sync.Mutex
	hostLocks map[string]*sync.Mutex
}

// New creates an orchestrator over the given adapters and store.
func New(feeds FeedAdapter, archives ArchiveAdapter, storer Storer, log logger.Interface, cfg Config) *Orchestrator {
	return &Orchestrator{
		feeds:     feeds,
		archives:  archives,
		store:     storer,
		log:       log,
		cfg:       cfg,
		hostLocks: make(map[string]*sync.Mutex),
	}
}

// sourceResult is one source's outcome, consumed by the collector.
type sourceResult struct {
	endpoint   string
	candidates []domain.Article
	err        error
}

// Run dispatches every descriptor, collects all candidates, and applies
// them to the store in one transaction. Source-level failures are logged
// and isolated; only a store failure is returned as an error. When no
// source yields any candidate the store is left untouched. The run
// deadline bounds fetching only: a run that times out still persists
// whatever it collected.
func (o *Orchestrator) Run(ctx context.Context, descriptors []catalog.Descriptor) (Stats, error) {
	fetchCtx := ctx
	if o.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, o.cfg.RunTimeout)
		defer cancel()
	}

	workers := o.cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	stats := Stats{Sources: len(descriptors)}

	sem := make(chan struct{}, workers)
	results := make(chan sourceResult, len(descriptors))

	var wg sync.WaitGroup

	for i := range descriptors {
		descriptor := descriptors[i]

		wg.Add(1)

		go func() {
			defer wg.Done()

			// Wait for the host lock before claiming a pool slot, so a
			// queue of same-host sources never ties up the whole pool.
			lock := o.hostLock(descriptor.Endpoint)
			lock.Lock()
			defer lock.Unlock()

			select {
			case sem <- struct{}{}:
			case <-fetchCtx.Done():
				results <- sourceResult{endpoint: descriptor.Endpoint, err: fetchCtx.Err()}
				return
			}
			defer func() { <-sem }()

			candidates, err := o.dispatch(fetchCtx, descriptor)
			results <- sourceResult{
				endpoint:   descriptor.Endpoint,
				candidates: candidates,
				err:        err,
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single collector: serialize every per-source batch into one ordered
	// sequence before the one store transaction.
	var all []domain.Article

	for result := range results {
		if result.err != nil {
			stats.Failed++
			o.log.Warn("source failed",
				"endpoint", result.endpoint,
				"error", result.err.Error(),
			)

			continue
		}

		o.log.Info("source ingested",
			"endpoint", result.endpoint,
			"candidates", len(result.candidates),
		)

		all = append(all, result.candidates...)
	}

	stats.Candidates = len(all)

	if len(all) == 0 {
		o.log.Warn("no candidates across catalog, store untouched",
			"sources", stats.Sources,
			"failed", stats.Failed,
		)

		return stats, nil
	}

	upserted, err := o.store.UpsertBatch(ctx, all)
	if err != nil {
		return stats, fmt.Errorf("ingest store batch: %w", err)
	}

	stats.Stored = upserted.Stored
	stats.Skipped = upserted.Skipped

	o.log.Info("run complete",
		"sources", stats.Sources,
		"failed", stats.Failed,
		"candidates", stats.Candidates,
		"stored", stats.Stored,
		"skipped", stats.Skipped,
	)

	return stats, nil
}

// dispatch routes one descriptor to its adapter. Callers hold the
// endpoint's host lock, so at most one request is in flight per remote
// host.
func (o *Orchestrator) dispatch(ctx context.Context, descriptor catalog.Descriptor) ([]domain.Article, error) {
	switch descriptor.Kind {
	case catalog.KindFeed:
		return o.feeds.Fetch(ctx, feed.Source{
			Endpoint: descriptor.Endpoint,
			Origin:   descriptor.Origin,
			Labels:   descriptor.Labels,
		})
	case catalog.KindArchive:
		return o.archives.Fetch(ctx, archive.Source{
			Endpoint:     descriptor.Endpoint,
			Origin:       descriptor.Origin,
			LinkSelector: descriptor.LinkSelector,
			Labels:       descriptor.Labels,
			Allow:        descriptor.Allow,
			Deny:         descriptor.Deny,
		})
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownKind, descriptor.Kind)
	}
}

// hostLock returns the mutex serializing requests to the endpoint's host.
// Endpoints whose host cannot be parsed share a single fallback lock.
func (o *Orchestrator) hostLock(endpoint string) *sync.Mutex {
	host, err := canonical.Host(endpoint)
	if err != nil {
		host = ""
	}

	o.hostMu.Lock()
	defer o.hostMu.Unlock()

	lock, ok := o.hostLocks[host]
	if !ok {
		lock = &sync.Mutex{}
		o.hostLocks[host] = lock
	}

	return lock
}
