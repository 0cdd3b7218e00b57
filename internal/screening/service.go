package screening

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"watchgate/internal/domainintel"
	"watchgate/internal/screening/metrics"
	"watchgate/internal/watchlist"
	audit "watchgate/pkg/platform/audit"
	"watchgate/pkg/requestcontext"
)

// ScreenRequest carries the inputs of one screening run. Country and
// Domain are optional.
type ScreenRequest struct {
	Query   string
	Country string
	Domain  string
}

// SourceResult is the per-watchlist outcome handed to presentation. A
// skipped source carries a warning instead of matches and contributes no
// hit to the assessment.
type SourceResult struct {
	Source  string
	Matches MatchSet
	Skipped bool
	Warning string
}

// ScreenResult is everything produced by one run: per-source match sets,
// the aggregated assessment, and the optional domain report.
type ScreenResult struct {
	RunID      string
	Query      string
	Country    string
	Sources    []SourceResult
	Assessment RiskAssessment
	Domain     *domainintel.Report
	ScreenedAt time.Time
}

// Service orchestrates a screening run: it fans the matcher out over the
// configured watchlist sources, folds the hit flags into the aggregator,
// and emits audit events and metrics along the way. Source failures are
// soft: the failing source is reported as skipped while the others
// proceed, and an assessment is still computed from whatever hit flags
// were determined.
type Service struct {
	matcher    *Matcher
	aggregator *Aggregator
	loaders    []watchlist.Loader
	intel      domainintel.Lookup
	recorder   audit.Recorder
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewService wires the screening orchestrator. intel, recorder, metrics,
// and logger may be nil; the corresponding concern is then disabled.
func NewService(
	matcher *Matcher,
	aggregator *Aggregator,
	loaders []watchlist.Loader,
	intel domainintel.Lookup,
	recorder audit.Recorder,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Service{
		matcher:    matcher,
		aggregator: aggregator,
		loaders:    loaders,
		intel:      intel,
		recorder:   recorder,
		metrics:    m,
		logger:     logger,
		tracer:     otel.Tracer("watchgate/screening"),
	}
}

// Screen runs one screening. Sources are screened in parallel; there is
// no ordering dependency between them, so results are merged by loader
// position to keep output deterministic. The only error returned is a
// cancelled context.
func (s *Service) Screen(ctx context.Context, req ScreenRequest) (*ScreenResult, error) {
	ctx, span := s.tracer.Start(ctx, "screening.Screen")
	defer span.End()
	start := time.Now()

	result := &ScreenResult{
		RunID:      uuid.NewString(),
		Query:      req.Query,
		Country:    req.Country,
		Sources:    make([]SourceResult, len(s.loaders)),
		ScreenedAt: requestcontext.Now(ctx).UTC(),
	}
	queryHash := audit.HashQuery(Normalize(req.Query))

	g, gctx := errgroup.WithContext(ctx)
	for i, loader := range s.loaders {
		i, loader := i, loader
		g.Go(func() error {
			result.Sources[i] = s.screenSource(gctx, loader, req.Query, result.RunID, queryHash)
			return nil
		})
	}

	var domainReport *domainintel.Report
	if req.Domain != "" {
		g.Go(func() error {
			report := s.lookupDomain(gctx, req.Domain)
			domainReport = &report
			return nil
		})
	}

	// Goroutines report soft failures through their results, never as
	// errors, so Wait only surfaces context cancellation.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ofacHit, unHit bool
	for _, src := range result.Sources {
		if !src.Matches.Hit() {
			continue
		}
		s.metrics.IncrementSourceHit(src.Source)
		switch src.Source {
		case watchlist.SourceOFAC:
			ofacHit = true
		case watchlist.SourceUN:
			unHit = true
		}
	}

	result.Assessment = s.aggregator.Assess(ofacHit, unHit, req.Country)
	result.Domain = domainReport

	outcome := "clear"
	if ofacHit || unHit {
		outcome = "hit"
	}
	s.metrics.IncrementRun(outcome)
	s.metrics.ObserveScreenLatency(time.Since(start))

	s.recorder.Record(ctx, audit.Event{
		Action:    audit.ActionScreeningCompleted,
		RunID:     result.RunID,
		QueryHash: queryHash,
		Country:   strings.ToLower(strings.TrimSpace(req.Country)),
		OFACHit:   ofacHit,
		UNHit:     unHit,
		Score:     result.Assessment.Score,
		RequestID: requestcontext.RequestID(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		UserAgent: requestcontext.UserAgent(ctx),
	})

	if s.logger != nil {
		s.logger.InfoContext(ctx, "screening completed",
			"run_id", result.RunID,
			"ofac_hit", ofacHit,
			"un_hit", unHit,
			"score", result.Assessment.Score,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return result, nil
}

func (s *Service) screenSource(ctx context.Context, loader watchlist.Loader, query, runID, queryHash string) SourceResult {
	source := loader.Source()
	ctx, span := s.tracer.Start(ctx, "watchlist.load",
		trace.WithAttributes(attribute.String("source", source)))
	defer span.End()

	start := time.Now()
	names, err := loader.Load(ctx)
	s.metrics.ObserveSourceLatency(source, time.Since(start))

	if err != nil {
		span.RecordError(err)
		s.metrics.IncrementSourceFailure(source)
		if s.logger != nil {
			s.logger.WarnContext(ctx, "watchlist source failed, skipping",
				"source", source,
				"run_id", runID,
				"error", err,
			)
		}
		s.recorder.Record(ctx, audit.Event{
			Action:    audit.ActionSourceFailed,
			RunID:     runID,
			QueryHash: queryHash,
			Source:    source,
			Reason:    err.Error(),
		})
		return SourceResult{
			Source:  source,
			Matches: MatchSet{},
			Skipped: true,
			Warning: source + " check failed: " + err.Error(),
		}
	}

	return SourceResult{
		Source:  source,
		Matches: s.matcher.Match(query, names),
	}
}

func (s *Service) lookupDomain(ctx context.Context, domain string) domainintel.Report {
	if s.intel == nil {
		return domainintel.Unavailable(domain)
	}
	ctx, span := s.tracer.Start(ctx, "domainintel.Check",
		trace.WithAttributes(attribute.String("domain", domain)))
	defer span.End()
	return s.intel.Check(ctx, domain)
}
