// Package engine orchestrates the analyzers and turns their factors into a verdict.
package engine

import (
	"context"
	"errors"
	"math"
	"phishsniper/internal/brand"
	"phishsniper/internal/intel"
	"phishsniper/internal/lexical"
	"phishsniper/internal/urlparse"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/logger"
	"phishsniper/pkg/metrics"
	"phishsniper/pkg/serrors"
	"phishsniper/pkg/storage"
	"phishsniper/pkg/whois"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxScore = 100

// UnparseableCode identifies the single factor reported for input that is not a URL.
const UnparseableCode = "unparseable_input"

// Deps holds the collaborators of the engine.
type Deps struct {
	// Whois performs registration lookups; nil disables domain intelligence.
	Whois whois.Client
	// Store persists registration records; nil disables persistence.
	Store storage.RegistrationStorage
}

type engine struct {
	cfg      Config
	lexical  *lexical.Analyzer
	brand    *brand.Detector
	resolver *intel.Resolver

	tracer   trace.Tracer
	analyses metric.Int64Counter
	duration metric.Float64Histogram
}

// Ensure engine implements Engine.
var _ Engine = (*engine)(nil)

// New validates cfg and creates an Engine.
func New(deps Deps, cfg Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := metrics.Meter("engine")

	return &engine{
		cfg:      cfg,
		lexical:  lexical.New(cfg.Lexical),
		brand:    brand.New(cfg.Brand),
		resolver: intel.New(intel.Deps{Client: deps.Whois, Store: deps.Store}, cfg.Intel),
		tracer:   metrics.Tracer("engine"),
		analyses: metrics.Counter(m, "engine.analyses", "Completed analyses by risk level"),
		duration: metrics.Latency(m, "engine.analysis_duration", "Time spent analyzing a single URL"),
	}, nil
}

// Analyze scores raw. It never fails: malformed input yields a Low verdict with a single
// unparseable input factor, and missing registration data only removes domain factors.
func (e *engine) Analyze(ctx context.Context, raw string, verbose bool) domain.AnalysisResult {
	ctx, span := e.tracer.Start(ctx, "engine.Analyze")
	defer span.End()
	start := time.Now()

	res := e.analyze(ctx, raw, verbose)

	span.SetAttributes(
		attribute.Float64("risk_score", res.RiskScore),
		attribute.String("risk_level", string(res.RiskLevel)),
		attribute.Int("risk_factors", len(res.RiskFactors)),
	)
	attrs := metric.WithAttributes(attribute.String("level", string(res.RiskLevel)))
	e.analyses.Add(ctx, 1, attrs)
	e.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return res
}

func (e *engine) analyze(ctx context.Context, raw string, verbose bool) domain.AnalysisResult {
	u, err := urlparse.Parse(raw)
	if err != nil {
		if !errors.Is(err, serrors.ErrMalformedURL) {
			logger.Warn(ctx, "unexpected url parse failure", zap.String("url", raw), zap.Error(err))
		}
		trace.SpanFromContext(ctx).SetStatus(codes.Error, "unparseable input")

		return unparseable(raw)
	}

	var (
		lexicalFactors []domain.RiskFactor
		domainFactors  []domain.RiskFactor
		brandFactors   []domain.RiskFactor
		matches        []domain.BrandMatch
		info           domain.DomainInfo
	)

	var g errgroup.Group
	g.Go(func() error {
		info, domainFactors = e.resolver.Resolve(ctx, u)

		return nil
	})
	g.Go(func() error {
		lexicalFactors = e.lexical.Analyze(u)
		matches, brandFactors = e.brand.Detect(u)

		return nil
	})
	_ = g.Wait()

	factors := make([]domain.RiskFactor, 0, len(lexicalFactors)+len(domainFactors)+len(brandFactors))
	factors = append(factors, lexicalFactors...)
	factors = append(factors, domainFactors...)
	factors = append(factors, brandFactors...)

	score := Score(factors)
	res := domain.AnalysisResult{
		URL:         raw,
		RiskScore:   score,
		RiskLevel:   e.cfg.level(score),
		RiskFactors: factors,
	}
	if verbose {
		if matches == nil {
			matches = []domain.BrandMatch{}
		}
		res.Features = &domain.Features{URL: *u, DomainInfo: info, BrandMatches: matches}
	}

	logger.Debug(ctx, "url analyzed",
		zap.String("url", raw),
		zap.Float64("score", res.RiskScore),
		zap.String("level", string(res.RiskLevel)))

	return res
}

// AnalyzeBatch scores urls with at most BatchConcurrency analyses in flight.
// The result at index i belongs to urls[i].
func (e *engine) AnalyzeBatch(ctx context.Context, urls []string, verbose bool) []domain.AnalysisResult {
	results := make([]domain.AnalysisResult, len(urls))

	var g errgroup.Group
	g.SetLimit(e.cfg.BatchConcurrency)
	for i, raw := range urls {
		g.Go(func() error {
			results[i] = e.Analyze(ctx, raw, verbose)

			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Score sums the factor weights, clamps the total to [0, 100] and rounds it to one decimal.
func Score(factors []domain.RiskFactor) float64 {
	var sum float64
	for _, f := range factors {
		sum += f.Weight
	}
	sum = math.Min(math.Max(sum, 0), maxScore)

	return math.Round(sum*10) / 10
}

func unparseable(raw string) domain.AnalysisResult {
	return domain.AnalysisResult{
		URL:       raw,
		RiskScore: 0,
		RiskLevel: domain.RiskLevelLow,
		RiskFactors: []domain.RiskFactor{{
			Code:        UnparseableCode,
			Description: "Unparseable input",
			Weight:      0,
			Category:    domain.CategoryLexical,
		}},
	}
}
