package engine

import (
	"context"
	"phishsniper/pkg/domain"
)

// Engine produces risk verdicts for URLs. Implementations never fail: malformed input and
// unavailable registration data are reflected in the verdict instead.
//
//go:generate mockgen -package mockengine -source=interface.go -destination=mock/mockengine.go *
type Engine interface {
	// Analyze scores a single URL. Features are attached when verbose is set.
	Analyze(ctx context.Context, raw string, verbose bool) domain.AnalysisResult
	// AnalyzeBatch scores urls concurrently and returns the verdicts in input order.
	AnalyzeBatch(ctx context.Context, urls []string, verbose bool) []domain.AnalysisResult
}
