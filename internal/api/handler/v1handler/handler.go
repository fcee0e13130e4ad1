// Package v1handler implements the v1 HTTP API: single and batch URL analysis.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"phishsniper/internal/config"
	"phishsniper/internal/engine"
	"phishsniper/pkg/logger"
	"phishsniper/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxBatchSize is used when Options.MaxBatchSize is not positive.
const DefaultMaxBatchSize = 100

// Deps holds the collaborators of the Handler.
type Deps struct {
	Engine engine.Engine
}

// Options configures request limits.
type Options struct {
	// MaxBatchSize limits the number of URLs accepted by a single batch request.
	MaxBatchSize int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxBatchSize: cfg.HTTP.MaxBatchSize}
}

type Handler struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Handler {
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = DefaultMaxBatchSize
	}

	return &Handler{deps: deps, opts: opts}
}

// Register mounts the v1 routes and the legacy /api/analyze alias on mux, guarded by sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.Handle("POST /v1/analyze", sec.Middleware(http.HandlerFunc(h.Analyze)))
	mux.Handle("POST /v1/batch", sec.Middleware(http.HandlerFunc(h.Batch)))
	mux.Handle("POST /api/analyze", sec.Middleware(http.HandlerFunc(h.Analyze)))
	mux.HandleFunc("GET /healthz", h.Health)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the error as a JSON object.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(r.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(r.Message) })
	})
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	kind    serrors.Kind
	status  int
	message string
}

var errorMappings = []errorMapping{ //nolint: gochecknoglobals
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrMalformedURL, http.StatusBadRequest, "malformed url"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err to a response. Semantic kinds keep their message, anything
// else is logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		msg := m.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			msg = se.Message()
		}

		return &ErrorStatusCode{
			StatusCode: m.status,
			Response:   ErrorResponse{Code: m.kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := newError(ctx, err)

	var e jx.Encoder
	res.Response.Encode(&e)
	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
