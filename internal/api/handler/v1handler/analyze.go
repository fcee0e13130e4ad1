package v1handler

import (
	"io"
	"net/http"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/serrors"

	"github.com/go-faster/jx"
)

// maxBodyBytes bounds request bodies; a full batch of long URLs fits comfortably.
const maxBodyBytes = 1 << 20

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(body) > maxBodyBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "request body too large")
	}

	return body, nil
}

// Analyze handles POST /v1/analyze and POST /api/analyze.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	var req AnalyzeRequest
	if err := decodeBody(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res := h.deps.Engine.Analyze(ctx, req.URL, req.Verbose)

	var e jx.Encoder
	res.Encode(&e)
	writeJSON(w, http.StatusOK, e.Bytes())
}

// Batch handles POST /v1/batch. Results are returned in request order.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	var req BatchRequest
	if err := decodeBody(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	switch {
	case len(req.URLs) == 0:
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "urls must not be empty"))

		return
	case len(req.URLs) > h.opts.MaxBatchSize:
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest,
			"too many urls: %d, at most %d are allowed", len(req.URLs), h.opts.MaxBatchSize))

		return
	}

	results := h.deps.Engine.AnalyzeBatch(ctx, req.URLs, req.Verbose)

	var e jx.Encoder
	encodeBatch(&e, results)
	writeJSON(w, http.StatusOK, e.Bytes())
}

func encodeBatch(e *jx.Encoder, results []domain.AnalysisResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("results", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, res := range results {
					res.Encode(e)
				}
			})
		})
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []byte(`{"status":"ok"}`))
}
