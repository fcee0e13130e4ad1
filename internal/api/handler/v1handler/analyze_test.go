package v1handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"phishsniper/internal/api/handler/v1handler"
	mockengine "phishsniper/internal/engine/mock"
	"phishsniper/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMux(t *testing.T, opts v1handler.Options) (*mockengine.MockEngine, *http.ServeMux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mockengine.NewMockEngine(ctrl)

	sec, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Engine: m}, opts).Register(mux, sec)

	return m, mux
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func sampleResult(url string) domain.AnalysisResult {
	return domain.AnalysisResult{
		URL:       url,
		RiskScore: 50,
		RiskLevel: domain.RiskLevelMedium,
		RiskFactors: []domain.RiskFactor{
			{Code: "ip_address", Description: "Host is a raw IP address (192.168.1.1)", Weight: 25, Category: domain.CategoryLexical},
			{Code: "private_ip", Description: "Host is a private or loopback IP address", Weight: 10, Category: domain.CategoryLexical},
			{Code: "suspicious_tokens", Description: "Suspicious keywords in path or query: login", Weight: 10, Category: domain.CategoryLexical},
			{Code: "insecure_scheme", Description: "URL does not use HTTPS", Weight: 5, Category: domain.CategoryLexical},
		},
	}
}

func TestAnalyze(t *testing.T) {
	for _, path := range []string{"/v1/analyze", "/api/analyze"} {
		t.Run(path, func(t *testing.T) {
			m, mux := newMux(t, v1handler.Options{})
			m.EXPECT().Analyze(gomock.Any(), "http://192.168.1.1/login", true).
				Return(sampleResult("http://192.168.1.1/login"))

			rec := do(mux, http.MethodPost, path, `{"url":"http://192.168.1.1/login","verbose":true,"extra":[1,2]}`)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, `{
				"url": "http://192.168.1.1/login",
				"risk_score": 50,
				"risk_level": "Medium",
				"risk_factors": [
					{"code": "ip_address", "description": "Host is a raw IP address (192.168.1.1)", "weight": 25, "category": "Lexical"},
					{"code": "private_ip", "description": "Host is a private or loopback IP address", "weight": 10, "category": "Lexical"},
					{"code": "suspicious_tokens", "description": "Suspicious keywords in path or query: login", "weight": 10, "category": "Lexical"},
					{"code": "insecure_scheme", "description": "URL does not use HTTPS", "weight": 5, "category": "Lexical"}
				]
			}`, rec.Body.String())
		})
	}
}

func TestAnalyze_VerboseDefaultsToFalse(t *testing.T) {
	m, mux := newMux(t, v1handler.Options{})
	m.EXPECT().Analyze(gomock.Any(), "example.com", false).Return(domain.AnalysisResult{
		URL: "example.com", RiskLevel: domain.RiskLevelLow,
	})

	rec := do(mux, http.MethodPost, "/v1/analyze", `{"url":"example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"url":"example.com","risk_score":0,"risk_level":"Low","risk_factors":[]}`, rec.Body.String())
}

func TestAnalyze_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not an object", body: `"http://example.com"`},
		{name: "missing url", body: `{"verbose":true}`},
		{name: "url not a string", body: `{"url":42}`},
		{name: "verbose not a bool", body: `{"url":"example.com","verbose":"yes"}`},
		{name: "trailing data", body: `{"url":"example.com"} {}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, mux := newMux(t, v1handler.Options{})

			rec := do(mux, http.MethodPost, "/v1/analyze", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
		})
	}
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	_, mux := newMux(t, v1handler.Options{})

	rec := do(mux, http.MethodGet, "/v1/analyze", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBatch(t *testing.T) {
	m, mux := newMux(t, v1handler.Options{})
	urls := []string{"http://192.168.1.1/login", "", "https://example.com"}
	m.EXPECT().AnalyzeBatch(gomock.Any(), urls, false).Return([]domain.AnalysisResult{
		sampleResult(urls[0]),
		{URL: "", RiskLevel: domain.RiskLevelLow, RiskFactors: []domain.RiskFactor{
			{Code: "unparseable_input", Description: "Unparseable input", Category: domain.CategoryLexical},
		}},
		{URL: urls[2], RiskLevel: domain.RiskLevelLow},
	})

	rec := do(mux, http.MethodPost, "/v1/batch", `{"urls":["http://192.168.1.1/login","","https://example.com"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, `{"results":[{"url":"http://192.168.1.1/login"`), body)
	require.Less(t, strings.Index(body, `"url":""`), strings.Index(body, `"url":"https://example.com"`))
	require.Contains(t, body, `"code":"unparseable_input"`)
}

func TestBatch_Limits(t *testing.T) {
	_, mux := newMux(t, v1handler.Options{MaxBatchSize: 2})

	cases := []struct {
		name string
		body string
	}{
		{name: "missing urls", body: `{}`},
		{name: "empty urls", body: `{"urls":[]}`},
		{name: "too many urls", body: `{"urls":["a.com","b.com","c.com"]}`},
		{name: "non-string item", body: `{"urls":["a.com",1]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(mux, http.MethodPost, "/v1/batch", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	_, mux := newMux(t, v1handler.Options{})

	body := fmt.Sprintf(`{"url":"%s"}`, strings.Repeat("a", 2<<20))
	rec := do(mux, http.MethodPost, "/v1/analyze", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "too large")
}

func TestHealth(t *testing.T) {
	_, mux := newMux(t, v1handler.Options{})

	rec := do(mux, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
