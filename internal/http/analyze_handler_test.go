package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumipath/internal/catalog"
	"lumipath/internal/llm"
	"lumipath/internal/scoring"
	"lumipath/internal/service"
)

var errFake = errors.New("llm down")

type stubLimiter struct {
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(key string) bool {
	s.keys = append(s.keys, key)
	return s.allow
}

func analyzeTestRouter(client llm.Client, limiter service.AnalyzeRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	svc := service.NewAssessmentService(cat, scoring.NewScorer(cat, nil), client, nil, nil, zap.NewNop())
	h := NewAnalyzeHandler(zap.NewNop(), svc, limiter)

	r := gin.New()
	r.Use(IdentityMiddleware(testSecret))
	r.POST("/analyze", h.Analyze)
	return r
}

func analyzeBody(t *testing.T, verbs []string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{"verbs": verbs})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewBuffer(body)
}

func catalogVerbs(n int) []string {
	verbs := make([]string, 0, n)
	for _, v := range catalog.Verbs[:n] {
		verbs = append(verbs, v.Label)
	}
	return verbs
}

const analyzeNarrative = `{"summary": "tendencia comunicadora", "recommendedIndustries": [{"industry": "Educación", "matchScore": 91, "reason": "r"}], "strengths": ["a", "b", "c"], "weaknesses": ["d"]}`

func TestAnalyzeEndpointHappyPath(t *testing.T) {
	r := analyzeTestRouter(&llm.MockClient{Response: analyzeNarrative}, nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(t, catalogVerbs(12)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp service.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Result.Recommended) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(resp.Result.Recommended))
	}
	if resp.Input.CLT.Ratio.Sum() != 100 {
		t.Fatalf("expected ratio sum 100, got %+v", resp.Input.CLT.Ratio)
	}
}

func TestAnalyzeEndpointRejectsTooFewVerbs(t *testing.T) {
	r := analyzeTestRouter(&llm.MockClient{Response: analyzeNarrative}, nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(t, []string{"uno"}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeEndpointRateLimited(t *testing.T) {
	limiter := &stubLimiter{allow: false}
	r := analyzeTestRouter(&llm.MockClient{Response: analyzeNarrative}, limiter)

	req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(t, catalogVerbs(12)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if len(limiter.keys) != 1 {
		t.Fatalf("expected limiter consulted once, got %d", len(limiter.keys))
	}
}

func TestAnalyzeEndpointUsesOwnerAsRateLimitKey(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	r := analyzeTestRouter(&llm.MockClient{Response: analyzeNarrative}, limiter)

	req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(t, catalogVerbs(12)))
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-7"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "user-7" {
		t.Fatalf("expected owner id as limiter key, got %v", limiter.keys)
	}
}

func TestAnalyzeEndpointNarrativeUnavailable(t *testing.T) {
	r := analyzeTestRouter(&llm.MockClient{Err: errFake}, nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(t, catalogVerbs(12)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestAnalyzeEndpointMalformedNarrativeExposesRaw(t *testing.T) {
	r := analyzeTestRouter(&llm.MockClient{Response: "texto sin JSON"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(t, catalogVerbs(12)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var body struct {
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Raw != "texto sin JSON" {
		t.Fatalf("expected raw narrative in response, got %q", body.Raw)
	}
}
