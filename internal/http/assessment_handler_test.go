package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumipath/internal/catalog"
	"lumipath/internal/domain"
	"lumipath/internal/llm"
	"lumipath/internal/repository"
	"lumipath/internal/scoring"
	"lumipath/internal/service"
)

type memAssessmentRepo struct {
	items []domain.Assessment
}

func (m *memAssessmentRepo) Insert(_ context.Context, a domain.Assessment) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memAssessmentRepo) FindLatestByOwner(_ context.Context, ownerID string) (domain.Assessment, error) {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].OwnerID == ownerID {
			return m.items[i], nil
		}
	}
	return domain.Assessment{}, repository.ErrNoAssessments
}

func (m *memAssessmentRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for _, a := range m.items {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type noopProfileRepo struct{}

func (noopProfileRepo) EnsureProfile(context.Context, string) error { return nil }

func assessmentTestRouter(repo repository.AssessmentRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	svc := service.NewAssessmentService(cat, scoring.NewScorer(cat, nil), &llm.MockClient{}, repo, noopProfileRepo{}, zap.NewNop())
	h := NewAssessmentHandler(zap.NewNop(), svc)

	r := gin.New()
	r.Use(IdentityMiddleware(testSecret))
	r.POST("/assessments", h.Save)
	r.GET("/assessments", h.List)
	return r
}

func TestSaveSkippedForAnonymousSession(t *testing.T) {
	r := assessmentTestRouter(&memAssessmentRepo{})

	body := bytes.NewBufferString(`{"industry_result": "Educación", "score_c": 54, "score_l": 31, "score_t": 15}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		OK      bool `json:"ok"`
		Skipped bool `json:"skipped"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OK || !resp.Skipped {
		t.Fatalf("expected skipped save, got %+v", resp)
	}
}

func TestSaveAndListForAuthenticatedOwner(t *testing.T) {
	repo := &memAssessmentRepo{}
	r := assessmentTestRouter(repo)
	token := signToken(t, testSecret, "user-9")

	body := bytes.NewBufferString(`{"industry_result": "Educación", "score_c": 54.4, "score_l": 30.6, "score_t": 15}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments", body)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.items) != 1 || repo.items[0].ScoreC != 54 || repo.items[0].ScoreL != 31 {
		t.Fatalf("unexpected stored assessment: %+v", repo.items)
	}

	req = httptest.NewRequest(http.MethodGet, "/assessments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Assessments []domain.Assessment `json:"assessments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Assessments) != 1 || resp.Assessments[0].IndustryResult != "Educación" {
		t.Fatalf("unexpected history: %+v", resp.Assessments)
	}
}

func TestListRequiresAuthentication(t *testing.T) {
	r := assessmentTestRouter(&memAssessmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/assessments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
