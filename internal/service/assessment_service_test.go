package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"lumipath/internal/catalog"
	"lumipath/internal/domain"
	"lumipath/internal/llm"
	"lumipath/internal/repository"
	"lumipath/internal/scoring"
)

type mockAssessmentRepo struct {
	latest      domain.Assessment
	latestErr   error
	insertErr   error
	insertCount int
	lastInsert  domain.Assessment
	listed      []domain.Assessment
	listErr     error
}

func (m *mockAssessmentRepo) Insert(ctx context.Context, a domain.Assessment) error {
	m.insertCount++
	m.lastInsert = a
	return m.insertErr
}

func (m *mockAssessmentRepo) FindLatestByOwner(ctx context.Context, ownerID string) (domain.Assessment, error) {
	return m.latest, m.latestErr
}

func (m *mockAssessmentRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Assessment, error) {
	return m.listed, m.listErr
}

type mockProfileRepo struct {
	err   error
	calls int
}

func (m *mockProfileRepo) EnsureProfile(ctx context.Context, ownerID string) error {
	m.calls++
	return m.err
}

func tenVerbs() []string {
	verbs := make([]string, 0, 10)
	for _, v := range catalog.Verbs[:10] {
		verbs = append(verbs, v.Label)
	}
	return verbs
}

func newTestService(client llm.Client, assessments repository.AssessmentRepository, profiles repository.ProfileRepository) *AssessmentService {
	cat := catalog.Default()
	return NewAssessmentService(cat, scoring.NewScorer(cat, nil), client, assessments, profiles, zap.NewNop())
}

const validNarrative = `{"summary": "perfil con foco en personas", "recommendedIndustries": [{"industry": "Educación", "matchScore": 90, "reason": "disfrutás enseñar"}], "strengths": ["escucha", "empatía", "claridad"], "weaknesses": ["dispersión"]}`

func TestAnalyzeAnonymousHappyPath(t *testing.T) {
	client := &llm.MockClient{Response: validNarrative}
	svc := newTestService(client, nil, nil)

	resp, err := svc.Analyze(context.Background(), "", AnalyzeRequest{Verbs: tenVerbs()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := resp.Input.CLT.Ratio.Sum(); got != 100 {
		t.Fatalf("expected ratio sum 100, got %d", got)
	}
	if len(resp.Result.Recommended) != 3 {
		t.Fatalf("expected exactly 3 recommendations, got %d", len(resp.Result.Recommended))
	}
	if resp.Result.Recommended[0].Industry != "Educación" {
		t.Fatalf("expected narrator pick first, got %s", resp.Result.Recommended[0].Industry)
	}
	if resp.Result.CLTSummary.TendencyText != "perfil con foco en personas" {
		t.Fatalf("unexpected tendency text: %q", resp.Result.CLTSummary.TendencyText)
	}
	if !strings.Contains(client.LastUser, "Distribución C/L/T") {
		t.Fatalf("expected prompt to carry the computed ratio, got %q", client.LastUser)
	}
}

func TestAnalyzeRejectsVerbCountOutOfRange(t *testing.T) {
	svc := newTestService(&llm.MockClient{Response: validNarrative}, nil, nil)

	_, err := svc.Analyze(context.Background(), "", AnalyzeRequest{Verbs: []string{"uno", "dos"}})
	if !errors.Is(err, ErrVerbCount) {
		t.Fatalf("expected ErrVerbCount for 2 verbs, got %v", err)
	}

	many := make([]string, MaxVerbs+1)
	_, err = svc.Analyze(context.Background(), "", AnalyzeRequest{Verbs: many})
	if !errors.Is(err, ErrVerbCount) {
		t.Fatalf("expected ErrVerbCount for %d verbs, got %v", len(many), err)
	}
}

func TestAnalyzeBackfillsRecommendationsToThree(t *testing.T) {
	// El narrador manda una sola recomendación: el sistema completa hasta 3
	// sin repetir sectores.
	client := &llm.MockClient{Response: `{"summary": "x", "recommendedIndustries": [{"industry": "Educación", "matchScore": 90, "reason": "r"}]}`}
	svc := newTestService(client, nil, nil)

	resp, err := svc.Analyze(context.Background(), "", AnalyzeRequest{Verbs: tenVerbs()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(resp.Result.Recommended) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(resp.Result.Recommended))
	}
	seen := make(map[string]bool)
	for _, r := range resp.Result.Recommended {
		if r.Industry == "" {
			t.Fatalf("expected non-empty industry, got %+v", r)
		}
		if seen[r.Industry] {
			t.Fatalf("duplicate industry %s", r.Industry)
		}
		seen[r.Industry] = true
	}
}

func TestAnalyzeLLMFailureIsNarrativeUnavailable(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("timeout")}
	svc := newTestService(client, nil, nil)

	_, err := svc.Analyze(context.Background(), "", AnalyzeRequest{Verbs: tenVerbs()})
	if !errors.Is(err, ErrNarrativeUnavailable) {
		t.Fatalf("expected ErrNarrativeUnavailable, got %v", err)
	}
}

func TestAnalyzeMalformedNarrativeKeepsRawText(t *testing.T) {
	client := &llm.MockClient{Response: "no pienso responder en JSON"}
	svc := newTestService(client, nil, nil)

	_, err := svc.Analyze(context.Background(), "", AnalyzeRequest{Verbs: tenVerbs()})

	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if malformed.Raw != "no pienso responder en JSON" {
		t.Fatalf("expected raw preserved, got %q", malformed.Raw)
	}
}

func TestAnalyzeBlendsWithPreviousRun(t *testing.T) {
	repo := &mockAssessmentRepo{
		latest: domain.Assessment{ScoreC: 50, ScoreL: 30, ScoreT: 20},
	}
	client := &llm.MockClient{Response: validNarrative}
	svc := newTestService(client, repo, &mockProfileRepo{})

	resp, err := svc.Analyze(context.Background(), "owner-1", AnalyzeRequest{Verbs: tenVerbs()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := resp.Input.CLT.Ratio
	if got.Sum() != 100 {
		t.Fatalf("expected blended sum 100, got %d", got.Sum())
	}
	// Con 10 verbos C el puntaje plano es casi todo C; la mezcla 60/40 con
	// la historia tiene que quedar entre ambos extremos.
	if got.C <= 50 || got.C >= 90 {
		t.Fatalf("expected blended C between history and current, got %+v", got)
	}
	if repo.insertCount != 1 {
		t.Fatalf("expected one persisted run, got %d", repo.insertCount)
	}
}

func TestAnalyzeFirstRunUsesPlainScore(t *testing.T) {
	repo := &mockAssessmentRepo{latestErr: repository.ErrNoAssessments}
	client := &llm.MockClient{Response: validNarrative}
	svc := newTestService(client, repo, &mockProfileRepo{})

	resp, err := svc.Analyze(context.Background(), "owner-1", AnalyzeRequest{Verbs: tenVerbs()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Input.CLT.Ratio.Sum() != 100 {
		t.Fatalf("expected sum 100, got %+v", resp.Input.CLT.Ratio)
	}
}

func TestAnalyzeHistoryReadFailureFailsRequest(t *testing.T) {
	repo := &mockAssessmentRepo{latestErr: errors.New("db down")}
	svc := newTestService(&llm.MockClient{Response: validNarrative}, repo, nil)

	_, err := svc.Analyze(context.Background(), "owner-1", AnalyzeRequest{Verbs: tenVerbs()})
	if err == nil {
		t.Fatalf("expected error when history read fails")
	}
}

func TestAnalyzePersistFailureIsAbsorbed(t *testing.T) {
	repo := &mockAssessmentRepo{
		latestErr: repository.ErrNoAssessments,
		insertErr: errors.New("insert failed"),
	}
	profiles := &mockProfileRepo{err: errors.New("profile failed")}
	svc := newTestService(&llm.MockClient{Response: validNarrative}, repo, profiles)

	resp, err := svc.Analyze(context.Background(), "owner-1", AnalyzeRequest{Verbs: tenVerbs()})
	if err != nil {
		t.Fatalf("expected persistence failure absorbed, got %v", err)
	}
	if resp.Result.CLTSummary.TendencyText == "" {
		t.Fatalf("expected narrative result despite persistence failure")
	}
}

func TestSaveRoundsScoresAndDefaultsSlices(t *testing.T) {
	repo := &mockAssessmentRepo{}
	svc := newTestService(&llm.MockClient{}, repo, &mockProfileRepo{})

	saved, err := svc.Save(context.Background(), "owner-1", SaveRequest{
		IndustryResult: "Educación",
		ScoreC:         54.4,
		ScoreL:         30.6,
		ScoreT:         15.0,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved.ScoreC != 54 || saved.ScoreL != 31 || saved.ScoreT != 15 {
		t.Fatalf("unexpected rounded scores: %+v", saved)
	}
	if saved.Strengths == nil || saved.Weaknesses == nil {
		t.Fatalf("expected empty slices, got %+v", saved)
	}
	if repo.lastInsert.OwnerID != "owner-1" {
		t.Fatalf("expected owner recorded, got %q", repo.lastInsert.OwnerID)
	}
}

func TestHistoryWithoutStoreReturnsEmpty(t *testing.T) {
	svc := newTestService(&llm.MockClient{}, nil, nil)

	items, err := svc.History(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty history, got %d items", len(items))
	}
}

func TestSplitByPerspectiveThirds(t *testing.T) {
	got := splitByPerspective([]string{"a", "b", "c", "d", "e"})

	if len(got.Interpersonal) != 2 || len(got.Thinking) != 2 || len(got.Action) != 1 {
		t.Fatalf("unexpected split: %+v", got)
	}

	empty := splitByPerspective(nil)
	if empty.Interpersonal == nil || empty.Thinking == nil || empty.Action == nil {
		t.Fatalf("expected empty slices, got %+v", empty)
	}
}
