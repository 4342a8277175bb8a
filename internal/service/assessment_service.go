package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumipath/internal/catalog"
	"lumipath/internal/domain"
	"lumipath/internal/llm"
	"lumipath/internal/matching"
	"lumipath/internal/repository"
	"lumipath/internal/scoring"
)

// Límites de verbos seleccionados por diagnóstico.
const (
	MinVerbs = 10
	MaxVerbs = 100
)

// recommendedCount es la cantidad exacta de sectores que devuelve el resultado.
const recommendedCount = 3

var (
	// ErrVerbCount indica una selección fuera del rango permitido.
	ErrVerbCount = errors.New("verb selection out of range")
	// ErrNarrativeUnavailable indica que el servicio narrador no respondió bien.
	ErrNarrativeUnavailable = errors.New("narrative service unavailable")
)

// AnalyzeRequest es el payload de entrada de un diagnóstico.
type AnalyzeRequest struct {
	Verbs           []string                `json:"verbs"`
	Skills          []string                `json:"skills"`
	Interests       []string                `json:"interests"`
	ExperienceText  string                  `json:"experienceText"`
	FollowupAnswers []domain.FollowupAnswer `json:"followupAnswers"`
}

// AnalyzeInput es el eco de la entrada más lo calculado por el sistema.
type AnalyzeInput struct {
	AnalyzeRequest
	CLT                   domain.CLTScore        `json:"clt"`
	RecommendedIndustries []domain.IndustryMatch `json:"recommendedIndustries"`
	RecommendedJobs       []domain.JobMatch      `json:"recommendedJobs"`
}

// AnalyzeResponse es la respuesta completa hacia la capa de presentación.
type AnalyzeResponse struct {
	Input  AnalyzeInput          `json:"input"`
	Result domain.AnalysisResult `json:"result"`
}

// AssessmentService orquesta una sesión de diagnóstico completa:
// scoring determinista, matching, narrativa externa y persistencia best-effort.
type AssessmentService struct {
	catalog     *catalog.Catalog
	scorer      *scoring.Scorer
	llmClient   llm.Client
	parser      NarrativeParser
	assessments repository.AssessmentRepository
	profiles    repository.ProfileRepository
	logger      *zap.Logger
}

// NewAssessmentService arma el servicio con sus dependencias.
// Los repositorios pueden ser nil: en ese caso no hay historia ni guardado.
func NewAssessmentService(
	cat *catalog.Catalog,
	scorer *scoring.Scorer,
	llmClient llm.Client,
	assessments repository.AssessmentRepository,
	profiles repository.ProfileRepository,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		catalog:     cat,
		scorer:      scorer,
		llmClient:   llmClient,
		parser:      NarrativeParser{},
		assessments: assessments,
		profiles:    profiles,
		logger:      logger,
	}
}

// Analyze ejecuta el diagnóstico. ownerID vacío significa sesión anónima:
// sin lectura de historia y sin guardado.
func (s *AssessmentService) Analyze(ctx context.Context, ownerID string, req AnalyzeRequest) (AnalyzeResponse, error) {
	if len(req.Verbs) < MinVerbs || len(req.Verbs) > MaxVerbs {
		return AnalyzeResponse{}, fmt.Errorf("%w: got %d, want [%d, %d]", ErrVerbCount, len(req.Verbs), MinVerbs, MaxVerbs)
	}

	score := s.scorer.Score(req.Verbs)
	finalRatio := score.Ratio

	// Diagnóstico incremental: si hay una corrida previa del dueño, la nueva
	// observación (con bono de experiencia) se mezcla 40/60 con la historia.
	if ownerID != "" && s.assessments != nil {
		prev, err := s.assessments.FindLatestByOwner(ctx, ownerID)
		switch {
		case err == nil:
			bonus := scoring.ExperienceBonus(req.ExperienceText)
			current := scoring.ApplyBonus(score.Ratio, bonus)
			finalRatio = scoring.Blend(prev.Ratio(), current)
		case errors.Is(err, repository.ErrNoAssessments):
			// Primera corrida: se usa el puntaje plano.
		default:
			return AnalyzeResponse{}, fmt.Errorf("read previous assessment: %w", err)
		}
	}

	score.Ratio = finalRatio
	score.Top = finalRatio.Top()

	recommended := s.recommendIndustries(finalRatio)
	recommendedJobs := matching.RankJobs(finalRatio, s.catalog.Jobs(), recommendedCount)

	userPrompt := BuildUserPrompt(score, req.Verbs, req.Skills, req.Interests, req.ExperienceText, req.FollowupAnswers, recommended, recommendedJobs)
	raw, err := s.llmClient.GenerateJSON(ctx, SystemPromptJSON, userPrompt)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("%w: %v", ErrNarrativeUnavailable, err)
	}

	parsed, err := s.parser.Parse(raw)
	if err != nil {
		return AnalyzeResponse{}, err
	}

	result := s.transform(parsed, score, recommended)

	// Guardado best-effort: una falla se loguea y no voltea la respuesta,
	// la narrativa sigue siendo útil aunque la historia no se persista.
	if ownerID != "" {
		s.persist(ctx, ownerID, finalRatio, result, parsed)
	}

	return AnalyzeResponse{
		Input: AnalyzeInput{
			AnalyzeRequest:        req,
			CLT:                   score,
			RecommendedIndustries: recommended,
			RecommendedJobs:       recommendedJobs,
		},
		Result: result,
	}, nil
}

// recommendIndustries garantiza exactamente 3 candidatos del sistema,
// rellenando desde un pool más amplio y deduplicando por nombre.
func (s *AssessmentService) recommendIndustries(ratio domain.Ratio) []domain.IndustryMatch {
	base := matching.RankIndustries(ratio, s.catalog.Industries(), recommendedCount)
	if len(base) >= recommendedCount {
		return base[:recommendedCount]
	}

	seen := make(map[string]bool, len(base))
	for _, r := range base {
		seen[r.Industry] = true
	}
	for _, r := range matching.RankIndustries(ratio, s.catalog.Industries(), 15) {
		if len(base) >= recommendedCount {
			break
		}
		if seen[r.Industry] {
			continue
		}
		seen[r.Industry] = true
		base = append(base, r)
	}
	return base
}

// transform pasa la respuesta del narrador a la forma que consume la UI,
// completando con los candidatos del sistema donde el narrador quedó corto.
func (s *AssessmentService) transform(parsed domain.NarrativeResponse, score domain.CLTScore, systemRecs []domain.IndustryMatch) domain.AnalysisResult {
	ratio := score.Ratio
	if parsed.CLTRatio != nil {
		ratio = *parsed.CLTRatio
	}

	recommended := make([]domain.RecommendedIndustry, 0, recommendedCount)
	seen := make(map[string]bool)
	for _, r := range parsed.RecommendedIndustries {
		if len(recommended) >= recommendedCount {
			break
		}
		if r.Industry == "" || seen[r.Industry] {
			continue
		}
		seen[r.Industry] = true
		recommended = append(recommended, r)
	}
	for _, r := range systemRecs {
		if len(recommended) >= recommendedCount {
			break
		}
		if seen[r.Industry] {
			continue
		}
		seen[r.Industry] = true
		recommended = append(recommended, domain.RecommendedIndustry{
			Name:       r.Industry,
			Industry:   r.Industry,
			MatchScore: r.MatchScore,
			Reason:     fmt.Sprintf("%s Es un sector con alta afinidad con tu balance C/L/T.", r.Description),
		})
	}

	return domain.AnalysisResult{
		CLTSummary: domain.CLTSummary{
			Ratio:         ratio,
			TendencyText:  parsed.Summary,
			EvidenceVerbs: []string{},
		},
		Recommended: recommended,
		Skills: domain.SkillBreakdown{
			Universal:             []string{},
			Differentiators:       []string{},
			CertificationExamples: []string{},
		},
		StrengthsWeaknesses: domain.StrengthsWeaknesses{
			Strengths:  splitByPerspective(parsed.Strengths),
			Weaknesses: splitByPerspective(parsed.Weaknesses),
			Tips:       []string{},
		},
		ExperienceInsights: parsed.ExperienceInsights,
		MismatchIndustries: parsed.MismatchIndustries,
		ActionTips:         parsed.ActionTips,
	}
}

// splitByPerspective reparte una lista plana en las tres miradas del modelo
// (interpersonal, pensamiento, acción) en tercios consecutivos.
func splitByPerspective(items []string) domain.AxisTraits {
	traits := domain.AxisTraits{
		Interpersonal: []string{},
		Thinking:      []string{},
		Action:        []string{},
	}
	if len(items) == 0 {
		return traits
	}

	third := (len(items) + 2) / 3
	bound := func(i int) int {
		if i > len(items) {
			return len(items)
		}
		return i
	}
	traits.Interpersonal = items[:bound(third)]
	traits.Thinking = items[bound(third):bound(third*2)]
	traits.Action = items[bound(third*2):]
	return traits
}

func (s *AssessmentService) persist(ctx context.Context, ownerID string, ratio domain.Ratio, result domain.AnalysisResult, parsed domain.NarrativeResponse) {
	if s.assessments == nil {
		return
	}

	if s.profiles != nil {
		if err := s.profiles.EnsureProfile(ctx, ownerID); err != nil {
			s.logger.Warn("profile upsert failed", zap.Error(err), zap.String("owner_id", ownerID))
		}
	}

	industryResult := ""
	if len(result.Recommended) > 0 {
		industryResult = result.Recommended[0].Industry
	}

	assessment := domain.Assessment{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		IndustryResult: industryResult,
		ScoreC:         ratio.C,
		ScoreL:         ratio.L,
		ScoreT:         ratio.T,
		Strengths:      parsed.Strengths,
		Weaknesses:     parsed.Weaknesses,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.assessments.Insert(ctx, assessment); err != nil {
		s.logger.Warn("assessment insert failed", zap.Error(err), zap.String("owner_id", ownerID))
	}
}

// History devuelve las corridas del dueño, la más reciente primero.
func (s *AssessmentService) History(ctx context.Context, ownerID string) ([]domain.Assessment, error) {
	if s.assessments == nil {
		return []domain.Assessment{}, nil
	}
	return s.assessments.ListByOwner(ctx, ownerID)
}

// SaveRequest es el payload del guardado explícito de un resultado.
type SaveRequest struct {
	IndustryResult string   `json:"industry_result"`
	ScoreC         float64  `json:"score_c"`
	ScoreL         float64  `json:"score_l"`
	ScoreT         float64  `json:"score_t"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
}

// Save persiste un resultado ya calculado, redondeando los puntajes a entero.
func (s *AssessmentService) Save(ctx context.Context, ownerID string, req SaveRequest) (domain.Assessment, error) {
	if s.assessments == nil {
		return domain.Assessment{}, errors.New("assessment store not configured")
	}

	if s.profiles != nil {
		if err := s.profiles.EnsureProfile(ctx, ownerID); err != nil {
			// El perfil es secundario: se loguea y se sigue con el insert.
			s.logger.Warn("profile upsert failed", zap.Error(err), zap.String("owner_id", ownerID))
		}
	}

	round := func(v float64) int {
		if v < 0 {
			return int(v - 0.5)
		}
		return int(v + 0.5)
	}

	strengths := req.Strengths
	if strengths == nil {
		strengths = []string{}
	}
	weaknesses := req.Weaknesses
	if weaknesses == nil {
		weaknesses = []string{}
	}

	assessment := domain.Assessment{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		IndustryResult: req.IndustryResult,
		ScoreC:         round(req.ScoreC),
		ScoreL:         round(req.ScoreL),
		ScoreT:         round(req.ScoreT),
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.assessments.Insert(ctx, assessment); err != nil {
		return domain.Assessment{}, fmt.Errorf("insert assessment: %w", err)
	}
	return assessment, nil
}
