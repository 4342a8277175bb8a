package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lumipath/internal/llm"
)

// followupQuestionCount es la cantidad de preguntas de profundización.
const followupQuestionCount = 5

// ErrEmptyExperience indica que no hay texto de experiencia para profundizar.
var ErrEmptyExperience = errors.New("experience text is empty")

// FollowupService genera preguntas de profundización sobre una experiencia.
type FollowupService struct {
	llmClient llm.Client
}

func NewFollowupService(llmClient llm.Client) *FollowupService {
	return &FollowupService{llmClient: llmClient}
}

// GenerateQuestions pide al LLM cinco preguntas cortas y concretas.
// Tolera tres formas de salida: arreglo JSON, objeto con clave "questions",
// y texto plano con líneas que terminan en signo de pregunta.
func (s *FollowupService) GenerateQuestions(ctx context.Context, experienceText string, selectedVerbs []string) ([]string, error) {
	if strings.TrimSpace(experienceText) == "" {
		return nil, ErrEmptyExperience
	}

	prompt := BuildFollowupPrompt(experienceText, selectedVerbs)
	raw, err := s.llmClient.GenerateJSON(ctx, followupSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNarrativeUnavailable, err)
	}

	questions := parseQuestions(raw)
	if len(questions) == 0 {
		return nil, &MalformedResponseError{Raw: raw}
	}
	return questions, nil
}

func parseQuestions(raw string) []string {
	cleaned := cleanLLMJSONResponse(raw)

	var asArray []string
	if err := json.Unmarshal([]byte(cleaned), &asArray); err == nil {
		return capQuestions(asArray)
	}

	var asObject struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &asObject); err == nil && len(asObject.Questions) > 0 {
		return capQuestions(asObject.Questions)
	}

	// Último recurso: líneas del texto que parecen preguntas.
	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "?") || strings.Contains(line, "?\"") {
			lines = append(lines, strings.Trim(line, `",`))
		}
	}
	return capQuestions(lines)
}

func capQuestions(questions []string) []string {
	out := questions[:0:len(questions)]
	for _, q := range questions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		out = append(out, q)
		if len(out) == followupQuestionCount {
			break
		}
	}
	return out
}
