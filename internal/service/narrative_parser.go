package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"lumipath/internal/domain"
)

// MalformedResponseError distingue una respuesta ilegible del narrador de una
// falla de transporte. Conserva el texto crudo para diagnóstico: nunca se
// degrada en silencio a un resultado vacío.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("narrative response is not valid JSON (%d bytes)", len(e.Raw))
}

// NarrativeParser centraliza la limpieza y el parseo defensivo de la
// respuesta del LLM narrador.
type NarrativeParser struct{}

// Parse intenta extraer y deserializar el objeto JSON de la respuesta.
// Toda ausencia de campo queda en su zero value; las listas nil se
// materializan vacías para que la capa de presentación no vea nulls.
func (NarrativeParser) Parse(raw string) (domain.NarrativeResponse, error) {
	cleaned := cleanLLMJSONResponse(raw)

	candidates := []string{
		extractFirstJSONObject(cleaned),
		extractFirstJSONObject(raw),
		sliceOuterJSON(cleaned),
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		var resp domain.NarrativeResponse
		if err := json.Unmarshal([]byte(candidate), &resp); err != nil {
			continue
		}
		applyDefaults(&resp)
		return resp, nil
	}

	return domain.NarrativeResponse{}, &MalformedResponseError{Raw: raw}
}

func applyDefaults(resp *domain.NarrativeResponse) {
	if resp.RecommendedIndustries == nil {
		resp.RecommendedIndustries = []domain.RecommendedIndustry{}
	}
	for i := range resp.RecommendedIndustries {
		r := &resp.RecommendedIndustries[i]
		// El narrador a veces manda "name" en lugar de "industry"; unificamos.
		if r.Industry == "" {
			r.Industry = r.Name
		}
		if r.Name == "" {
			r.Name = r.Industry
		}
		r.Reason = strings.TrimSpace(r.Reason)
	}
	if resp.Strengths == nil {
		resp.Strengths = []string{}
	}
	if resp.Weaknesses == nil {
		resp.Weaknesses = []string{}
	}
	if resp.ExperienceInsights == nil {
		resp.ExperienceInsights = []domain.ExperienceInsight{}
	}
	if resp.MismatchIndustries == nil {
		resp.MismatchIndustries = []domain.MismatchIndustry{}
	}
}
