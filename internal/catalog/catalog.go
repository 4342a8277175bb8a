// Package catalog define los datos de referencia estáticos del diagnóstico:
// verbos conductuales, perfiles de sector y perfiles de puesto.
package catalog

import (
	"strings"

	"lumipath/internal/domain"
)

// Catalog agrupa los datos de referencia inmutables construidos al arranque.
// Se inyecta en el scorer y el matcher; no hay lookups globales ambientes.
type Catalog struct {
	verbs      []domain.VerbItem
	byLabel    map[string]domain.Axis
	industries []domain.IndustryProfile
	jobs       []domain.JobProfile
}

// New construye un catálogo a partir de listas explícitas.
func New(verbs []domain.VerbItem, industries []domain.IndustryProfile, jobs []domain.JobProfile) *Catalog {
	byLabel := make(map[string]domain.Axis, len(verbs))
	for _, v := range verbs {
		byLabel[v.Label] = v.Axis
	}
	return &Catalog{
		verbs:      verbs,
		byLabel:    byLabel,
		industries: industries,
		jobs:       jobs,
	}
}

// Default construye el catálogo con los datos embebidos del producto.
func Default() *Catalog {
	return New(Verbs, IndustryProfiles, JobProfiles)
}

// AxisOf devuelve el eje de un verbo del catálogo, si existe.
func (c *Catalog) AxisOf(label string) (domain.Axis, bool) {
	axis, ok := c.byLabel[label]
	return axis, ok
}

// Verbs devuelve la lista completa de verbos.
func (c *Catalog) Verbs() []domain.VerbItem {
	return c.verbs
}

// Industries devuelve los perfiles de sector.
func (c *Catalog) Industries() []domain.IndustryProfile {
	return c.industries
}

// Jobs devuelve los perfiles de puesto.
func (c *Catalog) Jobs() []domain.JobProfile {
	return c.jobs
}

// Classifier asigna un eje a una etiqueta que no está en el catálogo.
// Es una estrategia intercambiable; la implementación por defecto usa keywords.
type Classifier interface {
	Classify(label string) (domain.Axis, bool)
}

// KeywordClassifier clasifica texto libre buscando substrings indicativos por eje.
// Heurística frágil a propósito: un verbo sin keyword simplemente no aporta.
type KeywordClassifier struct{}

func (KeywordClassifier) Classify(label string) (domain.Axis, bool) {
	text := strings.ToLower(label)
	for _, axis := range domain.Axes {
		for _, kw := range classifierKeywords[axis] {
			if strings.Contains(text, kw) {
				return axis, true
			}
		}
	}
	return "", false
}

// classifierKeywords son los indicios por eje para verbos de entrada libre.
var classifierKeywords = map[domain.Axis][]string{
	domain.AxisC: {
		"conversar", "escuchar", "apoyar", "acompañar", "enseñar", "explicar",
		"conectar", "empatizar", "negociar", "presentar", "convencer", "atender",
		"colaborar", "compartir", "animar", "aconsejar",
	},
	domain.AxisL: {
		"liderar", "decidir", "ejecutar", "impulsar", "organizar equipos", "emprender",
		"arriesgar", "iniciar", "coordinar", "dirigir", "lograr", "competir",
		"actuar", "movilizar", "gestionar", "resolver",
	},
	domain.AxisT: {
		"analizar", "investigar", "planificar", "diseñar", "estructurar", "calcular",
		"programar", "estudiar", "clasificar", "comparar", "modelar", "optimizar",
		"documentar", "sintetizar", "evaluar", "observar",
	},
}
