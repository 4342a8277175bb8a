package scoring

import (
	"math"

	"lumipath/internal/catalog"
	"lumipath/internal/domain"
)

// Scorer calcula el perfil C/L/T a partir de verbos seleccionados.
// Función pura sobre datos inmutables: es seguro invocarla concurrentemente.
type Scorer struct {
	catalog    *catalog.Catalog
	classifier catalog.Classifier
}

// NewScorer construye un Scorer con el catálogo y el clasificador de respaldo.
func NewScorer(cat *catalog.Catalog, classifier catalog.Classifier) *Scorer {
	if classifier == nil {
		classifier = catalog.KeywordClassifier{}
	}
	return &Scorer{catalog: cat, classifier: classifier}
}

// Score transforma los verbos seleccionados en una distribución porcentual.
//
// Los verbos fuera del catálogo pasan por el clasificador de keywords; si
// tampoco ahí matchean, se ignoran en silencio (la entrada libre es permisiva
// a propósito). El suavizado +1 por eje garantiza una distribución válida
// incluso con cero verbos clasificados.
func (s *Scorer) Score(selectedVerbs []string) domain.CLTScore {
	var counts domain.Counts
	selected := map[domain.Axis][]string{
		domain.AxisC: {},
		domain.AxisL: {},
		domain.AxisT: {},
	}

	for _, verb := range selectedVerbs {
		axis, ok := s.catalog.AxisOf(verb)
		if !ok {
			axis, ok = s.classifier.Classify(verb)
		}
		if !ok {
			continue
		}
		counts.Add(axis)
		selected[axis] = append(selected[axis], verb)
	}

	smoothedTotal := counts.Total() + 3
	pct := func(count int) int {
		return int(math.Round(float64(count+1) / float64(smoothedTotal) * 100))
	}

	ratio := normalizeTo100(domain.Ratio{
		C: pct(counts.C),
		L: pct(counts.L),
		T: pct(counts.T),
	})

	return domain.CLTScore{
		Counts:             counts,
		Total:              counts.Total(),
		Ratio:              ratio,
		Top:                ratio.Top(),
		SelectedByCategory: selected,
	}
}
