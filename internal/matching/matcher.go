// Package matching rankea sectores y puestos por cercanía al perfil C/L/T.
package matching

import (
	"math"
	"sort"

	"lumipath/internal/domain"
)

// distance es la distancia L1 (Manhattan) entre dos distribuciones.
// Con ternas que suman 100, el rango es [0, 200] en enteros pares.
func distance(a, b domain.Ratio) int {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(a.C-b.C) + abs(a.L-b.L) + abs(a.T-b.T)
}

// matchScore convierte distancia en afinidad 0-100:
// distancia 0 → 100, distancia 200 → 0.
func matchScore(dist int) int {
	score := int(math.Round(100 - float64(dist)/2))
	if score < 0 {
		score = 0
	}
	return score
}

// RankIndustries devuelve los topN sectores más afines al perfil del usuario.
// Orden estable: a igual puntaje manda el orden del catálogo.
func RankIndustries(userRatio domain.Ratio, profiles []domain.IndustryProfile, topN int) []domain.IndustryMatch {
	matches := make([]domain.IndustryMatch, 0, len(profiles))
	for _, p := range profiles {
		matches = append(matches, domain.IndustryMatch{
			IndustryProfile: p,
			MatchScore:      matchScore(distance(userRatio, p.RequiredRatio)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if topN >= 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

// RankJobs devuelve los topN puestos más afines al perfil del usuario.
func RankJobs(userRatio domain.Ratio, profiles []domain.JobProfile, topN int) []domain.JobMatch {
	matches := make([]domain.JobMatch, 0, len(profiles))
	for _, p := range profiles {
		matches = append(matches, domain.JobMatch{
			JobProfile: p,
			MatchScore: matchScore(distance(userRatio, p.RequiredRatio)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if topN >= 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}
