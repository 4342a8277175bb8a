package scoring

import (
	"math"

	"lumipath/internal/domain"
)

// Ponderación del diagnóstico incremental: 60% historia, 40% observación nueva.
// El perfil deriva de a poco en vez de oscilar entre sesiones.
const (
	weightPrevious = 0.6
	weightCurrent  = 0.4
)

// Blend combina la distribución persistida anterior con la recién calculada.
// Solo se usa cuando existe una corrida previa del mismo dueño; si no la hay,
// el llamador usa el resultado del Scorer tal cual.
func Blend(previous, current domain.Ratio) domain.Ratio {
	mix := func(prev, cur int) int {
		return int(math.Round(float64(prev)*weightPrevious + float64(cur)*weightCurrent))
	}

	blended := normalizeTo100(domain.Ratio{
		C: mix(previous.C, current.C),
		L: mix(previous.L, current.L),
		T: mix(previous.T, current.T),
	})

	blended.C = clamp(blended.C, 0, 100)
	blended.L = clamp(blended.L, 0, 100)
	blended.T = clamp(blended.T, 0, 100)
	return blended
}
