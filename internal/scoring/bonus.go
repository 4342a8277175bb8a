package scoring

import (
	"math"
	"strings"

	"lumipath/internal/domain"
)

// maxBonusPerAxis acota el bono por eje: el texto libre es una señal de baja
// confianza, empuja pero nunca domina al puntaje por verbos.
const maxBonusPerAxis = 5

// Keywords de experiencia por eje. Se cuentan matches por substring,
// sin distinguir mayúsculas.
var (
	bonusKeywordsC = []string{
		"ventas", "atención al cliente", "cliente", "soporte", "consulta", "entrevista",
		"equipo", "colaboración", "coordinación", "reunión", "presentación", "explicación",
		"docencia", "capacitación", "profesor", "entrenador", "coach", "mentor",
	}
	bonusKeywordsL = []string{
		"líder", "lider", "gerente", "gestión", "dirección", "responsable", "encargado",
		"proyecto", "impulso", "ejecución", "decisión", "objetivo",
		"plan de acción", "estrategia comercial", "mejora", "reforma", "desafío", "emprend",
	}
	bonusKeywordsT = []string{
		"análisis", "analisis", "datos", "investigación", "investigacion", "desarrollo",
		"diseño", "programación", "programacion", "ingenier", "sistema", "técnic",
		"estadística", "lógica", "planificación", "validación", "evaluación", "optimización",
	}
)

// ExperienceBonus deriva un ajuste acotado [0,5] por eje a partir del texto
// libre de experiencia laboral.
func ExperienceBonus(experienceText string) domain.ExperienceBonus {
	text := strings.ToLower(experienceText)

	countMatches := func(keywords []string) int {
		n := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				n++
			}
		}
		if n > maxBonusPerAxis {
			n = maxBonusPerAxis
		}
		return n
	}

	return domain.ExperienceBonus{
		C: countMatches(bonusKeywordsC),
		L: countMatches(bonusKeywordsL),
		T: countMatches(bonusKeywordsT),
	}
}

// ApplyBonus suma el bono a una distribución y restaura el invariante de 100.
// Cada eje se recorta a 100; si la suma excede 100 se reescala
// proporcionalmente y se corrige el resto de redondeo.
func ApplyBonus(ratio domain.Ratio, bonus domain.ExperienceBonus) domain.Ratio {
	withBonus := domain.Ratio{
		C: clamp(ratio.C+bonus.C, 0, 100),
		L: clamp(ratio.L+bonus.L, 0, 100),
		T: clamp(ratio.T+bonus.T, 0, 100),
	}

	if sum := withBonus.Sum(); sum > 100 {
		scale := 100 / float64(sum)
		withBonus = domain.Ratio{
			C: int(math.Round(float64(withBonus.C) * scale)),
			L: int(math.Round(float64(withBonus.L) * scale)),
			T: int(math.Round(float64(withBonus.T) * scale)),
		}
		withBonus = normalizeTo100(withBonus)
	}
	return withBonus
}
