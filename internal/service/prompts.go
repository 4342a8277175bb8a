package service

import (
	"fmt"
	"strings"

	"lumipath/internal/domain"
)

// systemPrompt fija el rol del narrador y las reglas de estilo del producto.
const systemPrompt = `Eres un asesor de carrera y editor experto en perfiles laborales.
Con los "verbos disfrutables" del usuario, sus habilidades y sus intereses como materia prima,
explica su tendencia C/L/T y proponle sectores concretos donde encajaría.

Reglas importantes:
- No afirmes de manera absoluta (usa "tendencia", "posibilidad", "una opción a considerar").
- Asume que el perfil puede cambiar con la experiencia futura.
- Evita jerga técnica: el texto debe entenderlo un estudiante universitario.
- Cita siempre verbos elegidos por el usuario como evidencia.
- Separa las habilidades en "universales", "diferenciadoras" y "certificaciones concretas".
- Las fortalezas y debilidades deben cubrir tres miradas: interpersonal, pensamiento y acción.
- Cita como evidencia lo que se lee en la experiencia previa y las respuestas de profundización.
- Propone sectores de categoría amplia (ej: IT y tecnología, Finanzas), no puestos puntuales.
- El matchScore se calcula a nivel sector, nunca a nivel puesto.`

// jsonOnlyConstraint endurece el formato de salida: solo un objeto JSON.
const jsonOnlyConstraint = `

Restricción estricta de formato de salida:
- Solo se permite JSON.
- Prohibido el texto suelto, Markdown o bloques de código.
- Prohibido agregar texto antes o después del JSON.
- La salida empieza con { y termina con }.`

// SystemPromptJSON es el prompt de sistema completo para el modo JSON.
const SystemPromptJSON = systemPrompt + jsonOnlyConstraint

// BuildUserPrompt arma el prompt de usuario con todo el contexto del diagnóstico.
func BuildUserPrompt(
	score domain.CLTScore,
	verbs, skills, interests []string,
	experienceText string,
	followupAnswers []domain.FollowupAnswer,
	recommended []domain.IndustryMatch,
	recommendedJobs []domain.JobMatch,
) string {
	var b strings.Builder

	joinOr := func(items []string, empty string) string {
		if len(items) == 0 {
			return empty
		}
		return strings.Join(items, ", ")
	}

	b.WriteString("Información de entrada:\n")
	fmt.Fprintf(&b, "- Distribución C/L/T: C %d%%, L %d%%, T %d%%\n", score.Ratio.C, score.Ratio.L, score.Ratio.T)
	fmt.Fprintf(&b, "- Conteos: C %d, L %d, T %d\n", score.Counts.C, score.Counts.L, score.Counts.T)
	fmt.Fprintf(&b, "- Verbos elegidos (todos): %s\n", joinOr(verbs, "ninguno"))
	fmt.Fprintf(&b, "- Verbos del eje C: %s\n", joinOr(score.SelectedByCategory[domain.AxisC], "ninguno"))
	fmt.Fprintf(&b, "- Verbos del eje L: %s\n", joinOr(score.SelectedByCategory[domain.AxisL], "ninguno"))
	fmt.Fprintf(&b, "- Verbos del eje T: %s\n", joinOr(score.SelectedByCategory[domain.AxisT], "ninguno"))
	fmt.Fprintf(&b, "- Habilidades y certificaciones: %s\n", joinOr(skills, "ninguna en particular"))
	fmt.Fprintf(&b, "- Sectores o puestos de interés (opcional): %s\n", joinOr(interests, "sin responder"))
	if experienceText == "" {
		experienceText = "sin completar"
	}
	fmt.Fprintf(&b, "- Experiencia previa: %s\n", experienceText)

	if len(followupAnswers) > 0 {
		b.WriteString("- Respuestas de profundización:\n")
		for _, fa := range followupAnswers {
			fmt.Fprintf(&b, "  P: %s\n  R: %s\n", fa.Q, fa.A)
		}
	}

	b.WriteString("\nSectores candidatos calculados por el sistema (más afines primero):\n")
	for _, r := range recommended {
		fmt.Fprintf(&b, "- %s (afinidad %d): %s Roles típicos: %s.\n",
			r.Industry, r.MatchScore, r.Description, strings.Join(r.ExampleRoles, ", "))
	}

	if len(recommendedJobs) > 0 {
		b.WriteString("\nPuestos candidatos calculados por el sistema (solo como contexto, no los recomiendes directamente):\n")
		for _, j := range recommendedJobs {
			fmt.Fprintf(&b, "- %s (afinidad %d): %s\n", j.Name, j.MatchScore, j.Description)
		}
	}

	b.WriteString(`
Devuelve un objeto JSON con esta forma:
{
  "cltRatio": {"C": 0, "L": 0, "T": 0},
  "summary": "texto de tendencia",
  "recommendedIndustries": [{"industry": "...", "matchScore": 0, "reason": "..."}],
  "strengths": ["..."],
  "weaknesses": ["..."],
  "experienceInsights": [{"experience": "...", "insight": "...", "suitable_role": "..."}],
  "mismatchIndustries": [{"industry": "...", "reason": "...", "solution": {"shortTerm": "...", "mediumTerm": "..."}}],
  "actionTips": {"C": "...", "L": "...", "T": "..."}
}

Importante: la salida es solo ese JSON, sin texto antes ni después.`)

	return b.String()
}

// BuildFollowupPrompt pide cinco preguntas cortas para profundizar una experiencia.
func BuildFollowupPrompt(experienceText string, selectedVerbs []string) string {
	var b strings.Builder

	b.WriteString("Genera 5 preguntas para profundizar en la experiencia pasada del usuario.\n\n")
	fmt.Fprintf(&b, "Experiencia:\n%s\n", experienceText)

	if len(selectedVerbs) > 0 {
		limit := len(selectedVerbs)
		if limit > 10 {
			limit = 10
		}
		fmt.Fprintf(&b, "\nAcciones elegidas: %s\n", strings.Join(selectedVerbs[:limit], ", "))
	}

	b.WriteString(`
Requisitos:
- Prohibidas las preguntas demasiado abstractas.
- Prioriza la concreción: algo que el usuario pueda recordar.
- Cada pregunta corta, de una sola oración.
- Las preguntas deben sacar a la luz fortalezas, aprendizajes y crecimiento.

Formato de salida: arreglo JSON
["pregunta 1", "pregunta 2", "pregunta 3", "pregunta 4", "pregunta 5"]

Ejemplo:
["¿Cuál fue el momento de mayor satisfacción?", "¿Qué mejoraste o hiciste distinto?", "¿Qué te reconocieron los demás?", "¿Qué fue lo más difícil y cómo lo superaste?", "¿Qué aprendizaje te llevás para la próxima?"]`)

	return b.String()
}

// followupSystemPrompt fija el rol del generador de preguntas.
const followupSystemPrompt = "Eres un experto en formular preguntas que profundizan experiencias. Devuelve únicamente un arreglo JSON."
