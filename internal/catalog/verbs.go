package catalog

import "lumipath/internal/domain"

// Verbs es el catálogo estático de actividades disfrutables.
// Cada verbo pertenece a exactamente un eje; categoría y subcategoría
// existen solo para agrupar en pantalla.
var Verbs = []domain.VerbItem{
	// Relación con personas (C)
	// Construcción de vínculos
	{ID: "talk-to-people", Label: "Iniciar conversaciones con desconocidos", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "listen-to-people", Label: "Escuchar a alguien hasta entenderlo de verdad", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "share-feelings", Label: "Compartir emociones y empatizar con otros", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "think-from-others", Label: "Ponerme en el lugar del otro antes de opinar", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "encourage-people", Label: "Levantar el ánimo de alguien que está mal", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "make-friends", Label: "Hacer amistades nuevas con naturalidad", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "build-trust", Label: "Construir confianza con el tiempo", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "support-people", Label: "Ayudar a quien está en problemas", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "introduce-people", Label: "Presentar personas entre sí y conectarlas", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	{ID: "read-atmosphere", Label: "Leer el clima del grupo y actuar acorde", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Construcción de vínculos"},
	// Comunicación y persuasión
	{ID: "explain-to-others", Label: "Explicar temas complejos en simple", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	{ID: "convince-others", Label: "Convencer a alguien y moverlo a la acción", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	{ID: "share-opinion", Label: "Expresar mis ideas con claridad", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	{ID: "share-ideas", Label: "Intercambiar ideas y debatirlas", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	{ID: "give-feedback", Label: "Dar feedback constructivo", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	{ID: "praise-encourage", Label: "Reconocer logros ajenos y motivar", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	{ID: "follow-up", Label: "Mantener el contacto después de conocer a alguien", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Comunicación y persuasión"},
	// Apoyo y desarrollo
	{ID: "consult-support", Label: "Ordenar los problemas de un amigo y aconsejarlo", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Apoyo y desarrollo"},
	{ID: "draw-opinions", Label: "Sacar a la luz lo que otros no se animan a decir", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Apoyo y desarrollo"},
	{ID: "cooperate", Label: "Cooperar en equipo hacia una meta común", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Apoyo y desarrollo"},
	{ID: "decide-roles", Label: "Repartir roles y coordinar dentro del equipo", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Apoyo y desarrollo"},
	// Clima de grupo
	{ID: "improve-atmosphere", Label: "Mejorar el ambiente para que todos disfruten", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Clima de grupo"},
	{ID: "enliven-conversation", Label: "Animar una conversación apagada", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Clima de grupo"},
	{ID: "create-discussion", Label: "Abrir espacios de debate y facilitar la charla", Axis: domain.AxisC, Category: "Relación con personas", Subcategory: "Clima de grupo"},

	// Acción y desafío (L)
	// Decisión y responsabilidad
	{ID: "make-decisions", Label: "Fijar metas con fecha y anunciarlas", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	{ID: "decide-things", Label: "Elegir la mejor opción entre varias", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	{ID: "take-responsibility", Label: "Hacerme cargo de mis decisiones", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	{ID: "set-priorities", Label: "Priorizar y avanzar sin dispersarme", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	{ID: "set-goals", Label: "Definir objetivos concretos y armar el plan", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	{ID: "make-decision", Label: "Decidir rápido cuando hay dudas y seguir", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	{ID: "stand-firm", Label: "Sostener mi postura hasta hacerla realidad", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Decisión y responsabilidad"},
	// Ejecución y constancia
	{ID: "take-action", Label: "Pasar de la idea a la acción enseguida", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	{ID: "complete-task", Label: "Terminar lo que empiezo y mostrar resultados", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	{ID: "keep-deadline", Label: "Cumplir plazos sin excusas", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	{ID: "create-habits", Label: "Crear hábitos y sostenerlos a diario", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	{ID: "continue-exercise", Label: "Entrenar con constancia (correr, gimnasio)", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	{ID: "manage-schedule", Label: "Manejar mi agenda y avanzar con método", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	{ID: "organize-tasks", Label: "Despachar tareas pendientes con eficiencia", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Ejecución y constancia"},
	// Liderazgo e influencia
	{ID: "lead-front", Label: "Ponerme al frente y tirar del equipo", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Liderazgo e influencia"},
	{ID: "unite-team", Label: "Cohesionar al grupo y alinear esfuerzos", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Liderazgo e influencia"},
	{ID: "involve-others", Label: "Sumar gente a un proyecto y conseguir apoyo", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Liderazgo e influencia"},
	{ID: "show-direction", Label: "Marcar el rumbo cuando nadie lo tiene claro", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Liderazgo e influencia"},
	{ID: "influence-people", Label: "Influir en otros para que cambien de hábito", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Liderazgo e influencia"},
	{ID: "manage-project", Label: "Llevar un proyecto de punta a punta", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Liderazgo e influencia"},
	// Desafío y cambio
	{ID: "challenge-new", Label: "Probar cosas nuevas para ampliar experiencia", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},
	{ID: "face-difficulty", Label: "Enfrentar dificultades hasta superarlas", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},
	{ID: "create-change", Label: "Provocar cambios para mejorar la situación", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},
	{ID: "jump-new-env", Label: "Tirarme a un entorno nuevo y adaptarme", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},
	{ID: "act-first", Label: "Moverme antes que nadie y tomar la iniciativa", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},
	{ID: "try-small", Label: "Probar en chico antes de apostar en grande", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},
	{ID: "find-problems", Label: "Detectar problemas y disparar mejoras", Axis: domain.AxisL, Category: "Acción y desafío", Subcategory: "Desafío y cambio"},

	// Pensamiento y orden (T)
	// Análisis y causas
	{ID: "analyze-data", Label: "Encontrar causas a partir de datos", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Análisis y causas"},
	{ID: "find-root-cause", Label: "Buscar la causa raíz de un problema", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Análisis y causas"},
	{ID: "view-data", Label: "Mirar datos y leer tendencias", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Análisis y causas"},
	{ID: "compare-things", Label: "Comparar alternativas y evaluarlas", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Análisis y causas"},
	{ID: "find-improvements", Label: "Descubrir puntos de mejora y proponerlos", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Análisis y causas"},
	{ID: "dig-deep", Label: "Profundizar hasta entender la esencia", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Análisis y causas"},
	// Estructura y síntesis
	{ID: "organize-info", Label: "Ordenar información y dejarla legible", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	{ID: "structure-things", Label: "Estructurar temas para que se entiendan", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	{ID: "organize-diagram", Label: "Convertir ideas en diagramas", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	{ID: "decompose-structure", Label: "Descomponer un sistema en sus piezas", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	{ID: "organize-memo", Label: "Sistematizar apuntes y notas", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	{ID: "summarize-article", Label: "Resumir textos extrayendo lo esencial", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	{ID: "abstract-things", Label: "Abstraer patrones detrás de casos sueltos", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Estructura y síntesis"},
	// Planificación y prioridades
	{ID: "make-plan", Label: "Armar un plan con pasos claros", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Planificación y prioridades"},
	{ID: "create-procedure", Label: "Diseñar procedimientos eficientes", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Planificación y prioridades"},
	{ID: "think-efficiency", Label: "Pensar la forma más eficiente de hacer algo", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Planificación y prioridades"},
	{ID: "grasp-whole", Label: "Ver el panorama completo antes de priorizar", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Planificación y prioridades"},
	{ID: "create-rules", Label: "Crear reglas para estandarizar la operación", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Planificación y prioridades"},
	{ID: "design-system", Label: "Diseñar mecanismos que se automaticen solos", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Planificación y prioridades"},
	// Hipótesis y validación
	{ID: "make-hypothesis", Label: "Formular hipótesis y cómo validarlas", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Hipótesis y validación"},
	{ID: "build-logic", Label: "Armar una argumentación lógica sólida", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Hipótesis y validación"},
	{ID: "think-strategy", Label: "Pensar estrategias a mediano plazo", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Hipótesis y validación"},
	{ID: "predict-future", Label: "Anticipar escenarios y prepararme", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Hipótesis y validación"},
	{ID: "simulate", Label: "Simular resultados antes de ejecutar", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Hipótesis y validación"},
	{ID: "summarize-research", Label: "Recopilar información y dejarla usable", Axis: domain.AxisT, Category: "Pensamiento y orden", Subcategory: "Hipótesis y validación"},
}

// CategoryInfo describe cada categoría para la capa de presentación.
var CategoryInfo = map[string]string{
	"Relación con personas": "Conversar, empatizar, apoyar: tendencia a la comunicación interpersonal",
	"Acción y desafío":      "Decidir, ejecutar, liderar: tendencia a la acción y el empuje",
	"Pensamiento y orden":   "Analizar, estructurar, planificar: tendencia al análisis y la organización",
}
