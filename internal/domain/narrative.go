package domain

// NarrativeResponse es la salida estructurada esperada del LLM narrador.
// Todo campo es opcional: el parser defensivo rellena defaults seguros.
type NarrativeResponse struct {
	CLTRatio              *Ratio                `json:"cltRatio,omitempty"`
	Summary               string                `json:"summary"`
	RecommendedIndustries []RecommendedIndustry `json:"recommendedIndustries"`
	Strengths             []string              `json:"strengths"`
	Weaknesses            []string              `json:"weaknesses"`
	ExperienceInsights    []ExperienceInsight   `json:"experienceInsights"`
	MismatchIndustries    []MismatchIndustry    `json:"mismatchIndustries"`
	ActionTips            ActionTips            `json:"actionTips"`
}

// RecommendedIndustry es una recomendación individual dentro del resultado.
type RecommendedIndustry struct {
	Name       string `json:"name"`
	Industry   string `json:"industry"`
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason"`
}

// ExperienceInsight es una lectura del LLM sobre una experiencia concreta.
type ExperienceInsight struct {
	Experience   string `json:"experience"`
	Insight      string `json:"insight"`
	SuitableRole string `json:"suitable_role"`
}

// MismatchIndustry señala un sector poco afín, con vías de mejora.
type MismatchIndustry struct {
	Industry string           `json:"industry"`
	Reason   string           `json:"reason"`
	Solution MismatchSolution `json:"solution"`
}

// MismatchSolution separa acciones de corto y mediano plazo.
type MismatchSolution struct {
	ShortTerm  string `json:"shortTerm"`
	MediumTerm string `json:"mediumTerm"`
}

// ActionTips trae un consejo accionable por eje.
type ActionTips struct {
	C string `json:"C"`
	L string `json:"L"`
	T string `json:"T"`
}

// AnalysisResult es la forma final que consume la capa de presentación.
type AnalysisResult struct {
	CLTSummary          CLTSummary            `json:"clt_summary"`
	Recommended         []RecommendedIndustry `json:"recommended"`
	Skills              SkillBreakdown        `json:"skills"`
	StrengthsWeaknesses StrengthsWeaknesses   `json:"strengths_weaknesses"`
	ExperienceInsights  []ExperienceInsight   `json:"experience_insights"`
	MismatchIndustries  []MismatchIndustry    `json:"mismatch_industries"`
	ActionTips          ActionTips            `json:"action_tips"`
}

// CLTSummary resume la distribución con su texto de tendencia.
type CLTSummary struct {
	Ratio         Ratio    `json:"ratio"`
	TendencyText  string   `json:"tendency_text"`
	EvidenceVerbs []string `json:"evidence_verbs"`
}

// SkillBreakdown separa habilidades universales, diferenciadoras y certificaciones.
type SkillBreakdown struct {
	Universal             []string `json:"universal"`
	Differentiators       []string `json:"differentiators"`
	CertificationExamples []string `json:"certifications_examples"`
}

// AxisTraits agrupa fortalezas o debilidades por las tres miradas del modelo.
type AxisTraits struct {
	Interpersonal []string `json:"interpersonal"`
	Thinking      []string `json:"thinking"`
	Action        []string `json:"action"`
}

// StrengthsWeaknesses junta ambas listas más consejos generales.
type StrengthsWeaknesses struct {
	Strengths  AxisTraits `json:"strengths"`
	Weaknesses AxisTraits `json:"weaknesses"`
	Tips       []string   `json:"tips"`
}

// FollowupAnswer es un par pregunta/respuesta de la ronda de profundización.
type FollowupAnswer struct {
	Q string `json:"q"`
	A string `json:"a"`
}
