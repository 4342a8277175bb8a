package domain

// IndustryProfile describe un sector con su distribución C/L/T requerida.
// RequiredRatio suma 100; los campos descriptivos alimentan la narrativa, no el matching.
type IndustryProfile struct {
	Industry       string   `json:"industry"`
	Description    string   `json:"description"`
	RequiredRatio  Ratio    `json:"requiredRatio"`
	ExampleRoles   []string `json:"exampleRoles"`
	Skills         []string `json:"skills"`
	Qualifications []string `json:"qualifications"`
}

// JobProfile describe un puesto concreto con su distribución C/L/T requerida.
type JobProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	RequiredRatio Ratio  `json:"requiredRatio"`
	Description   string `json:"description"`
}

// IndustryMatch es un sector rankeado con su puntaje de afinidad 0-100.
type IndustryMatch struct {
	IndustryProfile
	MatchScore int `json:"matchScore"`
}

// JobMatch es un puesto rankeado con su puntaje de afinidad 0-100.
type JobMatch struct {
	JobProfile
	MatchScore int `json:"matchScore"`
}
