package domain

import "time"

// Assessment es una corrida de diagnóstico persistida.
// Se crea una vez por sesión completada y nunca se muta después.
type Assessment struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	IndustryResult string    `json:"industry_result"`
	ScoreC         int       `json:"score_c"`
	ScoreL         int       `json:"score_l"`
	ScoreT         int       `json:"score_t"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
	CreatedAt      time.Time `json:"created_at"`
}

// Ratio reconstruye la distribución porcentual guardada.
func (a Assessment) Ratio() Ratio {
	return Ratio{C: a.ScoreC, L: a.ScoreL, T: a.ScoreT}
}
