package domain

// VerbItem es una etiqueta seleccionable que representa una actividad disfrutable.
// Inmutable: se define al arranque desde el catálogo estático.
type VerbItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Axis        Axis   `json:"group"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}
