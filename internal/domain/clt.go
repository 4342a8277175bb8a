package domain

// Axis identifica uno de los tres ejes conductuales del modelo C/L/T.
type Axis string

const (
	AxisC Axis = "C" // Comunicación (interpersonal)
	AxisL Axis = "L" // Liderazgo (acción)
	AxisT Axis = "T" // Pensamiento (análisis)
)

// Axes lista los ejes en su orden canónico C, L, T.
// El orden importa: los desempates de redondeo siempre favorecen C sobre L sobre T.
var Axes = []Axis{AxisC, AxisL, AxisT}

// Ratio es la distribución porcentual sobre los tres ejes.
// Invariante: C + L + T == 100, cada componente entero no negativo.
type Ratio struct {
	C int `json:"C"`
	L int `json:"L"`
	T int `json:"T"`
}

// Get devuelve el valor del eje indicado.
func (r Ratio) Get(a Axis) int {
	switch a {
	case AxisC:
		return r.C
	case AxisL:
		return r.L
	default:
		return r.T
	}
}

// Set asigna el valor del eje indicado.
func (r *Ratio) Set(a Axis, v int) {
	switch a {
	case AxisC:
		r.C = v
	case AxisL:
		r.L = v
	default:
		r.T = v
	}
}

// Sum devuelve C + L + T.
func (r Ratio) Sum() int {
	return r.C + r.L + r.T
}

// Top devuelve el eje dominante. En empate gana C, luego L, luego T.
func (r Ratio) Top() Axis {
	if r.C >= r.L && r.C >= r.T {
		return AxisC
	}
	if r.L >= r.C && r.L >= r.T {
		return AxisL
	}
	return AxisT
}

// Counts acumula conteos crudos por eje, sin restricción de suma.
type Counts struct {
	C int `json:"C"`
	L int `json:"L"`
	T int `json:"T"`
}

// Add incrementa en uno el conteo del eje indicado.
func (c *Counts) Add(a Axis) {
	switch a {
	case AxisC:
		c.C++
	case AxisL:
		c.L++
	case AxisT:
		c.T++
	}
}

// Total devuelve la suma de los tres conteos.
func (c Counts) Total() int {
	return c.C + c.L + c.T
}

// CLTScore es el resultado completo del cálculo de perfil conductual.
type CLTScore struct {
	Counts             Counts            `json:"counts"`
	Total              int               `json:"total"`
	Ratio              Ratio             `json:"ratio"`
	Top                Axis              `json:"top"`
	SelectedByCategory map[Axis][]string `json:"selectedByCategory"`
}

// ExperienceBonus es el ajuste acotado derivado del texto libre de experiencia.
// Cada componente está en [0, 5].
type ExperienceBonus struct {
	C int `json:"C"`
	L int `json:"L"`
	T int `json:"T"`
}
