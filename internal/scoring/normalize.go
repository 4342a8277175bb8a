// Package scoring implementa el núcleo determinista del diagnóstico:
// conteo por eje, suavizado, mezcla incremental y bono por experiencia.
package scoring

import "lumipath/internal/domain"

// normalizeTo100 fuerza el invariante C+L+T == 100 sobre una distribución
// ya redondeada. El resto (positivo o negativo) se asigna al eje mayor;
// en empate gana C, luego L, luego T.
// Si la corrección dejara un componente negativo, se recorta a 0 y se
// reasigna el residuo una vez más sobre la terna recortada.
func normalizeTo100(r domain.Ratio) domain.Ratio {
	if diff := 100 - r.Sum(); diff != 0 {
		top := r.Top()
		r.Set(top, r.Get(top)+diff)
	}

	clamped := false
	for _, a := range domain.Axes {
		if r.Get(a) < 0 {
			r.Set(a, 0)
			clamped = true
		}
	}
	if clamped {
		if diff := 100 - r.Sum(); diff != 0 {
			top := r.Top()
			r.Set(top, r.Get(top)+diff)
		}
	}
	return r
}

// clamp limita v al rango [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
