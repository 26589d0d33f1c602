package similarity

import "math"

// Rating es un valor opcional: distingue un rating real de -1 de la ausencia de rating.
type Rating struct {
	value float64
	ok    bool
}

// Rated construye un rating presente con valor v.
func Rated(v float64) Rating { return Rating{value: v, ok: true} }

// Unrated retorna un rating ausente (el valor cero de Rating).
func Unrated() Rating { return Rating{} }

// Value retorna el rating y si existe.
func (r Rating) Value() (float64, bool) { return r.value, r.ok }

// FromSentinel convierte seq a ratings opcionales; las entradas iguales a
// sentinel quedan sin rating. Un sentinel NaN marca las entradas NaN.
func FromSentinel(seq []float64, sentinel float64) []Rating {
	out := make([]Rating, len(seq))
	for i, v := range seq {
		if !isSentinel(v, sentinel) {
			out[i] = Rated(v)
		}
	}
	return out
}

func isSentinel(v, sentinel float64) bool {
	if math.IsNaN(sentinel) {
		return math.IsNaN(v)
	}
	return v == sentinel
}
