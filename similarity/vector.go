package similarity

import (
	"gonum.org/v1/gonum/floats"
)

// DotProduct calcula sum(a[i]*b[i]). Los vectores deben tener la misma longitud;
// no se trunca al más corto.
func DotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, mismatchErr("dot product", len(a), len(b))
	}
	return floats.Dot(a, b), nil
}

// Norm retorna la norma euclidiana de a. Para un vector vacío es 0.
func Norm(a []float64) float64 {
	return floats.Norm(a, 2)
}

// MagnitudeProduct retorna ||a|| * ||b||, el denominador del coseno.
// No es una distancia entre a y b. Las longitudes pueden diferir.
func MagnitudeProduct(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, emptyErr("magnitude product", 0)
	}
	if len(b) == 0 {
		return 0, emptyErr("magnitude product", 0)
	}
	return Norm(a) * Norm(b), nil
}
