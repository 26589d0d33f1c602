package similarity

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Pearson calcula la correlación de Pearson entre x e y.
// Una serie constante (o de un solo elemento) no tiene varianza y retorna ErrZeroMagnitude.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, mismatchErr("pearson", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, emptyErr("pearson", 0)
	}
	if constant(x) || constant(y) {
		slog.Debug("similarity: pearson sin varianza", "len", len(x))
		return 0, fmt.Errorf("pearson: %w", ErrZeroMagnitude)
	}
	// r no depende de la escala; se lleva cada serie a [-1, 1] para no desbordar las varianzas.
	return finite("pearson", stat.Correlation(rescale(x), rescale(y), nil))
}

func constant(xs []float64) bool {
	return floats.Max(xs) == floats.Min(xs)
}

func rescale(xs []float64) []float64 {
	m := floats.Norm(xs, math.Inf(1))
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return xs
	}
	return floats.ScaleTo(make([]float64, len(xs)), 1/m, xs)
}
