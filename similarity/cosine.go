package similarity

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine retorna DotProduct(a, b) / MagnitudeProduct(a, b).
// Cada vector se divide por su norma antes del producto punto para no
// desbordar con magnitudes grandes.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, mismatchErr("cosine", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, emptyErr("cosine", 0)
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		slog.Debug("similarity: coseno con vector nulo", "len", len(a))
		return 0, fmt.Errorf("cosine: %w", ErrZeroMagnitude)
	}
	ua := floats.ScaleTo(make([]float64, len(a)), 1/na, a)
	ub := floats.ScaleTo(make([]float64, len(b)), 1/nb, b)
	return finite("cosine", floats.Dot(ua, ub))
}

func finite(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		slog.Debug("similarity: resultado no finito", "op", op)
		return 0, fmt.Errorf("%s: %w", op, ErrNonFinite)
	}
	return v, nil
}
