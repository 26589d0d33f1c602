// Package similarity contiene las primitivas estadísticas usadas para
// comparar vectores de ratings: promedio con datos faltantes, bias,
// producto punto, normas, coseno y Pearson.
package similarity

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Average calcula el promedio de seq ignorando las entradas Missing (-1).
// Si no queda ningún rating retorna ErrEmptyInput.
func Average(seq []float64) (float64, error) {
	return defaultConfig.Average(seq)
}

// AverageRatings calcula el promedio de los ratings presentes.
func AverageRatings(rs []Rating) (float64, error) {
	rated := make([]float64, 0, len(rs))
	for _, r := range rs {
		if v, ok := r.Value(); ok {
			rated = append(rated, v)
		}
	}
	if len(rated) == 0 {
		return 0, emptyErr("average", len(rs))
	}
	return mean(rated), nil
}

// Bias retorna la desviación de value respecto a mean.
func Bias(value, mean float64) float64 {
	return value - mean
}

// Biases aplica Bias a cada rating de seq usando el centinela por defecto.
func Biases(seq []float64) ([]Rating, error) {
	return defaultConfig.Biases(seq)
}

// MeanCenter normaliza los ratings de un usuario (item -> rating) restando su promedio.
// No modifica el mapa recibido.
func MeanCenter(ratings map[int]float64) (map[int]float64, error) {
	if len(ratings) == 0 {
		return nil, emptyErr("mean center", 0)
	}
	vals := make([]float64, 0, len(ratings))
	for _, r := range ratings {
		vals = append(vals, r)
	}
	promedio := mean(vals)

	out := make(map[int]float64, len(ratings))
	for item, r := range ratings {
		out[item] = Bias(r, promedio)
	}
	return out, nil
}

func mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

func emptyErr(op string, n int) error {
	slog.Debug("similarity: sin valores", "op", op, "len", n)
	return fmt.Errorf("%s: %d entradas sin valores válidos: %w", op, n, ErrEmptyInput)
}

func mismatchErr(op string, a, b int) error {
	slog.Debug("similarity: longitudes distintas", "op", op, "len_a", a, "len_b", b)
	return fmt.Errorf("%s: len(a)=%d, len(b)=%d: %w", op, a, b, ErrLengthMismatch)
}
