package similarity

import "errors"

var (
	// ErrEmptyInput indica que no quedan valores sobre los cuales reducir.
	ErrEmptyInput = errors.New("similarity: entrada vacía")
	// ErrLengthMismatch indica vectores de distinta longitud.
	ErrLengthMismatch = errors.New("similarity: longitudes distintas")
	// ErrZeroMagnitude indica un denominador nulo (norma o varianza cero).
	ErrZeroMagnitude = errors.New("similarity: magnitud cero")
	// ErrNonFinite indica que el resultado no es un número finito (entradas Inf o NaN).
	ErrNonFinite = errors.New("similarity: resultado no finito")
)
