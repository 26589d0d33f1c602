package similarity

// Missing es el valor centinela que marca "sin rating".
const Missing = -1.0

// Config define cómo se interpretan las secuencias de ratings
type Config struct {
	Missing float64 `json:"missing"` // valor que se excluye de los promedios; NaN también es válido
}

// DefaultConfig retorna la configuración por defecto
func DefaultConfig() Config {
	return Config{Missing: Missing}
}

var defaultConfig = DefaultConfig()

// Ratings convierte una secuencia codificada con el centinela de c.
func (c Config) Ratings(seq []float64) []Rating {
	return FromSentinel(seq, c.Missing)
}

// Average calcula el promedio de seq ignorando c.Missing.
func (c Config) Average(seq []float64) (float64, error) {
	rated := c.rated(seq)
	if len(rated) == 0 {
		return 0, emptyErr("average", len(seq))
	}
	return mean(rated), nil
}

// Biases retorna la desviación de cada rating respecto al promedio de seq.
// Las posiciones sin rating quedan como Unrated.
func (c Config) Biases(seq []float64) ([]Rating, error) {
	avg, err := c.Average(seq)
	if err != nil {
		return nil, err
	}
	out := make([]Rating, len(seq))
	for i, v := range seq {
		if !isSentinel(v, c.Missing) {
			out[i] = Rated(Bias(v, avg))
		}
	}
	return out, nil
}

func (c Config) rated(seq []float64) []float64 {
	out := make([]float64, 0, len(seq))
	for _, v := range seq {
		if !isSentinel(v, c.Missing) {
			out = append(out, v)
		}
	}
	return out
}
