package boxutil

// Normalize scales the values into a distribution that sums to 1. An
// all-zero input yields a uniform distribution instead of dividing by
// zero. Empty input yields empty output.
func Normalize(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return []float64{}
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	res := make([]float64, n)
	if sum == 0 {
		for i := range res {
			res[i] = 1 / float64(n)
		}
		return res
	}
	for i, v := range values {
		res[i] = v / sum
	}
	return res
}

// NormalizeSizes is Normalize over the current sizes of the sizers.
func NormalizeSizes(sizers []*Sizer) []float64 {
	w := make([]float64, len(sizers))
	for i, sz := range sizers {
		w[i] = sz.Size
	}
	return Normalize(w)
}
