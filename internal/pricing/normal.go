package pricing

import "math"

const sqrt2Pi = 2.5066282746310002

// Abramowitz & Stegun 7.1.26 coefficients for the error-function fit.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

// NormPDF calculates the probability density function (PDF) of the standard
// normal distribution at x: exp(-0.5 * x^2) / sqrt(2π).
func NormPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// NormCDF computes the cumulative distribution function of the standard
// normal distribution using the Abramowitz-Stegun rational polynomial fit
// to the error function.
//
// The fit carries a maximum absolute error of about 1.5e-7 versus the true
// CDF; callers comparing against a reference normal CDF must allow for that
// tolerance rather than expect exact agreement. Defined for all finite x;
// saturates to 0 or 1 for large |x|.
func NormCDF(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	z := math.Abs(x) / math.Sqrt2

	t := 1.0 / (1.0 + erfP*z)
	erf := 1.0 - ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-z*z)

	return 0.5 * (1.0 + sign*erf)
}
