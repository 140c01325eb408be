package pricing

import "math"

// expiryEpsilon is the time-to-expiry (in years) at or below which an option
// is treated as expired — about 52 minutes. Below this threshold the
// sigma*sqrt(T) divisor in d1/d2 degenerates, so price and delta collapse to
// their intrinsic-value limits and the remaining greeks to zero. The same
// constant guards both the batch and the single-greek entry points so the
// two paths always agree.
const expiryEpsilon = 1e-4

// Greeks holds the fair value and risk sensitivities of a European option.
//
// Field order is the calculator's positional contract:
// price, delta, gamma, theta, vega, rho.
type Greeks struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"` // per calendar day
	Vega  float64 `json:"vega"`  // per 1-point vol move
	Rho   float64 `json:"rho"`   // per 1-point rate move
}

// D1 computes the first standardized log-moneyness term of the
// Black-Scholes formula. Callers must ensure T > 0 and sigma > 0.
func D1(S, K, T, r, sigma float64) float64 {
	return (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
}

// D2 computes the second standardized log-moneyness term,
// d1 - sigma*sqrt(T).
func D2(S, K, T, r, sigma float64) float64 {
	return D1(S, K, T, r, sigma) - sigma*math.Sqrt(T)
}

// CalculateGreeks computes the Black-Scholes fair value and all six
// sensitivities of a European option in one pass.
//
// Parameters:
//   - isCall: true for call option, false for put option
//   - S: spot price of the underlying asset
//   - K: strike price of the option
//   - T: time to expiry in years
//   - r: continuously-compounded risk-free rate (annual, as a decimal)
//   - sigma: volatility of the underlying asset (annual, as a decimal)
//
// Theta is returned per calendar day; vega and rho per 1-percentage-point
// move in volatility and rate respectively.
//
// Degenerate inputs (S <= 0, K <= 0, sigma <= 0 with live time value) are
// not validated here and propagate to IEEE special values; the kernel is a
// pure formula family, and callers that want validation add it at their own
// boundary.
//
// Each call returns a fresh Greeks value, so concurrent callers never share
// state.
func CalculateGreeks(isCall bool, S, K, T, r, sigma float64) Greeks {
	if T <= expiryEpsilon {
		return expiredGreeks(isCall, S, K)
	}

	d1 := D1(S, K, T, r, sigma)
	d2 := D2(S, K, T, r, sigma)

	// The negated-argument CDFs are evaluated through the approximation on
	// their own rather than derived as 1-NormCDF(x); this matches the host
	// calculator's numeric behavior exactly.
	nD1 := NormCDF(d1)
	nD2 := NormCDF(d2)
	nNegD1 := NormCDF(-d1)
	nNegD2 := NormCDF(-d2)
	pdfD1 := NormPDF(d1)

	discount := math.Exp(-r * T)
	sqrtT := math.Sqrt(T)

	var g Greeks
	if isCall {
		g.Price = S*nD1 - K*discount*nD2
		g.Delta = nD1
		g.Theta = (-S*sigma*pdfD1/(2*sqrtT) - r*K*discount*nD2) / 365
		g.Rho = 0.01 * K * T * discount * nD2
	} else {
		g.Price = K*discount*nNegD2 - S*nNegD1
		g.Delta = nD1 - 1
		g.Theta = (-S*sigma*pdfD1/(2*sqrtT) + r*K*discount*nNegD2) / 365
		g.Rho = -0.01 * K * T * discount * nNegD2
	}

	// Type-independent sensitivities.
	g.Gamma = pdfD1 / (S * sigma * sqrtT)
	g.Vega = 0.01 * S * sqrtT * pdfD1

	return g
}

// expiredGreeks handles the expiry boundary: price is the intrinsic value,
// delta the exercise indicator, and everything else zero. At S == K exactly,
// delta is 0 for both option types.
func expiredGreeks(isCall bool, S, K float64) Greeks {
	var g Greeks
	if isCall {
		g.Price = math.Max(0, S-K)
		if S > K {
			g.Delta = 1
		}
	} else {
		g.Price = math.Max(0, K-S)
		if S < K {
			g.Delta = -1
		}
	}
	return g
}

// OptionPrice computes only the Black-Scholes fair value.
// Identical formula to the Price field of CalculateGreeks.
func OptionPrice(isCall bool, S, K, T, r, sigma float64) float64 {
	if T <= expiryEpsilon {
		if isCall {
			return math.Max(0, S-K)
		}
		return math.Max(0, K-S)
	}

	d1 := D1(S, K, T, r, sigma)
	d2 := D2(S, K, T, r, sigma)

	if isCall {
		return S*NormCDF(d1) - K*math.Exp(-r*T)*NormCDF(d2)
	}
	return K*math.Exp(-r*T)*NormCDF(-d2) - S*NormCDF(-d1)
}

// Delta computes the sensitivity of the option price to the underlying.
func Delta(isCall bool, S, K, T, r, sigma float64) float64 {
	if T <= expiryEpsilon {
		if isCall {
			if S > K {
				return 1
			}
			return 0
		}
		if S < K {
			return -1
		}
		return 0
	}

	d1 := D1(S, K, T, r, sigma)
	if isCall {
		return NormCDF(d1)
	}
	return NormCDF(d1) - 1
}

// Gamma computes the second-order spot sensitivity.
// Gamma is the same for calls and puts.
func Gamma(S, K, T, r, sigma float64) float64 {
	if T <= expiryEpsilon {
		return 0
	}
	d1 := D1(S, K, T, r, sigma)
	return NormPDF(d1) / (S * sigma * math.Sqrt(T))
}

// Theta computes calendar decay, returned per calendar day.
func Theta(isCall bool, S, K, T, r, sigma float64) float64 {
	if T <= expiryEpsilon {
		return 0
	}

	d1 := D1(S, K, T, r, sigma)
	d2 := D2(S, K, T, r, sigma)
	common := -S * sigma * NormPDF(d1) / (2 * math.Sqrt(T))

	if isCall {
		return (common - r*K*math.Exp(-r*T)*NormCDF(d2)) / 365
	}
	return (common + r*K*math.Exp(-r*T)*NormCDF(-d2)) / 365
}

// Vega computes the volatility sensitivity per 1-percentage-point vol move.
// Vega is the same for calls and puts.
func Vega(S, K, T, r, sigma float64) float64 {
	if T <= expiryEpsilon {
		return 0
	}
	d1 := D1(S, K, T, r, sigma)
	return 0.01 * S * math.Sqrt(T) * NormPDF(d1)
}

// Rho computes the rate sensitivity per 1-percentage-point rate move.
func Rho(isCall bool, S, K, T, r, sigma float64) float64 {
	if T <= expiryEpsilon {
		return 0
	}

	d2 := D2(S, K, T, r, sigma)
	if isCall {
		return 0.01 * K * T * math.Exp(-r*T) * NormCDF(d2)
	}
	return -0.01 * K * T * math.Exp(-r*T) * NormCDF(-d2)
}
