// Package chain tabulates Black-Scholes greeks for calls and puts across a
// strike grid centered on the current spot, producing the rows a pricing
// calculator displays for one expiry.
package chain

import (
	"fmt"
	"math"

	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/pricing"
)

// Spec describes the strike grid and contract terms for one expiry.
type Spec struct {
	Strikes     int     `json:"strikes,omitempty"`     // strikes on each side of spot, default 10
	StrikeStep  float64 `json:"strike_step,omitempty"` // grid spacing, default 5
	ExpiryYears float64 `json:"expiry_years"`          // time to expiry in years
	Rate        float64 `json:"rate"`                  // risk-free rate, decimal
	Vol         float64 `json:"vol"`                   // annualized volatility, decimal
}

// Row pairs call and put greeks at one strike.
type Row struct {
	Strike float64        `json:"strike"`
	Call   pricing.Greeks `json:"call"`
	Put    pricing.Greeks `json:"put"`
}

// Build computes call and put greeks for every strike on the grid.
// Rows come back ordered by ascending strike. The grid is centered on the
// strike nearest to spot, Strikes steps in each direction.
func Build(spot float64, spec Spec) ([]Row, error) {
	if spot <= 0 {
		return nil, fmt.Errorf("spot must be positive, got %v", spot)
	}
	if spec.Vol <= 0 {
		return nil, fmt.Errorf("vol must be positive, got %v", spec.Vol)
	}
	if spec.ExpiryYears < 0 {
		return nil, fmt.Errorf("expiry_years must be non-negative, got %v", spec.ExpiryYears)
	}

	// fill defaults
	if spec.Strikes <= 0 {
		spec.Strikes = 10
	}
	if spec.StrikeStep <= 0 {
		spec.StrikeStep = 5
	}

	center := math.Round(spot/spec.StrikeStep) * spec.StrikeStep
	logger.Debugf("building chain: spot=%.2f center=%.2f step=%.2f width=%d",
		spot, center, spec.StrikeStep, spec.Strikes)

	rows := make([]Row, 0, 2*spec.Strikes+1)
	for i := -spec.Strikes; i <= spec.Strikes; i++ {
		strike := center + float64(i)*spec.StrikeStep
		if strike <= 0 {
			continue
		}
		rows = append(rows, Row{
			Strike: strike,
			Call:   pricing.CalculateGreeks(true, spot, strike, spec.ExpiryYears, spec.Rate, spec.Vol),
			Put:    pricing.CalculateGreeks(false, spot, strike, spec.ExpiryYears, spec.Rate, spec.Vol),
		})
	}

	return rows, nil
}
