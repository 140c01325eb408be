package data

import "time"

// Quote is a single spot observation for an underlying.
type Quote struct {
	Symbol string    `json:"symbol"`
	Spot   float64   `json:"spot"`
	AsOf   time.Time `json:"as_of"`
}

// Provider supplies spot quotes used to seed the calculator's inputs.
type Provider interface {
	GetQuote(symbol string) (Quote, error)
}
