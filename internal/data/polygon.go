package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/contactkeval/option-greeks/internal/logger"
)

// polygonProvider implements Provider using Polygon.io's previous-close
// endpoint. The latest daily close stands in for the live spot.
type polygonProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

// NewPolygonProvider constructs a Polygon-backed quote provider.
func NewPolygonProvider(apiKey string) Provider {
	return &polygonProvider{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.polygon.io",
	}
}

func (polygonProv *polygonProvider) GetQuote(symbol string) (Quote, error) {
	url := fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?adjusted=true&apiKey=%s",
		polygonProv.baseURL, symbol, polygonProv.apiKey)

	logger.Debugf("fetching previous close for %s", symbol)

	resp, err := polygonProv.client.Get(url)
	if err != nil {
		return Quote{}, fmt.Errorf("polygon prev close request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("polygon prev close status %d for %s", resp.StatusCode, symbol)
	}

	var body struct {
		Results []struct {
			Time  int64   `json:"t"`
			Close float64 `json:"c"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("polygon prev close decode: %w", err)
	}
	if len(body.Results) == 0 {
		return Quote{}, fmt.Errorf("polygon returned no bars for %s", symbol)
	}

	bar := body.Results[len(body.Results)-1]
	return Quote{
		Symbol: symbol,
		Spot:   bar.Close,
		AsOf:   time.UnixMilli(bar.Time).UTC(),
	}, nil
}
