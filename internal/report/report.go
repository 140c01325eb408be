package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-greeks/internal/chain"
)

// WriteJSON dumps the chain rows as indented JSON to chain.json in outdir.
func WriteJSON(rows []chain.Row, outdir string) error {
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "chain.json"), b, 0644)
}

// WriteCSV writes the chain rows to chain.csv in outdir, one strike per
// line with call columns before put columns.
func WriteCSV(rows []chain.Row, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "chain.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{
		"strike",
		"call_price", "call_delta", "call_gamma", "call_theta", "call_vega", "call_rho",
		"put_price", "put_delta", "put_gamma", "put_theta", "put_vega", "put_rho",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			fmtPrice(row.Strike),
			fmtPrice(row.Call.Price), fmtGreek(row.Call.Delta), fmtGreek(row.Call.Gamma),
			fmtGreek(row.Call.Theta), fmtGreek(row.Call.Vega), fmtGreek(row.Call.Rho),
			fmtPrice(row.Put.Price), fmtGreek(row.Put.Delta), fmtGreek(row.Put.Gamma),
			fmtGreek(row.Put.Theta), fmtGreek(row.Put.Vega), fmtGreek(row.Put.Rho),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Prices render at 4 decimal places, greeks at 6.

func fmtPrice(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String()
}

func fmtGreek(v float64) string {
	return decimal.NewFromFloat(v).Round(6).String()
}
