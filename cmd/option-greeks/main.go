package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/contactkeval/option-greeks/internal/chain"
	"github.com/contactkeval/option-greeks/internal/data"
	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/report"
	"github.com/contactkeval/option-greeks/internal/server"
)

// Config drives a one-shot chain calculation.
type Config struct {
	Underlying string     `json:"underlying"`           // e.g. "SPY"
	Chain      chain.Spec `json:"chain"`                // strike grid and contract terms
	OutputDir  string     `json:"output_dir,omitempty"` // where chain.json/chain.csv land
	Seed       int64      `json:"seed,omitempty"`       // seed for the synthetic provider
	Verbosity  int        `json:"verbosity,omitempty"`  // 0=errors,1=info,2=debug,3=trace
}

func main() {
	configPath := flag.String("config", "configs/example.json", "path to JSON config")
	rest := flag.Bool("rest", false, "run as REST server (accept pricing requests)")
	port := flag.String("port", ":8080", "REST server listen address")
	flag.Parse()

	if *rest {
		srv := server.New()
		logger.Infof("starting REST server on %s", *port)
		log.Fatal(http.ListenAndServe(*port, srv.Handler()))
		return
	}

	cfgData, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	var cfg Config
	if err := json.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./out"
	}
	logger.SetVerbosity(cfg.Verbosity)

	// choose provider
	var prov data.Provider
	apiKey := os.Getenv("POLYGON_API_KEY")
	if apiKey != "" {
		prov = data.NewPolygonProvider(apiKey)
		logger.Infof("polygon provider enabled")
	} else {
		prov = data.NewSyntheticProvider(cfg.Seed)
		logger.Infof("synthetic provider enabled")
	}

	start := time.Now()

	quote, err := prov.GetQuote(cfg.Underlying)
	if err != nil {
		log.Fatalf("fetching quote for %s: %v", cfg.Underlying, err)
	}
	logger.Infof("%s spot %.2f as of %s", quote.Symbol, quote.Spot, quote.AsOf.Format("2006-01-02"))

	rows, err := chain.Build(quote.Spot, cfg.Chain)
	if err != nil {
		log.Fatalf("building chain: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("creating output dir %s: %v", cfg.OutputDir, err)
	}
	if err := report.WriteJSON(rows, cfg.OutputDir); err != nil {
		log.Fatalf("writing JSON report: %v", err)
	}
	if err := report.WriteCSV(rows, cfg.OutputDir); err != nil {
		log.Fatalf("writing CSV report: %v", err)
	}

	logger.Infof("finished in %v, wrote %d strikes to %s", time.Since(start), len(rows), cfg.OutputDir)
}
