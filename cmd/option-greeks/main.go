package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/contactkeval/option-greeks/internal/cli"
	"github.com/contactkeval/option-greeks/internal/data"
	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/report"
)

func main() {
	fs := flag.NewFlagSet("option-greeks", flag.ContinueOnError)
	verbosity := fs.Int("verbosity", 0, "log verbosity: 0=error 1=info 2=debug 3=trace")
	symbol := fs.String("symbol", "", "resolve S from market data for this ticker (positional args become: K T r sigma optionType)")
	serve := fs.Bool("serve", false, "run as REST server (accept pricing requests)")
	port := fs.String("port", ":8080", "REST server listen address")

	// Even a malformed flag must produce the one-line payload and a zero
	// exit, so flag errors are reported the same way as any other failure.
	fs.SetOutput(io.Discard)
	if err := fs.Parse(os.Args[1:]); err != nil {
		_ = report.Write(os.Stdout, report.Failure(err))
		return
	}

	logger.SetVerbosity(*verbosity)

	if *serve {
		mux := http.NewServeMux()
		mux.HandleFunc("/price", handlePrice)
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
		logger.Infof("starting REST server on %s", *port)
		if err := http.ListenAndServe(*port, mux); err != nil {
			logger.Errorf("server stopped: %v", err)
			os.Exit(1)
		}
		return
	}

	args := fs.Args()

	// -symbol replaces the leading S argument with a live (or synthetic)
	// spot quote; the remaining five positionals are unchanged.
	if *symbol != "" {
		prov := data.GetDataProvider()
		spot, err := prov.SpotPrice(*symbol)
		if err != nil {
			logger.Errorf("spot lookup failed: %v", err)
			_ = report.Write(os.Stdout, report.Failure(err))
			return
		}
		logger.Infof("resolved spot %s=%.4f", *symbol, spot)
		args = append([]string{strconv.FormatFloat(spot, 'f', -1, 64)}, args...)
	}

	cli.Run(args, os.Stdout)
}

// priceRequest mirrors the CLI's positional arguments as a JSON body.
type priceRequest struct {
	S          float64 `json:"S"`
	K          float64 `json:"K"`
	T          float64 `json:"T"`
	R          float64 `json:"r"`
	Sigma      float64 `json:"sigma"`
	OptionType string  `json:"optionType"`
}

// handlePrice mirrors the CLI contract over HTTP: every response is a
// payload object, success or failure, with status 200.
func handlePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var body priceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		_ = report.Write(w, report.Failure(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	req := pricing.Request{
		S:     body.S,
		K:     body.K,
		T:     body.T,
		R:     body.R,
		Sigma: body.Sigma,
		Type:  pricing.ParseOptionType(body.OptionType),
	}
	if err := req.Validate(); err != nil {
		_ = report.Write(w, report.Failure(err))
		return
	}

	_ = report.Write(w, report.Success(pricing.Compute(req)))
}
