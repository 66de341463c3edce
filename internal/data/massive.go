// Package data provides market data provider implementations.
//
// This file contains a Massive-backed Provider implementation that retrieves
// the underlying spot price via Massive HTTP APIs.
//
// Design notes:
//   - Uses raw HTTP calls instead of the official Massive SDK
//   - Supports rate-limiting retries and fallback providers
package data

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contactkeval/option-greeks/internal/logger"
)

// massiveDataProvider implements the Provider interface using Massive APIs.
type massiveDataProvider struct {
	// APIKey used for authenticating requests with Massive.
	APIKey string

	// Client is the HTTP client used to make API requests.
	Client *http.Client

	// BaseURL is the root endpoint for Massive APIs
	// (e.g., https://api.massive.com).
	BaseURL string

	// secondary is an optional fallback provider.
	secondary Provider
}

// NewMassiveDataProvider constructs a Massive-backed data provider with an
// HTTP client configured for timeouts, connection pooling, HTTP/2, and gzip
// decompression.
func NewMassiveDataProvider(apiKey string) *massiveDataProvider {
	logger.Infof("initializing Massive data provider")

	return &massiveDataProvider{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				DisableCompression:    false, // must be false to enable gzip auto-decompression
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		BaseURL: "https://api.massive.com",
	}
}

// Secondary returns the configured secondary Provider, if any.
func (massiveDataProv *massiveDataProvider) Secondary() Provider {
	return massiveDataProv.secondary
}

// SpotPrice returns the previous session's close for the underlying, taken
// from Massive's previous-close aggregate endpoint. If Massive has no data
// for the symbol and a secondary provider is configured, the request is
// delegated.
func (massiveDataProv *massiveDataProvider) SpotPrice(underlying string) (float64, error) {
	logger.Debugf("spot price lookup: %s", underlying)

	url := fmt.Sprintf(
		"%s/v2/aggs/ticker/%s/prev?adjusted=true&apiKey=%s",
		massiveDataProv.BaseURL,
		underlying,
		massiveDataProv.APIKey,
	)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+massiveDataProv.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "massive-client/1.0")

	resp, err := massiveDataProv.processGetRequest(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return 0, fmt.Errorf("massive api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf(
			"massive previous close status=%d body=%s",
			resp.StatusCode,
			string(bodyBytes),
		)
	}

	// Massive/POLYGON style response model
	var body struct {
		Ticker  string `json:"ticker"`
		Results []struct {
			Close     float64 `json:"c"`
			Timestamp int64   `json:"t"` // epoch millis
		} `json:"results"`
		Status string `json:"status"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("parsing massive response: %w", err)
	}

	if len(body.Results) == 0 {
		if massiveDataProv.secondary != nil {
			logger.Tracef("no spot data, delegating to secondary provider")
			return massiveDataProv.secondary.SpotPrice(underlying)
		}
		return 0, fmt.Errorf("no previous close found for %s", underlying)
	}

	spot := body.Results[len(body.Results)-1].Close
	logger.Tracef("spot resolved %s=%.4f", underlying, spot)
	return spot, nil
}

// processGetRequest executes an HTTP GET request with rate-limit handling.
//
// Behavior:
//   - Retries indefinitely on HTTP 429
//   - Sleeps until the next minute boundary
//   - Returns immediately on success (<400)
//   - Returns an error for other status codes
func (massiveDataProv *massiveDataProvider) processGetRequest(
	req *http.Request,
) (*http.Response, error) {

	for {
		resp, err := massiveDataProv.Client.Do(req)
		if err != nil {
			return nil, err
		}

		// Success
		if resp.StatusCode < 400 {
			return resp, nil
		}

		// Handle per-minute rate limit (commonly 429)
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()

			// Sleep until the next minute boundary
			now := time.Now()
			sleepDuration := time.Until(
				now.Truncate(time.Minute).Add(time.Minute),
			)

			logger.Infof("rate limit hit, sleeping for %s", sleepDuration)
			time.Sleep(sleepDuration)
			continue
		}

		return resp, fmt.Errorf(
			"unexpected status code: %d",
			resp.StatusCode,
		)
	}
}
