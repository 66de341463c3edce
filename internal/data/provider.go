package data

import "os"

// Provider supplies market data for resolving the underlying spot price.
type Provider interface {
	// SpotPrice returns the most recent price for the underlying symbol.
	SpotPrice(underlying string) (float64, error)

	// Secondary returns the fallback provider, if any.
	Secondary() Provider
}

// GetDataProvider returns the live Massive provider when an API key is
// configured and the synthetic provider otherwise.
func GetDataProvider() Provider {
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		return NewMassiveDataProvider(apiKey)
	}
	return NewSyntheticProvider()
}
