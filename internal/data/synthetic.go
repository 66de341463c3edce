package data

import (
	"math/rand"
)

// synthDataProvider implements Provider generating synthetic data. It is
// used when no API key is configured, so keyless runs still resolve a spot.
type synthDataProvider struct {
	secondary Provider
}

func NewSyntheticProvider() Provider { return &synthDataProvider{} }

func (synthDataProv *synthDataProvider) Secondary() Provider {
	return synthDataProv.secondary
}

// SpotPrice returns a random but plausible spot in [100, 300).
func (synthDataProv *synthDataProvider) SpotPrice(underlying string) (float64, error) {
	if synthDataProv.secondary != nil {
		return synthDataProv.secondary.SpotPrice(underlying)
	}
	return 100.0 + float64(rand.Intn(200)), nil
}
