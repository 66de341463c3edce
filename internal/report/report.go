// Package report defines the fixed-shape wire payload and its writer.
package report

import (
	"encoding/json"
	"io"

	"github.com/contactkeval/option-greeks/internal/pricing"
)

// Payload is the single result object emitted per invocation. The six
// numeric fields are always present; Error appears only on failure, in
// which case every number is zero. Callers must match on the presence of
// the error key, not on its wording.
type Payload struct {
	Error string  `json:"error,omitempty"`
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// Success wraps a computed result.
func Success(g pricing.Greeks) Payload {
	return Payload{
		Price: g.Price,
		Delta: g.Delta,
		Gamma: g.Gamma,
		Theta: g.Theta,
		Vega:  g.Vega,
		Rho:   g.Rho,
	}
}

// Failure wraps an error, zeroing all numeric fields.
func Failure(err error) Payload {
	return Payload{Error: err.Error()}
}

// Write emits p as exactly one line of JSON on w.
func Write(w io.Writer, p Payload) error {
	return json.NewEncoder(w).Encode(p)
}
