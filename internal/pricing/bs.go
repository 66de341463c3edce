// Package pricing implements the closed-form Black-Scholes model for
// European options: price plus the first-order Greeks (delta, gamma,
// theta, vega, rho).
package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// minSigma is the volatility floor applied in the T>0 branch so that
	// d1 and d2 stay defined for sigma=0 inputs.
	minSigma = 0.001

	// pctScale quotes vega and rho per one percentage point move.
	pctScale = 100

	// daysPerYear quotes theta per calendar day rather than per year.
	daysPerYear = 365
)

// stdNormal is the standard normal distribution used for N(x) and n(x).
var stdNormal = distuv.UnitNormal

// OptionType selects between the two sides of a European option.
type OptionType int

const (
	Call OptionType = iota
	Put
)

// String returns the wire literal for the option type.
func (t OptionType) String() string {
	if t == Call {
		return "call"
	}
	return "put"
}

// ParseOptionType maps a wire literal to an OptionType.
//
// Only the exact literal "call" selects the call branch. Every other value,
// including misspellings and different casing, prices as a put. Callers that
// need strict validation must compare the literal before parsing.
func ParseOptionType(s string) OptionType {
	if s == "call" {
		return Call
	}
	return Put
}

// Request holds the market inputs for a single pricing call.
type Request struct {
	S     float64 // spot price of the underlying
	K     float64 // strike price
	T     float64 // time to expiry in years
	R     float64 // risk-free rate, as a decimal
	Sigma float64 // annualized volatility, as a decimal
	Type  OptionType
}

// Validate checks the input domain. Compute is total over requests that
// pass validation.
func (r Request) Validate() error {
	if r.S <= 0 || r.K <= 0 {
		return fmt.Errorf("stock price and strike price must be positive")
	}
	if r.T < 0 {
		return fmt.Errorf("time to expiration cannot be negative")
	}
	if r.Sigma < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	return nil
}

// Greeks is the result of one pricing call. All fields are finite for
// validated inputs.
type Greeks struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"` // per calendar day
	Vega  float64 `json:"vega"`  // per 1% change in volatility
	Rho   float64 `json:"rho"`   // per 1% change in rate
}

// Compute prices a European option and its first-order sensitivities.
//
// At or past expiry (T <= 0) the option is worth its intrinsic value and the
// Greeks collapse to their discrete limits; no transcendental math runs in
// that branch. Otherwise sigma is floored at minSigma and the standard
// closed-form formulas apply.
func Compute(req Request) Greeks {
	if req.T <= 0 {
		return expiryGreeks(req)
	}

	sigma := req.Sigma
	if sigma <= 0 {
		sigma = minSigma
	}

	sqrtT := math.Sqrt(req.T)
	d1 := (math.Log(req.S/req.K) + (req.R+0.5*sigma*sigma)*req.T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	disc := math.Exp(-req.R * req.T)
	nd1 := stdNormal.Prob(d1)

	// cumTail is the cumulative term shared by theta and rho: N(d2) on the
	// call side, N(-d2) on the put side.
	var price, delta, rho, cumTail float64
	if req.Type == Call {
		price = req.S*stdNormal.CDF(d1) - req.K*disc*stdNormal.CDF(d2)
		delta = stdNormal.CDF(d1)
		cumTail = stdNormal.CDF(d2)
		rho = req.K * req.T * disc * cumTail / pctScale
	} else {
		price = req.K*disc*stdNormal.CDF(-d2) - req.S*stdNormal.CDF(-d1)
		delta = stdNormal.CDF(d1) - 1
		cumTail = stdNormal.CDF(-d2)
		rho = -req.K * req.T * disc * cumTail / pctScale
	}

	return Greeks{
		Price: price,
		Delta: delta,
		Gamma: nd1 / (req.S * sigma * sqrtT),
		Theta: (-req.S*nd1*sigma/(2*sqrtT) - req.R*req.K*disc*cumTail) / daysPerYear,
		Vega:  req.S * nd1 * sqrtT / pctScale,
		Rho:   rho,
	}
}

// expiryGreeks handles T <= 0. Price is the intrinsic value; delta is the
// discrete limit, which is exactly 0 on both sides when S == K; every other
// sensitivity is 0 because there is no time value left.
func expiryGreeks(req Request) Greeks {
	var g Greeks
	if req.Type == Call {
		g.Price = math.Max(req.S-req.K, 0)
		if req.S > req.K {
			g.Delta = 1
		}
		return g
	}
	g.Price = math.Max(req.K-req.S, 0)
	if req.S < req.K {
		g.Delta = -1
	}
	return g
}
