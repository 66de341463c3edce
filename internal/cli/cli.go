// Package cli implements the single-shot calculator pipeline: six positional
// arguments in, exactly one JSON line out.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/report"
)

// numericArgNames are the first five positional arguments, in order.
var numericArgNames = [5]string{"S", "K", "T", "r", "sigma"}

// ParseRequest converts the six positional arguments
// (S K T r sigma optionType) into a pricing request.
func ParseRequest(args []string) (pricing.Request, error) {
	if len(args) != 6 {
		return pricing.Request{}, fmt.Errorf("expected 6 arguments: S K T r sigma optionType")
	}

	var vals [5]float64
	for i, name := range numericArgNames {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return pricing.Request{}, fmt.Errorf("argument %s is not a number: %q", name, args[i])
		}
		vals[i] = v
	}

	return pricing.Request{
		S:     vals[0],
		K:     vals[1],
		T:     vals[2],
		R:     vals[3],
		Sigma: vals[4],
		Type:  pricing.ParseOptionType(args[5]),
	}, nil
}

// Run prices the request described by args and writes exactly one JSON line
// to w. Failures of any kind (argument count, parse, domain) are reported in
// the payload itself, never via a crash or nonzero exit.
func Run(args []string, w io.Writer) {
	req, err := ParseRequest(args)
	if err != nil {
		logger.Errorf("bad invocation: %v", err)
		_ = report.Write(w, report.Failure(err))
		return
	}

	if err := req.Validate(); err != nil {
		logger.Errorf("invalid input: %v", err)
		_ = report.Write(w, report.Failure(err))
		return
	}

	g := pricing.Compute(req)
	logger.Debugf(
		"priced %s S=%.4f K=%.4f T=%.4f r=%.4f sigma=%.4f",
		req.Type, req.S, req.K, req.T, req.R, req.Sigma,
	)
	_ = report.Write(w, report.Success(g))
}
