package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-greeks/internal/pricing"
)

func TestSuccessOmitsErrorKey(t *testing.T) {
	var buf bytes.Buffer
	p := Success(pricing.Greeks{Price: 10.45, Delta: 0.64})
	require.NoError(t, Write(&buf, p))

	assert.NotContains(t, buf.String(), `"error"`)
	assert.Contains(t, buf.String(), `"price":10.45`)
}

func TestFailureZeroesNumericFields(t *testing.T) {
	p := Failure(errors.New("boom"))

	assert.Equal(t, "boom", p.Error)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Delta)
	assert.Zero(t, p.Gamma)
	assert.Zero(t, p.Theta)
	assert.Zero(t, p.Vega)
	assert.Zero(t, p.Rho)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p))
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"price":0`)
}

func TestWriteEmitsExactlyOneLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Success(pricing.Greeks{})))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
