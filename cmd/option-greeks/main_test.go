package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-greeks/internal/report"
)

func postPrice(t *testing.T, body string) (*httptest.ResponseRecorder, report.Payload) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/price", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handlePrice(rec, req)

	var p report.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return rec, p
}

func TestHandlePrice(t *testing.T) {
	rec, p := postPrice(t, `{"S":100,"K":100,"T":1,"r":0.05,"sigma":0.2,"optionType":"call"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, p.Error)
	assert.InDelta(t, 10.4506, p.Price, 1e-3)
	assert.InDelta(t, 0.6368, p.Delta, 1e-3)
}

func TestHandlePrice_InvalidBody(t *testing.T) {
	rec, p := postPrice(t, `{not json`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, p.Error)
	assert.Zero(t, p.Price)
}

func TestHandlePrice_DomainError(t *testing.T) {
	_, p := postPrice(t, `{"S":-5,"K":100,"T":1,"r":0.05,"sigma":0.2,"optionType":"call"}`)

	require.NotEmpty(t, p.Error)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Delta)
}

func TestHandlePrice_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/price", nil)
	rec := httptest.NewRecorder()
	handlePrice(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
