package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critval/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "0", GinMode: "test"},
		Defaults: config.DefaultsConfig{ConfLevel: 0.95, Hypothesis: "two.sided"},
	}
	return NewServer(cfg, nil)
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOneSampleEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/critical/t1s", `{"m": 0.5, "s": 1, "n": 30}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		D  *float64 `json:"d"`
		Dc float64  `json:"dc"`
		DF float64  `json:"df"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.D)
	assert.InDelta(t, 0.5, *body.D, 1e-9)
	assert.InDelta(t, 2.0452296*math.Sqrt(1.0/30), body.Dc, 1e-6)
	assert.Equal(t, 29.0, body.DF)
}

func TestTwoSampleEndpoint_StatisticModeDiagnostics(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/critical/t2s", `{"t": 2.5, "n1": 30, "n2": 30, "var_equal": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Bc          *float64 `json:"bc"`
		Dc          float64  `json:"dc"`
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Nil(t, body.Bc)
	assert.Greater(t, body.Dc, 0.0)
	assert.Equal(t, []string{"MISSING_STDERR"}, body.Diagnostics)
}

func TestCorrelationEndpoint_ZMethod(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/critical/cor", `{"n": 60, "test": "z"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Rc   float64  `json:"rc"`
		Rzc  *float64 `json:"rzc"`
		Test string   `json:"test"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.Rzc)
	assert.InDelta(t, 1.9599640/math.Sqrt(57), *body.Rzc, 1e-6)
	assert.Equal(t, "z", body.Test)
	assert.Greater(t, body.Rc, 0.0)
	assert.Less(t, body.Rc, 1.0)
}

func TestCoefficientEndpoint_BadRequest(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/critical/coef", `{"seb": [0.1]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_ARGUMENT", body.Code)
}

func TestSweepEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/sweep", `{"family": "t1s", "sample_sizes": [10, 20], "conf_levels": [0.95]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		SweepID string `json:"sweep_id"`
		Rows    []struct {
			N float64 `json:"n"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.SweepID)
	require.Len(t, body.Rows, 2)
}

func TestReportEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/report", `{"family": "cor", "sample_sizes": [30]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "<table")
}

func TestInvalidJSON(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/v1/critical/t1s", `{"m": "half"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
