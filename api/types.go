package api

import (
	"critval/adapters/htest"
	"critval/domain/critical"
)

// testOptions carries the options shared by every endpoint. Unset fields
// fall back to the service defaults.
type testOptions struct {
	Hypothesis string  `json:"hypothesis,omitempty"`
	ConfLevel  float64 `json:"conf_level,omitempty"`
}

func (o testOptions) toOptions() critical.Options {
	return critical.Options{
		Hypothesis: critical.Hypothesis(o.Hypothesis),
		ConfLevel:  o.ConfLevel,
	}
}

// OneSampleRequest mirrors the optional inputs of a one-sample test.
type OneSampleRequest struct {
	testOptions
	M  *float64 `json:"m,omitempty"`
	S  *float64 `json:"s,omitempty"`
	T  *float64 `json:"t,omitempty"`
	N  *float64 `json:"n,omitempty"`
	SE *float64 `json:"se,omitempty"`
	DF *float64 `json:"df,omitempty"`
}

func (r OneSampleRequest) record() htest.Result {
	return htest.Result{M1: r.M, SD1: r.S, T: r.T, N1: r.N, SE: r.SE, DF: r.DF}
}

// TwoSampleRequest mirrors the optional inputs of an independent two-sample
// test.
type TwoSampleRequest struct {
	testOptions
	M1       *float64 `json:"m1,omitempty"`
	M2       *float64 `json:"m2,omitempty"`
	SD1      *float64 `json:"sd1,omitempty"`
	SD2      *float64 `json:"sd2,omitempty"`
	N1       *float64 `json:"n1,omitempty"`
	N2       *float64 `json:"n2,omitempty"`
	T        *float64 `json:"t,omitempty"`
	SE       *float64 `json:"se,omitempty"`
	DF       *float64 `json:"df,omitempty"`
	VarEqual bool     `json:"var_equal,omitempty"`
}

func (r TwoSampleRequest) record() htest.Result {
	return htest.Result{
		M1: r.M1, M2: r.M2, SD1: r.SD1, SD2: r.SD2,
		N1: r.N1, N2: r.N2, T: r.T, SE: r.SE, DF: r.DF,
	}
}

// PairedRequest mirrors the optional inputs of a paired t-test.
type PairedRequest struct {
	testOptions
	M1  *float64 `json:"m1,omitempty"`
	M2  *float64 `json:"m2,omitempty"`
	SD1 *float64 `json:"sd1,omitempty"`
	SD2 *float64 `json:"sd2,omitempty"`
	R12 *float64 `json:"r12,omitempty"`
	N   *float64 `json:"n,omitempty"`
	T   *float64 `json:"t,omitempty"`
	SE  *float64 `json:"se,omitempty"`
	DF  *float64 `json:"df,omitempty"`
}

func (r PairedRequest) record() htest.Result {
	return htest.Result{
		M1: r.M1, M2: r.M2, SD1: r.SD1, SD2: r.SD2, R12: r.R12,
		N1: r.N, T: r.T, SE: r.SE, DF: r.DF,
	}
}

// CorrelationRequest mirrors the inputs of a correlation test.
type CorrelationRequest struct {
	testOptions
	N    *float64 `json:"n,omitempty"`
	R    *float64 `json:"r,omitempty"`
	DF   *float64 `json:"df,omitempty"`
	Test string   `json:"test,omitempty"`
}

// CoefficientRequest mirrors the inputs of a regression-coefficient test.
type CoefficientRequest struct {
	testOptions
	SEB  []float64 `json:"seb"`
	DF   *float64  `json:"df,omitempty"`
	N    *float64  `json:"n,omitempty"`
	P    *float64  `json:"p,omitempty"`
	Test string    `json:"test,omitempty"`
}

// errorResponse is the body returned for failed requests.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
