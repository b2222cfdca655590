// Package critical computes critical values for common hypothesis tests:
// the minimum effect size or test statistic required to reach significance
// at a given confidence level and test direction. Each test family exposes
// one entry point that accepts either raw summary statistics or an
// already-computed test statistic and returns a flat result record with
// the observed effect size, its critical counterpart, and bias-corrected
// (Hedges) analogues.
package critical

// Hypothesis selects the direction of the alternative hypothesis.
type Hypothesis string

const (
	TwoSided Hypothesis = "two.sided"
	Greater  Hypothesis = "greater"
	Less     Hypothesis = "less"
)

// TestMethod selects the sampling distribution used for correlation and
// regression-coefficient tests.
type TestMethod string

const (
	TestT TestMethod = "t" // Student-t
	TestZ TestMethod = "z" // standard Normal (Fisher-z for correlations)
)

// DefaultConfLevel is the confidence level used when Options leaves it unset.
const DefaultConfLevel = 0.95

// Diagnostic represents a structured non-fatal warning attached to a result.
// The field a diagnostic refers to is left nil; all other fields are
// computed normally.
type Diagnostic string

const (
	DiagMissingStatistic     Diagnostic = "MISSING_STATISTIC"     // observed statistic absent, effect size not computable
	DiagMissingStdErr        Diagnostic = "MISSING_STDERR"        // standard error absent, critical raw value not computable
	DiagCorrelationDefaulted Diagnostic = "CORRELATION_DEFAULTED" // paired r12 defaulted to 0, pooled conversion unreliable
	DiagWelchFromStatistic   Diagnostic = "WELCH_FROM_STATISTIC"  // Welch denominator not reconstructable from t alone
)

// Options carries the recognized test options shared by all entry points.
// Zero values fall back to the defaults (two-sided, 0.95, t-based, Welch).
type Options struct {
	Hypothesis Hypothesis `json:"hypothesis,omitempty"`
	ConfLevel  float64    `json:"conf_level,omitempty"`

	// EqualVariances selects the pooled branch for independent two-sample
	// tests. The zero value matches the Welch default.
	EqualVariances bool `json:"equal_variances,omitempty"`

	// Test selects the distribution family for correlation and coefficient
	// tests.
	Test TestMethod `json:"test,omitempty"`

	// SE and DF, when set, are used verbatim instead of being derived.
	SE *float64 `json:"se,omitempty"`
	DF *float64 `json:"df,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.Hypothesis == "" {
		o.Hypothesis = TwoSided
	}
	if o.ConfLevel == 0 {
		o.ConfLevel = DefaultConfLevel
	}
	if o.Test == "" {
		o.Test = TestT
	}
	return o
}

// Float returns a pointer to v, for filling optional input fields.
func Float(v float64) *float64 {
	return &v
}

// ============================================================================
// TAGGED INPUTS (one variant set per test family)
// ============================================================================

// OneSampleInput is either OneSampleSummary or OneSampleStatistic.
type OneSampleInput interface {
	oneSampleInput()
}

// OneSampleSummary derives everything from a single group's summary
// statistics.
type OneSampleSummary struct {
	Mean float64 `json:"m"`
	SD   float64 `json:"s"`
	N    float64 `json:"n"`
}

// OneSampleStatistic derives from an already-computed t statistic. T may be
// nil when only the critical side is wanted.
type OneSampleStatistic struct {
	T *float64 `json:"t,omitempty"`
	N float64  `json:"n"`
}

func (OneSampleSummary) oneSampleInput()   {}
func (OneSampleStatistic) oneSampleInput() {}

// TwoSampleInput is either TwoSampleSummary or TwoSampleStatistic.
type TwoSampleInput interface {
	twoSampleInput()
}

// TwoSampleSummary holds both independent groups' summary statistics.
type TwoSampleSummary struct {
	M1  float64 `json:"m1"`
	M2  float64 `json:"m2"`
	SD1 float64 `json:"sd1"`
	SD2 float64 `json:"sd2"`
	N1  float64 `json:"n1"`
	N2  float64 `json:"n2"`
}

// TwoSampleStatistic derives from an already-computed t statistic.
type TwoSampleStatistic struct {
	T  *float64 `json:"t,omitempty"`
	N1 float64  `json:"n1"`
	N2 float64  `json:"n2"`
}

func (TwoSampleSummary) twoSampleInput()   {}
func (TwoSampleStatistic) twoSampleInput() {}

// PairedInput is either PairedSummary or PairedStatistic.
type PairedInput interface {
	pairedInput()
}

// PairedSummary describes either two raw conditions (M2/SD2 set, R12 their
// correlation) or a pre-computed difference (M1/SD1 are the mean and SD of
// the differences, M2/SD2 nil).
type PairedSummary struct {
	M1  float64  `json:"m1"`
	SD1 float64  `json:"sd1"`
	N   float64  `json:"n"`
	M2  *float64 `json:"m2,omitempty"`
	SD2 *float64 `json:"sd2,omitempty"`
	R12 *float64 `json:"r12,omitempty"`
}

// PairedStatistic derives from an already-computed paired t statistic. R12
// is only needed for the pooled-standardized family.
type PairedStatistic struct {
	T   *float64 `json:"t,omitempty"`
	N   float64  `json:"n"`
	R12 *float64 `json:"r12,omitempty"`
}

func (PairedSummary) pairedInput()   {}
func (PairedStatistic) pairedInput() {}

// CorrelationInput carries the sample size and, optionally, the observed
// correlation. The test method (t vs Fisher-z) comes from Options.Test.
type CorrelationInput struct {
	N float64  `json:"n"`
	R *float64 `json:"r,omitempty"`
}

// CoefficientInput carries the coefficient standard errors and the degrees
// of freedom, either directly or as (N, P) with df = n - p - 1.
type CoefficientInput struct {
	SEB []float64 `json:"seb"`
	DF  *float64  `json:"df,omitempty"`
	N   *float64  `json:"n,omitempty"`
	P   *float64  `json:"p,omitempty"`
}

// ============================================================================
// RESULT RECORDS
// ============================================================================
//
// INVARIANTS:
// - critical quantile (Tc/Qc) is always a non-negative magnitude; the
//   hypothesis direction only changes the tail probability fed to the
//   quantile lookup
// - every critical value is the critical quantile multiplied by the standard
//   error computed under the same df and variance assumptions as the
//   observed statistic
// - nil fields mean "not computable from the supplied inputs"; a Diagnostic
//   names each one

// OneSampleResult is the record returned by OneSample.
type OneSampleResult struct {
	D  *float64 `json:"d,omitempty"` // observed effect size m/s (or t*sqrt(1/n))
	Dc float64  `json:"dc"`          // critical effect size
	G  *float64 `json:"g,omitempty"` // Hedges-corrected D
	Gc float64  `json:"gc"`          // Hedges-corrected Dc
	Bc *float64 `json:"bc,omitempty"` // critical raw mean, tc*se
	Tc float64  `json:"tc"`          // critical t quantile (magnitude)
	DF float64  `json:"df"`
	SE *float64 `json:"se,omitempty"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// TwoSampleResult is the record returned by TwoSample.
type TwoSampleResult struct {
	D  *float64 `json:"d,omitempty"` // observed standardized mean difference
	Dc float64  `json:"dc"`
	G  *float64 `json:"g,omitempty"`
	Gc float64  `json:"gc"`
	Bc *float64 `json:"bc,omitempty"` // critical raw mean difference
	Tc float64  `json:"tc"`
	DF float64  `json:"df"`
	SE *float64 `json:"se,omitempty"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// PairedResult is the record returned by Paired. The difference-standardized
// family (Dz) uses the SD of the paired differences; the pooled family (D)
// uses the average-variance SD, linked by d = dz*sqrt(2*(1-r12)).
type PairedResult struct {
	Dz  *float64 `json:"dz,omitempty"`
	Dzc float64  `json:"dzc"`
	D   *float64 `json:"d,omitempty"`
	Dc  float64  `json:"dc"`
	Gz  *float64 `json:"gz,omitempty"`
	Gzc float64  `json:"gzc"`
	G   *float64 `json:"g,omitempty"`
	Gc  float64  `json:"gc"`
	Bc  *float64 `json:"bc,omitempty"`
	Tc  float64  `json:"tc"`
	DF  float64  `json:"df"`
	SE  *float64 `json:"se,omitempty"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// CorrelationResult is the record returned by Correlation. Rzc is only set
// by the Fisher-z branch; DF is only set by the t branch.
type CorrelationResult struct {
	Rc   float64  `json:"rc"`             // critical correlation coefficient
	Rzc  *float64 `json:"rzc,omitempty"`  // Fisher-transformed critical value
	SERc float64  `json:"se_rc"`          // standard error of Rc (raw-r units)
	SER  *float64 `json:"se_r,omitempty"` // standard error of the observed r
	SERz *float64 `json:"se_rz,omitempty"` // standard error in Fisher-z units
	Qc   float64  `json:"qc"`             // critical quantile (magnitude)
	DF   *float64 `json:"df,omitempty"`
	Test TestMethod `json:"test"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// CoefficientResult is the record returned by Coefficient. It deliberately
// echoes nothing besides the critical coefficients and the method used.
type CoefficientResult struct {
	Bc   []float64  `json:"bc"`
	Test TestMethod `json:"test"`
}
