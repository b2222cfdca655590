package app

import (
	"critval/domain/critical"
	"critval/internal"
)

// CriticalService wraps the critical-value derivations with application
// defaults and diagnostic logging. The derivations themselves are pure;
// everything here is plumbing around them.
type CriticalService struct {
	logger   *internal.Logger
	defaults critical.Options
}

// NewCriticalService creates a critical-value service with the given
// fallback options.
func NewCriticalService(logger *internal.Logger, defaults critical.Options) *CriticalService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &CriticalService{logger: logger, defaults: defaults}
}

// merge fills unset request options from the service defaults. Derivation
// built-ins still apply below that.
func (s *CriticalService) merge(opts critical.Options) critical.Options {
	if opts.Hypothesis == "" {
		opts.Hypothesis = s.defaults.Hypothesis
	}
	if opts.ConfLevel == 0 {
		opts.ConfLevel = s.defaults.ConfLevel
	}
	if opts.Test == "" {
		opts.Test = s.defaults.Test
	}
	return opts
}

func (s *CriticalService) logDiagnostics(family string, diags []critical.Diagnostic) {
	for _, d := range diags {
		s.logger.Warn("%s: %s", family, d)
	}
}

// OneSample computes a one-sample critical value record.
func (s *CriticalService) OneSample(in critical.OneSampleInput, opts critical.Options) (*critical.OneSampleResult, error) {
	res, err := critical.OneSample(in, s.merge(opts))
	if err != nil {
		return nil, err
	}
	s.logDiagnostics("one-sample", res.Diagnostics)
	return res, nil
}

// TwoSample computes an independent two-sample critical value record.
func (s *CriticalService) TwoSample(in critical.TwoSampleInput, opts critical.Options) (*critical.TwoSampleResult, error) {
	res, err := critical.TwoSample(in, s.merge(opts))
	if err != nil {
		return nil, err
	}
	s.logDiagnostics("two-sample", res.Diagnostics)
	return res, nil
}

// Paired computes a paired two-sample critical value record.
func (s *CriticalService) Paired(in critical.PairedInput, opts critical.Options) (*critical.PairedResult, error) {
	res, err := critical.Paired(in, s.merge(opts))
	if err != nil {
		return nil, err
	}
	s.logDiagnostics("paired", res.Diagnostics)
	return res, nil
}

// Correlation computes a critical correlation record.
func (s *CriticalService) Correlation(in critical.CorrelationInput, opts critical.Options) (*critical.CorrelationResult, error) {
	res, err := critical.Correlation(in, s.merge(opts))
	if err != nil {
		return nil, err
	}
	s.logDiagnostics("correlation", res.Diagnostics)
	return res, nil
}

// Coefficient computes critical regression coefficients.
func (s *CriticalService) Coefficient(in critical.CoefficientInput, opts critical.Options) (*critical.CoefficientResult, error) {
	return critical.Coefficient(in, s.merge(opts))
}
