package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"critval/domain/critical"
	"critval/internal"
	"critval/internal/errors"
)

// Family identifies a test family for sweeps and exports.
type Family string

const (
	FamilyOneSample   Family = "t1s"
	FamilyTwoSample   Family = "t2s"
	FamilyPaired      Family = "t2sp"
	FamilyCorrelation Family = "cor"
)

// SweepRequest defines a grid of sample sizes and confidence levels to
// evaluate critical values over. Two-sample families use N per group.
type SweepRequest struct {
	Family      Family           `json:"family"`
	SampleSizes []float64        `json:"sample_sizes"`
	ConfLevels  []float64        `json:"conf_levels"`
	Options     critical.Options `json:"options"`
}

// SweepRow is one evaluated grid cell.
type SweepRow struct {
	N                float64 `json:"n"`
	ConfLevel        float64 `json:"conf_level"`
	CriticalQuantile float64 `json:"critical_quantile"`
	CriticalEffect   float64 `json:"critical_effect"`
	CorrectedEffect  float64 `json:"corrected_effect,omitempty"`
}

// SweepResult is the complete evaluated grid, row order matching the
// request grid (sample sizes outer, confidence levels inner).
type SweepResult struct {
	SweepID   string     `json:"sweep_id"`
	Family    Family     `json:"family"`
	Rows      []SweepRow `json:"rows"`
	RuntimeMs int64      `json:"runtime_ms"`
}

// SweepService evaluates critical-value grids concurrently. Every cell is
// an independent pure computation, so the grid fans out without
// coordination.
type SweepService struct {
	logger *internal.Logger
}

// NewSweepService creates a sweep service
func NewSweepService(logger *internal.Logger) *SweepService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SweepService{logger: logger}
}

// Run evaluates the requested grid and returns one row per cell.
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	start := time.Now()

	if len(req.SampleSizes) == 0 {
		return nil, errors.InvalidInput("sweep requires at least one sample size")
	}
	confLevels := req.ConfLevels
	if len(confLevels) == 0 {
		confLevels = []float64{critical.DefaultConfLevel}
	}
	switch req.Family {
	case FamilyOneSample, FamilyTwoSample, FamilyPaired, FamilyCorrelation:
	default:
		return nil, errors.InvalidArgumentf("unknown sweep family %q", req.Family)
	}

	rows := make([]SweepRow, len(req.SampleSizes)*len(confLevels))

	g, _ := errgroup.WithContext(ctx)
	for i, n := range req.SampleSizes {
		for j, conf := range confLevels {
			idx := i*len(confLevels) + j
			n, conf := n, conf
			g.Go(func() error {
				row, err := s.computeRow(req.Family, n, conf, req.Options)
				if err != nil {
					return err
				}
				rows[idx] = row
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "sweep %s failed", req.Family)
	}

	result := &SweepResult{
		SweepID:   uuid.NewString(),
		Family:    req.Family,
		Rows:      rows,
		RuntimeMs: time.Since(start).Milliseconds(),
	}
	s.logger.Info("sweep %s: %d cells in %dms", req.Family, len(rows), result.RuntimeMs)
	return result, nil
}

// computeRow evaluates one grid cell through the statistic-mode derivation
// with no observed statistic, which yields exactly the critical side of the
// record.
func (s *SweepService) computeRow(family Family, n, conf float64, opts critical.Options) (SweepRow, error) {
	opts.ConfLevel = conf

	row := SweepRow{N: n, ConfLevel: conf}

	switch family {
	case FamilyOneSample:
		res, err := critical.OneSample(critical.OneSampleStatistic{N: n}, opts)
		if err != nil {
			return row, err
		}
		row.CriticalQuantile = res.Tc
		row.CriticalEffect = res.Dc
		row.CorrectedEffect = res.Gc

	case FamilyTwoSample:
		res, err := critical.TwoSample(critical.TwoSampleStatistic{N1: n, N2: n}, opts)
		if err != nil {
			return row, err
		}
		row.CriticalQuantile = res.Tc
		row.CriticalEffect = res.Dc
		row.CorrectedEffect = res.Gc

	case FamilyPaired:
		res, err := critical.Paired(critical.PairedStatistic{N: n}, opts)
		if err != nil {
			return row, err
		}
		row.CriticalQuantile = res.Tc
		row.CriticalEffect = res.Dzc
		row.CorrectedEffect = res.Gzc

	case FamilyCorrelation:
		res, err := critical.Correlation(critical.CorrelationInput{N: n}, opts)
		if err != nil {
			return row, err
		}
		row.CriticalQuantile = res.Qc
		row.CriticalEffect = res.Rc
	}

	return row, nil
}
