package critical

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides unified access to the distribution primitives the
// derivations rely on. Quantile and CDF calls are treated as instantaneous
// library primitives.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// TQuantile computes the p-quantile of the Student-t distribution with df
// degrees of freedom.
func (d *Distributions) TQuantile(p, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// TCDF computes the cumulative distribution function of the Student-t
// distribution at x with df degrees of freedom.
func (d *Distributions) TCDF(x, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(x)
}

// NormalQuantile computes the p-quantile of the standard Normal distribution.
func (d *Distributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// NormalCDF computes the standard Normal cumulative distribution function.
func (d *Distributions) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// package-level instance shared by the derivations; Distributions is
// stateless so concurrent use needs no coordination
var dist = NewDistributions()
