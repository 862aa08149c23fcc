package domain

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type NormalFit struct {
	Mean float64
	Std  float64
}

type LogNormalFit struct {
	Shape    float64 // sigma of the underlying normal
	Location float64 // pinned at 0
	Scale    float64 // exp(mu)
	Mean     float64
	Std      float64
	Mode     float64
}

// DistributionFit characterizes a duration sample. Defined is false when the
// sample had fewer than two strictly positive observations; the remaining
// fields are meaningless in that case.
type DistributionFit struct {
	Defined   bool
	Normal    NormalFit
	LogNormal LogNormalFit
}

// FitDistribution fits Normal and Log-Normal parameters to a sample of
// session durations in minutes. Zero and negative observations are dropped
// before fitting: they are legitimate sessions but degenerate for a
// log-normal. Deterministic and side-effect free.
func FitDistribution(sample []float64) DistributionFit {
	var positive []float64
	for _, v := range sample {
		if v > 0 {
			positive = append(positive, v)
		}
	}

	// A single-point fit is underdetermined; refuse rather than emit a
	// degenerate distribution.
	if len(positive) < 2 {
		return DistributionFit{}
	}

	logs := make([]float64, len(positive))
	for i, v := range positive {
		logs[i] = math.Log(v)
	}

	// Maximum likelihood with the location pinned at zero: sigma is the
	// population std of the logs, scale is exp of their mean.
	mu := stat.Mean(logs, nil)
	sigma := stat.PopStdDev(logs, nil)

	ln := distuv.LogNormal{Mu: mu, Sigma: sigma}

	return DistributionFit{
		Defined: true,
		Normal: NormalFit{
			Mean: stat.Mean(positive, nil),
			Std:  stat.PopStdDev(positive, nil),
		},
		LogNormal: LogNormalFit{
			Shape:    sigma,
			Location: 0,
			Scale:    math.Exp(mu),
			Mean:     ln.Mean(),
			Std:      ln.StdDev(),
			Mode:     math.Exp(mu - sigma*sigma),
		},
	}
}
