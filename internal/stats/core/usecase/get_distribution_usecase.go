package usecase

import (
	"context"

	"session-stats-service/internal/stats/core/domain"
	"session-stats-service/internal/stats/core/ports"
)

type GetDistributionUseCase struct {
	reader ports.EventReaderPort
}

func NewGetDistributionUseCase(reader ports.EventReaderPort) *GetDistributionUseCase {
	return &GetDistributionUseCase{reader: reader}
}

type GetDistributionInput struct {
	UserID int64
}

// DistributionReport carries the raw per-session duration sample in minutes
// alongside the fit, for histogram-with-overlay consumers.
type DistributionReport struct {
	Sample []float64
	Fit    domain.DistributionFit
}

func (uc *GetDistributionUseCase) Execute(ctx context.Context, in GetDistributionInput) (*DistributionReport, error) {
	if in.UserID <= 0 {
		return nil, ErrInvalidUser
	}

	events, err := uc.reader.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	sessions := domain.ReconstructSessions(events, in.UserID, nil)

	sample := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		sample = append(sample, s.Duration.Minutes())
	}

	return &DistributionReport{
		Sample: sample,
		Fit:    domain.FitDistribution(sample),
	}, nil
}
