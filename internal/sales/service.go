package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
)

const topProductsLimit = 10

// Service produces aggregated sales figures over recorded bills.
type Service interface {
	Summary(ctx context.Context, input SummaryInput) (*SummaryDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a sales service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	return &service{repo: repo}, nil
}

// Summary runs the bill totals, items sold and top products aggregates over
// the same date filter. Any failing aggregate fails the whole summary, the
// response never mixes fresh and missing figures.
func (s *service) Summary(ctx context.Context, input SummaryInput) (*SummaryDTO, error) {
	if input.Start != nil && input.End != nil && input.End.Before(*input.Start) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date is before start date")
	}

	filter := billFilter{start: input.Start, end: input.End}

	totals, err := s.repo.BillTotals(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregating bill totals")
	}

	itemsSold, err := s.repo.ItemsSold(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregating items sold")
	}

	rows, err := s.repo.TopProducts(ctx, filter, topProductsLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregating top products")
	}

	top := make([]TopProductDTO, 0, len(rows))
	for _, row := range rows {
		dto := TopProductDTO{
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
			MRPValue:     row.MRPValue,
		}
		if row.ProductID != nil && *row.ProductID != "" {
			if id, err := uuid.Parse(*row.ProductID); err == nil {
				dto.ProductID = &id
			}
		}
		top = append(top, dto)
	}

	return &SummaryDTO{
		TotalBills:     totals.TotalBills,
		TotalSales:     totals.TotalSales,
		TotalMRP:       totals.TotalMRP,
		TotalSavings:   totals.TotalSavings,
		TotalItemsSold: itemsSold,
		TopProducts:    top,
	}, nil
}
