package moments

import (
	"context"

	"github.com/vfg2006/valuable-moments-api/infrastructure/repository"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	GetValuableMoments(ctx context.Context, env domain.Environment, filter domain.MomentFilter) (*domain.ValuableMomentsReport, error)
	GetDailyMoments(ctx context.Context, env domain.Environment, filter domain.MomentFilter) ([]domain.DailyMoment, error)
	GetMomentDetails(ctx context.Context, env domain.Environment, businessID int64, detailType domain.DetailType, dateRange domain.DateRange) ([]domain.MomentDetail, error)
}

type service struct {
	momentRepo   repository.ValuableMomentRepository
	businessRepo repository.BusinessRepository
}

func NewService(momentRepo repository.ValuableMomentRepository, businessRepo repository.BusinessRepository) Service {
	return &service{
		momentRepo:   momentRepo,
		businessRepo: businessRepo,
	}
}

// GetValuableMoments dispara as sete consultas em paralelo e só agrega depois que todas terminam.
// Qualquer falha derruba a chamada inteira.
func (s *service) GetValuableMoments(ctx context.Context, env domain.Environment, filter domain.MomentFilter) (*domain.ValuableMomentsReport, error) {
	if err := filter.DateRange.Validate(); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"env":          env.String(),
		"business_ids": filter.BusinessIDs,
		"start_date":   filter.DateRange.StartDate,
		"end_date":     filter.DateRange.EndDate,
	})

	categories := domain.Categories()
	results := make([][]domain.CategoryCount, len(categories))

	// sem WithContext: uma falha não cancela as demais, a chamada espera todas terminarem
	var group errgroup.Group
	for i, category := range categories {
		group.Go(func() error {
			counts, err := s.momentRepo.CountByCategory(ctx, env, category, filter)
			if err != nil {
				return NewMomentError(ErrAggregation, category, err)
			}
			results[i] = counts
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao agregar valuable moments")
		return nil, err
	}

	byCategory := make(map[domain.Category][]domain.CategoryCount, len(categories))
	for i, category := range categories {
		byCategory[category] = results[i]
	}

	records := domain.MergeCategoryCounts(byCategory)

	logger.Debugf("Valuable moments agregados para %d empresas", len(records))

	return &domain.ValuableMomentsReport{
		Records: records,
		Totals:  domain.CalculateTotals(records),
	}, nil
}

func (s *service) GetDailyMoments(ctx context.Context, env domain.Environment, filter domain.MomentFilter) ([]domain.DailyMoment, error) {
	if err := filter.DateRange.Validate(); err != nil {
		return nil, err
	}

	series, err := s.momentRepo.DailyTotals(ctx, env, filter)
	if err != nil {
		log.ForContext(ctx).WithField("env", env.String()).WithError(err).Error("Erro ao buscar série diária")
		return nil, NewMomentError(ErrDailySeries, "", err)
	}

	return series, nil
}

// GetMomentDetails só lista as linhas de empresas BUSINESS ativas
func (s *service) GetMomentDetails(
	ctx context.Context,
	env domain.Environment,
	businessID int64,
	detailType domain.DetailType,
	dateRange domain.DateRange,
) ([]domain.MomentDetail, error) {
	if businessID <= 0 {
		return nil, ErrInvalidBusinessID
	}

	if err := dateRange.Validate(); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"env":         env.String(),
		"business_id": businessID,
		"type":        string(detailType),
	})

	exists, err := s.businessRepo.BusinessExists(ctx, env, businessID)
	if err != nil {
		logger.WithError(err).Error("Erro ao verificar empresa")
		return nil, NewMomentError(ErrDetails, "", err)
	}

	if !exists {
		logger.Info("Empresa não encontrada ou inativa")
		return nil, ErrBusinessNotFound
	}

	details, err := s.momentRepo.Details(ctx, env, businessID, detailType, dateRange)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar detalhes")
		return nil, NewMomentError(ErrDetails, "", err)
	}

	return details, nil
}
