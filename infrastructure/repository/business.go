package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

const usersTable = "users u"

type BusinessRepository interface {
	ListBusinesses(ctx context.Context, env domain.Environment) ([]domain.Business, error)
	GetBusiness(ctx context.Context, env domain.Environment, businessID int64) (*domain.BusinessSummary, error)
	CountBusinesses(ctx context.Context, env domain.Environment) (int64, error)
	BusinessExists(ctx context.Context, env domain.Environment, businessID int64) (bool, error)
}

type businessRepository struct {
	executor postgres.Executor
}

func NewBusinessRepository(executor postgres.Executor) BusinessRepository {
	return &businessRepository{
		executor: executor,
	}
}

// activeBusiness restringe a usuários do tipo BUSINESS ativos e não removidos
func activeBusiness() squirrel.And {
	return squirrel.And{
		squirrel.Eq{"u.user_type": domain.BusinessUserType},
		squirrel.Expr("u.deleted IS NOT TRUE"),
		squirrel.Eq{"u.active": true},
	}
}

func listBusinessesQuery() (string, []interface{}, error) {
	return squirrel.
		Select(
			"u.id",
			"u.first_name",
			"u.last_name",
			"COALESCE(u.email, '')",
			"COALESCE(u.business_name, '')",
			"u.user_type",
			"u.created_on",
			"COALESCE(u.is_investor_hub, FALSE)",
			"u.status",
		).
		From(usersTable).
		Where(activeBusiness()).
		OrderBy("u.business_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (b *businessRepository) ListBusinesses(ctx context.Context, env domain.Environment) ([]domain.Business, error) {
	query, args, err := listBusinessesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := b.executor.Query(ctx, env, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]domain.Business, 0)
	for rows.Next() {
		var business domain.Business
		if err := rows.Scan(
			&business.ID,
			&business.FirstName,
			&business.LastName,
			&business.Email,
			&business.BusinessName,
			&business.UserType,
			&business.CreatedOn,
			&business.IsInvestorHub,
			&business.Status,
		); err != nil {
			return nil, fmt.Errorf("error scanning business: %w", err)
		}

		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating businesses: %w", err)
	}

	return businesses, nil
}

// GetBusiness retorna nil quando o id não existe
func (b *businessRepository) GetBusiness(ctx context.Context, env domain.Environment, businessID int64) (*domain.BusinessSummary, error) {
	query, args, err := squirrel.
		Select("u.id", "COALESCE(u.business_name, '')").
		From(usersTable).
		Where(squirrel.Eq{"u.id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row, err := b.executor.QueryRow(ctx, env, query, args...)
	if err != nil {
		return nil, err
	}

	summary := &domain.BusinessSummary{}
	if err := row.Scan(&summary.ID, &summary.BusinessName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting business %d: %w", businessID, err)
	}

	return summary, nil
}

func (b *businessRepository) CountBusinesses(ctx context.Context, env domain.Environment) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(usersTable).
		Where(activeBusiness()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	row, err := b.executor.QueryRow(ctx, env, query, args...)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting businesses: %w", err)
	}

	return count, nil
}

func businessExistsQuery(businessID int64) (string, []interface{}, error) {
	return squirrel.
		Select("1").
		From(usersTable).
		Where(squirrel.Eq{"u.id": businessID}).
		Where(activeBusiness()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BusinessExists considera apenas empresas ativas
func (b *businessRepository) BusinessExists(ctx context.Context, env domain.Environment, businessID int64) (bool, error) {
	query, args, err := businessExistsQuery(businessID)
	if err != nil {
		return false, err
	}

	row, err := b.executor.QueryRow(ctx, env, query, args...)
	if err != nil {
		return false, err
	}

	var found int
	if err := row.Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking business %d: %w", businessID, err)
	}

	return true, nil
}
