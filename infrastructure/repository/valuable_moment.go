package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

type ValuableMomentRepository interface {
	CountByCategory(ctx context.Context, env domain.Environment, category domain.Category, filter domain.MomentFilter) ([]domain.CategoryCount, error)
	DailyTotals(ctx context.Context, env domain.Environment, filter domain.MomentFilter) ([]domain.DailyMoment, error)
	Details(ctx context.Context, env domain.Environment, businessID int64, detailType domain.DetailType, dateRange domain.DateRange) ([]domain.MomentDetail, error)
}

// categorySource descreve de onde sai a contagem de uma categoria
type categorySource struct {
	table     string
	alias     string
	timestamp string
	where     squirrel.Sqlizer
	subCount  string
}

func (c categorySource) column(name string) string {
	return c.alias + "." + name
}

var categorySources = map[domain.Category]categorySource{
	domain.CategoryEmails: {
		table:     "emails",
		alias:     "e",
		timestamp: "created_on",
		where:     squirrel.Eq{"e.status": "SENT"},
	},
	domain.CategoryQuestions: {
		table:     "questions",
		alias:     "q",
		timestamp: "answer_date",
		where:     squirrel.Eq{"q.status": "ANSWERED"},
	},
	domain.CategorySocialPosts: {
		table:     "social_post",
		alias:     "sp",
		timestamp: "posted_date",
		where:     squirrel.Eq{"sp.status": "POSTED"},
		subCount:  "COUNT(sp.id) FILTER (WHERE sp.posted_via_platform IS TRUE)",
	},
	domain.CategoryContent: {
		table:     "content_page",
		alias:     "cp",
		timestamp: "created_on",
		where: squirrel.And{
			squirrel.Eq{"cp.types": []string{"PDF", "YOUTUBE", "CONTENT"}},
			squirrel.Expr("cp.headline_id IS NULL"),
		},
	},
	domain.CategoryPriceSensitiveAnnouncements: {
		table:     "announcements",
		alias:     "pa",
		timestamp: "created_on",
		where: squirrel.And{
			squirrel.Eq{"pa.category": "ASX_ANNOUNCEMENT"},
			squirrel.Expr("? = ANY(pa.labels)", "PRICE_SENSITIVE"),
		},
	},
	domain.CategoryDraftAnnouncements: {
		table:     "announcements",
		alias:     "da",
		timestamp: "created_on",
		where:     squirrel.Eq{"da.status": "DRAFT"},
	},
	domain.CategoryDraftReports: {
		table:     "reports",
		alias:     "r",
		timestamp: "created_on",
		where:     squirrel.Eq{"r.status": "DRAFT"},
	},
}

// dailyCategories são as categorias de destaque somadas na série diária
var dailyCategories = []domain.Category{
	domain.CategoryEmails,
	domain.CategoryQuestions,
	domain.CategorySocialPosts,
	domain.CategoryContent,
}

type valuableMomentRepository struct {
	executor postgres.Executor
}

func NewValuableMomentRepository(executor postgres.Executor) ValuableMomentRepository {
	return &valuableMomentRepository{
		executor: executor,
	}
}

func businessFilter(ids []int64) squirrel.Sqlizer {
	if len(ids) == 0 {
		return nil
	}
	return squirrel.Expr("u.id = ANY(?)", pq.Array(ids))
}

func periodFilter(column string, dateRange domain.DateRange) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.GtOrEq{column: dateRange.StartDate},
		squirrel.LtOrEq{column: dateRange.EndDate},
	}
}

// categoryCountQuery conta as linhas por empresa ativa. O JOIN interno faz com que
// só apareçam empresas com pelo menos uma linha na categoria.
func categoryCountQuery(category domain.Category, filter domain.MomentFilter) (string, []interface{}, error) {
	source, ok := categorySources[category]
	if !ok {
		return "", nil, fmt.Errorf("unknown category %q", category)
	}

	subCount := "0"
	if source.subCount != "" {
		subCount = source.subCount
	}

	builder := squirrel.
		Select(
			"u.id AS business_id",
			"COALESCE(u.business_name, '') AS business_name",
			fmt.Sprintf("COUNT(%s) AS count", source.column("id")),
			subCount+" AS sub_count",
		).
		From(usersTable).
		Join(fmt.Sprintf("%s %s ON %s = u.id", source.table, source.alias, source.column("business_id"))).
		Where(activeBusiness()).
		Where(source.where).
		Where(periodFilter(source.column(source.timestamp), filter.DateRange)).
		GroupBy("u.id", "u.business_name").
		OrderBy("u.business_name").
		PlaceholderFormat(squirrel.Dollar)

	if where := businessFilter(filter.BusinessIDs); where != nil {
		builder = builder.Where(where)
	}

	return builder.ToSql()
}

func (v *valuableMomentRepository) CountByCategory(
	ctx context.Context,
	env domain.Environment,
	category domain.Category,
	filter domain.MomentFilter,
) ([]domain.CategoryCount, error) {
	query, args, err := categoryCountQuery(category, filter)
	if err != nil {
		return nil, err
	}

	rows, err := v.executor.Query(ctx, env, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting %s: %w", category, err)
	}
	defer rows.Close()

	counts := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var count domain.CategoryCount
		if err := rows.Scan(&count.BusinessID, &count.BusinessName, &count.Count, &count.SubCount); err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", category, err)
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", category, err)
	}

	return counts, nil
}

// dailyCategoryQuery agrupa uma categoria por dia, sem placeholders numerados
func dailyCategoryQuery(category domain.Category, filter domain.MomentFilter) (string, []interface{}, error) {
	source := categorySources[category]
	timestamp := source.column(source.timestamp)

	builder := squirrel.
		Select(
			fmt.Sprintf("DATE(%s) AS date", timestamp),
			"COUNT(*) AS count",
		).
		From(usersTable).
		Join(fmt.Sprintf("%s %s ON %s = u.id", source.table, source.alias, source.column("business_id"))).
		Where(activeBusiness()).
		Where(source.where).
		Where(periodFilter(timestamp, filter.DateRange)).
		GroupBy(fmt.Sprintf("DATE(%s)", timestamp))

	if where := businessFilter(filter.BusinessIDs); where != nil {
		builder = builder.Where(where)
	}

	return builder.ToSql()
}

// dailyTotalsQuery monta a série com um dia por linha (inclusive os dias sem movimento)
// e o acumulado ordenado por data
func dailyTotalsQuery(filter domain.MomentFilter) (string, []interface{}, error) {
	parts := make([]string, 0, len(dailyCategories))
	args := []interface{}{filter.DateRange.StartDate, filter.DateRange.EndDate}

	for _, category := range dailyCategories {
		query, categoryArgs, err := dailyCategoryQuery(category, filter)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, query)
		args = append(args, categoryArgs...)
	}

	query := `WITH date_series AS (
	SELECT d::date AS date
	FROM generate_series(?::date, ?::date, INTERVAL '1 day') d
),
daily_data AS (
	` + strings.Join(parts, "\n\tUNION ALL\n\t") + `
),
daily_totals AS (
	SELECT ds.date, COALESCE(SUM(dd.count), 0) AS total_moments
	FROM date_series ds
	LEFT JOIN daily_data dd ON ds.date = dd.date
	GROUP BY ds.date
)
SELECT
	TO_CHAR(date, 'YYYY-MM-DD') AS date,
	total_moments,
	SUM(total_moments) OVER (ORDER BY date ASC ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) AS cumulative_total
FROM daily_totals
ORDER BY date ASC`

	query, err := squirrel.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

func (v *valuableMomentRepository) DailyTotals(ctx context.Context, env domain.Environment, filter domain.MomentFilter) ([]domain.DailyMoment, error) {
	query, args, err := dailyTotalsQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := v.executor.Query(ctx, env, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting daily totals: %w", err)
	}
	defer rows.Close()

	series := make([]domain.DailyMoment, 0)
	for rows.Next() {
		var day domain.DailyMoment
		if err := rows.Scan(&day.Date, &day.TotalMoments, &day.CumulativeTotal); err != nil {
			return nil, fmt.Errorf("error scanning daily totals: %w", err)
		}
		series = append(series, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily totals: %w", err)
	}

	return series, nil
}

func detailsQuery(businessID int64, detailType domain.DetailType, dateRange domain.DateRange) (string, []interface{}, error) {
	var builder squirrel.SelectBuilder

	switch detailType {
	case domain.DetailEmails:
		builder = squirrel.
			Select("TO_CHAR(e.created_on, 'DD/MM/YYYY') AS date", "COALESCE(e.subject, '') AS content", "NULL AS type").
			From(usersTable).
			Join("emails e ON e.business_id = u.id").
			Where(squirrel.Eq{"u.id": businessID}).
			Where(activeBusiness()).
			Where(categorySources[domain.CategoryEmails].where).
			Where(periodFilter("e.created_on", dateRange)).
			OrderBy("e.created_on DESC")
	case domain.DetailQuestions:
		builder = squirrel.
			Select("TO_CHAR(q.answer_date, 'DD/MM/YYYY') AS date", "COALESCE(q.question, '') AS content", "NULL AS type").
			From(usersTable).
			Join("questions q ON q.business_id = u.id").
			Where(squirrel.Eq{"u.id": businessID}).
			Where(activeBusiness()).
			Where(categorySources[domain.CategoryQuestions].where).
			Where(periodFilter("q.answer_date", dateRange)).
			OrderBy("q.answer_date DESC")
	case domain.DetailSocial:
		builder = squirrel.
			Select("TO_CHAR(sp.posted_date, 'DD/MM/YYYY') AS date", "COALESCE(cp.headline, '') AS content", "NULL AS type").
			From("social_post sp").
			Join("content_page cp ON cp.id = sp.content_id").
			Where(squirrel.Eq{"sp.business_id": businessID}).
			Where(categorySources[domain.CategorySocialPosts].where).
			Where(periodFilter("sp.posted_date", dateRange)).
			OrderBy("sp.posted_date DESC")
	case domain.DetailContent:
		builder = squirrel.
			Select("TO_CHAR(cp.created_on, 'DD/MM/YYYY') AS date", "COALESCE(cp.headline, '') AS content", "cp.types AS type").
			From("content_page cp").
			Where(squirrel.Eq{"cp.business_id": businessID}).
			Where(categorySources[domain.CategoryContent].where).
			Where(periodFilter("cp.created_on", dateRange)).
			OrderBy("cp.created_on DESC")
	default:
		return "", nil, domain.ErrInvalidDetailType
	}

	return builder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func (v *valuableMomentRepository) Details(
	ctx context.Context,
	env domain.Environment,
	businessID int64,
	detailType domain.DetailType,
	dateRange domain.DateRange,
) ([]domain.MomentDetail, error) {
	query, args, err := detailsQuery(businessID, detailType, dateRange)
	if err != nil {
		return nil, err
	}

	rows, err := v.executor.Query(ctx, env, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting %s details: %w", detailType, err)
	}
	defer rows.Close()

	details := make([]domain.MomentDetail, 0)
	for rows.Next() {
		var detail domain.MomentDetail
		if err := rows.Scan(&detail.Date, &detail.Content, &detail.Type); err != nil {
			return nil, fmt.Errorf("error scanning %s details: %w", detailType, err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s details: %w", detailType, err)
	}

	return details, nil
}
