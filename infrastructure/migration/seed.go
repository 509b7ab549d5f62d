package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"github.com/vfg2006/valuable-moments-api/pkg/utils"
)

const seedTagSize = 6

var ErrInvalidSeedOptions = errors.New("invalid seed options")

type SeedOptions struct {
	Businesses int
	Now        time.Time
}

// SeedSummary lista o que foi gravado. Cada empresa i recebe i+1 linhas em cada
// categoria de destaque, mais um anúncio price sensitive, um anúncio rascunho e
// um relatório rascunho.
type SeedSummary struct {
	Tag                string
	BusinessIDs        []int64
	InactiveBusinessID int64
}

// ExpectedTotal é o total de valuable moments da empresa de índice i
func ExpectedTotal(i int) int64 {
	return int64(4*(i+1) + 2)
}

func insertReturningID(ctx context.Context, tx *sql.Tx, builder squirrel.InsertBuilder) (int64, error) {
	query, args, err := builder.
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Seed grava dados de exemplo numa única transação
func Seed(ctx context.Context, conn postgres.Conn, opts SeedOptions) (*SeedSummary, error) {
	if opts.Businesses <= 0 || opts.Businesses > 28 {
		return nil, fmt.Errorf("%w: businesses must be between 1 and 28", ErrInvalidSeedOptions)
	}

	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	tag, err := utils.GenerateID(seedTagSize)
	if err != nil {
		return nil, err
	}

	summary := &SeedSummary{Tag: tag}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i := range opts.Businesses {
			businessID, err := insertBusiness(ctx, tx, fmt.Sprintf("Seed %s %02d", tag, i+1), true)
			if err != nil {
				return fmt.Errorf("erro ao inserir empresa %d: %w", i+1, err)
			}

			if err := insertMoments(ctx, tx, businessID, i+1, opts.Now); err != nil {
				return fmt.Errorf("erro ao inserir movimentos da empresa %d: %w", businessID, err)
			}

			summary.BusinessIDs = append(summary.BusinessIDs, businessID)
		}

		// empresa inativa com movimentos: nunca deve aparecer nas agregações
		inactiveID, err := insertBusiness(ctx, tx, fmt.Sprintf("Seed %s inativa", tag), false)
		if err != nil {
			return err
		}
		summary.InactiveBusinessID = inactiveID

		return insertMoments(ctx, tx, inactiveID, 3, opts.Now)
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"tag":        tag,
		"businesses": len(summary.BusinessIDs),
	}).Info("Dados de exemplo gravados")

	return summary, nil
}

func insertBusiness(ctx context.Context, tx *sql.Tx, name string, active bool) (int64, error) {
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"

	return insertReturningID(ctx, tx, squirrel.
		Insert("users").
		Columns("first_name", "last_name", "email", "business_name", "user_type", "status", "active").
		Values("Seed", name, email, name, domain.BusinessUserType, "ACTIVE", active))
}

// insertMoments grava n linhas por categoria, uma por dia a partir de now
func insertMoments(ctx context.Context, tx *sql.Tx, businessID int64, n int, now time.Time) error {
	for k := range n {
		at := now.AddDate(0, 0, -k).Add(-time.Minute)

		if _, err := insertReturningID(ctx, tx, squirrel.
			Insert("emails").
			Columns("business_id", "subject", "status", "created_on").
			Values(businessID, fmt.Sprintf("Atualização %d", k+1), "SENT", at)); err != nil {
			return err
		}

		if _, err := insertReturningID(ctx, tx, squirrel.
			Insert("questions").
			Columns("business_id", "question", "status", "answer_date").
			Values(businessID, fmt.Sprintf("Pergunta %d", k+1), "ANSWERED", at)); err != nil {
			return err
		}

		contentID, err := insertReturningID(ctx, tx, squirrel.
			Insert("content_page").
			Columns("business_id", "headline", "types", "created_on").
			Values(businessID, fmt.Sprintf("Conteúdo %d", k+1), "PDF", at))
		if err != nil {
			return err
		}

		if _, err := insertReturningID(ctx, tx, squirrel.
			Insert("social_post").
			Columns("business_id", "content_id", "status", "posted_date", "posted_via_platform").
			Values(businessID, contentID, "POSTED", at, k == 0)); err != nil {
			return err
		}
	}

	// rascunhos e linhas que não contam como valuable moment
	if _, err := insertReturningID(ctx, tx, squirrel.
		Insert("emails").
		Columns("business_id", "subject", "status", "created_on").
		Values(businessID, "Rascunho", "DRAFT", now.Add(-time.Minute))); err != nil {
		return err
	}

	if _, err := insertReturningID(ctx, tx, squirrel.
		Insert("announcements").
		Columns("business_id", "category", "labels", "status", "created_on").
		Values(businessID, "ASX_ANNOUNCEMENT", pq.Array([]string{"PRICE_SENSITIVE"}), "PUBLISHED", now.Add(-time.Minute))); err != nil {
		return err
	}

	if _, err := insertReturningID(ctx, tx, squirrel.
		Insert("announcements").
		Columns("business_id", "category", "labels", "status", "created_on").
		Values(businessID, "GENERAL", pq.Array([]string{}), "DRAFT", now.Add(-time.Minute))); err != nil {
		return err
	}

	_, err := insertReturningID(ctx, tx, squirrel.
		Insert("reports").
		Columns("business_id", "status", "created_on").
		Values(businessID, "DRAFT", now.Add(-time.Minute)))
	return err
}
