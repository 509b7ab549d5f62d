package migration

import (
	"context"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Run("deve carregar a primeira versão", func(t *testing.T) {
		source, err := iofs.New(migrationsFS, "migrations")
		require.NoError(t, err)
		defer source.Close()

		version, err := source.First()
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)
	})

	t.Run("deve criar todas as tabelas consultadas", func(t *testing.T) {
		up, err := fs.ReadFile(migrationsFS, "migrations/000001_create_valuable_moment_tables.up.sql")
		require.NoError(t, err)

		for _, table := range []string{"users", "emails", "questions", "social_post", "content_page", "announcements", "reports"} {
			assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table+" (")
		}
	})
}

func TestSeed_OpcoesInvalidas(t *testing.T) {
	for _, businesses := range []int{0, -1, 29} {
		_, err := Seed(context.Background(), nil, SeedOptions{Businesses: businesses})
		assert.ErrorIs(t, err, ErrInvalidSeedOptions)
	}
}

func TestExpectedTotal(t *testing.T) {
	assert.Equal(t, int64(6), ExpectedTotal(0))
	assert.Equal(t, int64(14), ExpectedTotal(2))
}
