package selector

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

func TestFileSelector(t *testing.T) {
	t.Run("deve retornar UAT quando nada foi gravado", func(t *testing.T) {
		s := NewFileSelector(filepath.Join(t.TempDir(), ".database-state"))

		assert.Equal(t, domain.EnvironmentUAT, s.Get(httptest.NewRequest("GET", "/", nil)))
	})

	t.Run("deve ler o valor gravado", func(t *testing.T) {
		s := NewFileSelector(filepath.Join(t.TempDir(), ".database-state"))

		require.NoError(t, s.Set(nil, nil, domain.EnvironmentPROD))

		assert.Equal(t, domain.EnvironmentPROD, s.Get(nil))
	})

	t.Run("deve manter a seleção entre instâncias do processo", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".database-state")

		require.NoError(t, NewFileSelector(path).Set(nil, nil, domain.EnvironmentPROD))

		restarted := NewFileSelector(path)
		assert.Equal(t, domain.EnvironmentPROD, restarted.Get(nil))
	})

	t.Run("deve ser idempotente ao gravar o mesmo ambiente", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".database-state")
		s := NewFileSelector(path)

		require.NoError(t, s.Set(nil, nil, domain.EnvironmentPROD))
		require.NoError(t, s.Set(nil, nil, domain.EnvironmentPROD))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "PROD", string(data))
	})

	t.Run("deve voltar para UAT com conteúdo inválido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".database-state")
		require.NoError(t, os.WriteFile(path, []byte("STAGING"), 0o600))

		assert.Equal(t, domain.EnvironmentUAT, NewFileSelector(path).Get(nil))
	})

	t.Run("deve aceitar espaços e quebra de linha no arquivo", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".database-state")
		require.NoError(t, os.WriteFile(path, []byte("PROD\n"), 0o600))

		assert.Equal(t, domain.EnvironmentPROD, NewFileSelector(path).Get(nil))
	})

	t.Run("deve voltar para UAT quando o caminho não é legível", func(t *testing.T) {
		// um diretório no lugar do arquivo provoca erro de leitura
		dir := t.TempDir()

		assert.Equal(t, domain.EnvironmentUAT, NewFileSelector(dir).Get(nil))
	})

	t.Run("deve falhar ao gravar em diretório inexistente", func(t *testing.T) {
		s := NewFileSelector(filepath.Join(t.TempDir(), "missing", ".database-state"))

		assert.Error(t, s.Set(nil, nil, domain.EnvironmentPROD))
		assert.Equal(t, domain.EnvironmentUAT, s.Get(nil))
	})

	t.Run("deve rejeitar ambiente inválido", func(t *testing.T) {
		s := NewFileSelector(filepath.Join(t.TempDir(), ".database-state"))

		assert.ErrorIs(t, s.Set(nil, nil, domain.Environment("DEV")), domain.ErrInvalidEnvironment)
	})
}
