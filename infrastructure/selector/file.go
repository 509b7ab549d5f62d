package selector

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

// FileSelector persiste o ambiente num arquivo marcador compartilhado por todo o processo
type FileSelector struct {
	path string
	mu   sync.RWMutex
}

func NewFileSelector(path string) *FileSelector {
	return &FileSelector{path: path}
}

func (s *FileSelector) Get(r *http.Request) domain.Environment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger := log.L
	if r != nil {
		logger = log.ForContext(r.Context())
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warnf("Não foi possível ler o arquivo de ambiente %s", s.path)
		}
		return domain.DefaultEnvironment
	}

	env, err := domain.ParseEnvironment(strings.TrimSpace(string(data)))
	if err != nil {
		logger.Warnf("Conteúdo inválido no arquivo de ambiente %s, usando %s", s.path, domain.DefaultEnvironment)
		return domain.DefaultEnvironment
	}

	return env
}

// Set grava num arquivo temporário e renomeia, para que uma leitura concorrente
// nunca veja o arquivo pela metade
func (s *FileSelector) Set(_ http.ResponseWriter, _ *http.Request, env domain.Environment) error {
	if !env.IsValid() {
		return domain.ErrInvalidEnvironment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".database-state-*")
	if err != nil {
		return fmt.Errorf("error creating environment state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(env.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing environment state file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing environment state file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing environment state file: %w", err)
	}

	return nil
}
