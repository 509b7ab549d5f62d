package selector

import (
	"net/http"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

// Selector guarda o ambiente ativo. Get nunca falha: sem valor salvo (ou com valor
// ilegível) devolve o ambiente padrão.
type Selector interface {
	Get(r *http.Request) domain.Environment
	Set(w http.ResponseWriter, r *http.Request, env domain.Environment) error
}
