package moments

import (
	"errors"
	"fmt"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrInvalidBusinessID = errors.New("invalid business id")
	ErrAggregation       = errors.New("error aggregating valuable moments")
	ErrDailySeries       = errors.New("error fetching daily valuable moments")
	ErrDetails           = errors.New("error fetching valuable moment details")
)

// MomentError identifica a categoria que falhou numa agregação
type MomentError struct {
	Err      error           // Erro base
	Category domain.Category // Categoria que falhou (quando aplicável)
	Cause    error           // Erro original do repositório
}

func (e *MomentError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: %s: %v", e.Err.Error(), e.Category, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap expõe tanto o erro base quanto a causa para errors.Is/As
func (e *MomentError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewMomentError(err error, category domain.Category, cause error) *MomentError {
	return &MomentError{
		Err:      err,
		Category: category,
		Cause:    cause,
	}
}
