package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

// MaxDays limita a janela das consultas
const MaxDays = 3650

var (
	ErrInvalidDays        = errors.New("days must be a positive integer")
	ErrInvalidBusinessIDs = errors.New("businessIds must be a comma separated list of integers")
	ErrInvalidID          = errors.New("id must be a positive integer")
)

// ParseDays lê o parâmetro days; ausente vira domain.DefaultDays
func ParseDays(query url.Values) (int, error) {
	raw := strings.TrimSpace(query.Get("days"))
	if raw == "" {
		return domain.DefaultDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 || days > MaxDays {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDays, raw)
	}

	return days, nil
}

// ParseBusinessIDs lê uma lista CSV de ids. Lista vazia significa todas as empresas.
// Ids repetidos são descartados mantendo a ordem.
func ParseBusinessIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := ParseID(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBusinessIDs, part)
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return ids, nil
}

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
