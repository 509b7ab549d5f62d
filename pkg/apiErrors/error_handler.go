package apiErrors

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrTooManyAttempts    = "AUTH_011" // Muitas tentativas de login

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidEnvironment  = "VAL_004" // Ambiente desconhecido
	ErrInvalidDetailType   = "VAL_005" // Tipo de detalhe desconhecido

	// Recursos inexistentes
	ErrBusinessNotFound = "NOT_FOUND_001" // Empresa não encontrada
	ErrRouteNotFound    = "NOT_FOUND_002" // Rota inexistente
	ErrMethodNotAllowed = "REQ_001"       // Método não suportado na rota

	// Erros de configuração
	ErrAuthNotConfigured     = "CFG_001" // Login de administrador não configurado
	ErrDatabaseNotConfigured = "CFG_002" // Credenciais do ambiente ausentes

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrConnectionFailed  = "SRV_005" // Falha ao conectar no banco
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrTooManyAttempts:       http.StatusTooManyRequests,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidEnvironment:    http.StatusBadRequest,
	ErrInvalidDetailType:     http.StatusBadRequest,
	ErrBusinessNotFound:      http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrAuthNotConfigured:     http.StatusInternalServerError,
	ErrDatabaseNotConfigured: http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrConnectionFailed:      http.StatusInternalServerError,
}

// APIError é o envelope de erro de todas as rotas
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// DriverDetails expõe código e mensagem do postgres
type DriverDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}

	switch {
	case strings.HasPrefix(code, "VAL_"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "NOT_FOUND_"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "AUTH_"):
		return http.StatusUnauthorized
	}

	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// DetailsFromError extrai os detalhes do driver quando o erro vem do postgres
func DetailsFromError(err error) any {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return DriverDetails{
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
			Hint:    pqErr.Hint,
		}
	}

	return nil
}
