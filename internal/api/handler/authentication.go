package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		token, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		log.ForContext(ctx).Info("Login de administrador realizado")

		writeJSON(ctx, w, http.StatusOK, LoginResponse{
			Success: true,
			Token:   token,
		})
	}
}

// handleLoginError usa o código do AuthError quando disponível
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		switch {
		case errors.Is(err, authenticating.ErrInvalidCredentials):
			logger.Warn("Tentativa de login com credenciais inválidas")
			apiErrors.WriteError(w, authErr.Code, "Invalid credentials", nil)
		case errors.Is(err, authenticating.ErrNotConfigured):
			logger.Error("Login de administrador não configurado")
			apiErrors.WriteError(w, authErr.Code, "Authentication not configured", nil)
		case errors.Is(err, authenticating.ErrMissingRequiredData):
			apiErrors.WriteError(w, authErr.Code, "Email and password are required", nil)
		default:
			logger.Error("Erro ao realizar login")
			apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		}
		return
	}

	logger.Error("Erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal error during login", nil)
}
