package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carrega a identidade do administrador autenticado
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
