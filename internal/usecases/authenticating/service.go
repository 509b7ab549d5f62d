package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "valuable-moments-api"

type Authenticator interface {
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	Required() bool
}

type Service struct {
	adminEmail   string
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration
	required     bool
	now          func() time.Time
}

// NewService gera o hash da senha do administrador uma única vez, na subida
func NewService(cfg config.Auth) (*Service, error) {
	s := &Service{
		adminEmail: handleEmail(cfg.AdminEmail),
		secretKey:  []byte(cfg.Secret),
		tokenTTL:   cfg.TokenTTL,
		required:   cfg.Required,
		now:        time.Now,
	}

	if s.tokenTTL <= 0 {
		s.tokenTTL = 12 * time.Hour
	}

	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing admin password: %w", err)
		}
		s.passwordHash = hash
	}

	return s, nil
}

func (s *Service) Required() bool {
	return s.required
}

func (s *Service) configured() bool {
	return s.adminEmail != "" && len(s.passwordHash) > 0
}

// Login valida as credenciais do administrador e devolve um token assinado.
// Sem AUTH_SECRET o token vem vazio: o login só confirma as credenciais.
func (s *Service) Login(email, password string) (string, error) {
	if !s.configured() {
		return "", NewAuthError(ErrNotConfigured, apiErrors.ErrAuthNotConfigured, "")
	}

	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	emailMatches := subtle.ConstantTimeCompare([]byte(handleEmail(email)), []byte(s.adminEmail)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))

	if !emailMatches || passwordErr != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if len(s.secretKey) == 0 {
		return "", nil
	}

	token, err := s.generateJWT(s.adminEmail)
	if err != nil {
		return "", NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, err.Error())
	}

	return token, nil
}

func (s *Service) generateJWT(email string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, NewAuthError(ErrNotConfigured, apiErrors.ErrAuthNotConfigured, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func handleEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
