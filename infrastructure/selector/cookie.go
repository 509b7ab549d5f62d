package selector

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

const (
	SessionName    = "selected-database"
	environmentKey = "environment"
	cookieMaxAge   = 30 * 24 * 60 * 60 // 30 dias
)

// CookieSelector guarda o ambiente numa sessão assinada, por cliente
type CookieSelector struct {
	store *sessions.CookieStore
}

func NewCookieSelector(secret string, secure bool) (*CookieSelector, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieSelector{store: store}, nil
}

func (s *CookieSelector) Get(r *http.Request) domain.Environment {
	logger := log.ForContext(r.Context())

	sess, err := s.store.Get(r, SessionName)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			logger.Warn("Cookie de ambiente inválido ou expirado, usando o padrão")
		} else {
			logger.WithError(err).Warn("Erro ao ler cookie de ambiente")
		}
		return domain.DefaultEnvironment
	}

	value, _ := sess.Values[environmentKey].(string)
	if value == "" {
		return domain.DefaultEnvironment
	}

	env, err := domain.ParseEnvironment(value)
	if err != nil {
		logger.Warnf("Ambiente inválido no cookie: %q", value)
		return domain.DefaultEnvironment
	}

	return env
}

func (s *CookieSelector) Set(w http.ResponseWriter, r *http.Request, env domain.Environment) error {
	if !env.IsValid() {
		return domain.ErrInvalidEnvironment
	}

	// Get devolve uma sessão nova mesmo quando o cookie atual não decodifica
	sess, _ := s.store.Get(r, SessionName)
	sess.Values[environmentKey] = env.String()

	return sess.Save(r, w)
}
