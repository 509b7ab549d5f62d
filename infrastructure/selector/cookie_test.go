package selector

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCookieSelector(t *testing.T) {
	s, err := NewCookieSelector(testSecret, true)
	require.NoError(t, err)

	t.Run("deve retornar UAT sem cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/environment", nil)

		assert.Equal(t, domain.EnvironmentUAT, s.Get(r))
	})

	t.Run("deve gravar cookie e ler de volta", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/environment", nil)

		require.NoError(t, s.Set(w, r, domain.EnvironmentPROD))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, SessionName, cookie.Name)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, cookieMaxAge, cookie.MaxAge)

		next := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		next.AddCookie(cookie)
		assert.Equal(t, domain.EnvironmentPROD, s.Get(next))
	})

	t.Run("deve ignorar cookie adulterado", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		r.AddCookie(&http.Cookie{Name: SessionName, Value: "adulterado"})

		assert.Equal(t, domain.EnvironmentUAT, s.Get(r))
	})

	t.Run("deve ignorar cookie assinado com outro segredo", func(t *testing.T) {
		other, err := NewCookieSelector("fedcba9876543210fedcba9876543210", true)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, other.Set(w, httptest.NewRequest(http.MethodPost, "/environment", nil), domain.EnvironmentPROD))

		r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		r.AddCookie(w.Result().Cookies()[0])

		assert.Equal(t, domain.EnvironmentUAT, s.Get(r))
	})

	t.Run("deve sobrescrever um cookie inválido ao gravar", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/environment", nil)
		r.AddCookie(&http.Cookie{Name: SessionName, Value: "adulterado"})

		require.NoError(t, s.Set(w, r, domain.EnvironmentPROD))

		next := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		next.AddCookie(w.Result().Cookies()[0])
		assert.Equal(t, domain.EnvironmentPROD, s.Get(next))
	})
}

func TestNewCookieSelector(t *testing.T) {
	_, err := NewCookieSelector("", true)
	assert.Error(t, err)
}
