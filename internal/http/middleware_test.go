package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddlewareMintsID(t *testing.T) {
	var seen string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = sessionIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Session-ID"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "funnel_session", cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
}

func TestSessionMiddlewareHeaderWinsOverCookie(t *testing.T) {
	var seen string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = sessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-ID", "from-header")
	req.AddCookie(&http.Cookie{Name: "funnel_session", Value: "from-cookie"})

	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "from-header", seen)
}

func TestSessionMiddlewareCookieFallback(t *testing.T) {
	var seen string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = sessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "funnel_session", Value: "from-cookie"})

	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "from-cookie", seen)
}
