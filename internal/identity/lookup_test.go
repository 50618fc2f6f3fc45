package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/52998224725", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"nome":"Maria Souza","data_nascimento":"1990-01-01","sexo":"F"}`))
	}))
	defer srv.Close()

	c := NewLookupClient(srv.URL, 5*time.Second)
	data, err := c.Lookup(context.Background(), "529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", data["nome"])
	assert.Equal(t, "F", data["sexo"])
}

func TestLookup_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewLookupClient(srv.URL, 5*time.Second)
	_, err := c.Lookup(context.Background(), "52998224725")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewLookupClient(srv.URL, 5*time.Second)
	_, err := c.Lookup(context.Background(), "52998224725")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_EmptyCPF(t *testing.T) {
	c := NewLookupClient("http://localhost:0", time.Second)
	_, err := c.Lookup(context.Background(), "...")
	assert.ErrorIs(t, err, ErrLookupFailed)
}
