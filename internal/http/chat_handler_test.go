package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandoff(t *testing.T) {
	env := newTestEnv(t)
	env.seedFunnel(t, "sess-chat")
	env.do(t, http.MethodPut, "/api/v1/funnel/payment-method", "sess-chat",
		map[string]any{"method": "store", "installments": 24}, nil)

	var handoff handoffResponse
	resp := env.do(t, http.MethodGet, "/api/v1/chat/handoff", "sess-chat", nil, &handoff)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	params, err := url.ParseQuery(handoff.Query)
	require.NoError(t, err)
	assert.Equal(t, "52998224725", params.Get("cpf"))
	assert.Equal(t, "iPhone 17", params.Get("iphone"))
	assert.Equal(t, "24", params.Get("parcela"))

	assert.Equal(t, "atendimento-bot", handoff.Widget.WidgetID)
	assert.Equal(t, "https://chat.example", handoff.Widget.APIHost)
}

func TestChatHandoffDefaultInstallments(t *testing.T) {
	env := newTestEnv(t)
	env.seedFunnel(t, "sess-chat2")

	var handoff handoffResponse
	resp := env.do(t, http.MethodGet, "/api/v1/chat/handoff", "sess-chat2", nil, &handoff)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	params, err := url.ParseQuery(handoff.Query)
	require.NoError(t, err)
	assert.Equal(t, "40", params.Get("parcela"))
}

func TestChatHandoffGuarded(t *testing.T) {
	env := newTestEnv(t)

	var guard guardResponse
	resp := env.do(t, http.MethodGet, "/api/v1/chat/handoff", "sess-chat3", nil, &guard)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "/cpf", guard.Redirect)
}
