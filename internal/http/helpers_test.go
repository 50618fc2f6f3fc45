package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/catalog"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/payment"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

// fakeGateway lets tests script gateway behaviour and count upstream calls.
type fakeGateway struct {
	charge      *payment.Charge
	chargeErr   error
	status      payment.Status
	createCalls int
	lastRequest payment.ChargeRequest
}

func (f *fakeGateway) CreateCharge(_ context.Context, req payment.ChargeRequest) (*payment.Charge, error) {
	f.createCalls++
	f.lastRequest = req
	if f.chargeErr != nil {
		return nil, f.chargeErr
	}
	return f.charge, nil
}

func (f *fakeGateway) CheckStatus(context.Context, string) payment.Status {
	return f.status
}

type testEnv struct {
	server      *httptest.Server
	store       session.Store
	gateway     *fakeGateway
	lookup      func(ctx context.Context, cpf string) (map[string]any, error)
	attribution *httptest.Server
	attempts    *int // attribution hits
}

func newTestEnv(t *testing.T) *testEnv {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := session.NewRedisStore(client, time.Hour)
	repo := catalog.NewMemoryRepository()
	gw := &fakeGateway{
		charge: &payment.Charge{
			PixCode:       "000201teste",
			TransactionID: "tx_1",
			QRCodeURL:     "https://qr.example/render?data=000201teste&size=300x300",
		},
		status: payment.Status{IsPaid: false, Status: "PENDING"},
	}

	attempts := 0
	attributionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(attributionSrv.Close)

	env := &testEnv{
		store:       store,
		gateway:     gw,
		attribution: attributionSrv,
		attempts:    &attempts,
	}
	env.lookup = func(ctx context.Context, cpf string) (map[string]any, error) {
		return map[string]any{"nome": "Maria Souza", "cpf": cpf}, nil
	}

	waits := WaitDurations{
		AnalysisMin: 10 * time.Millisecond,
		AgentSearch: 9 * time.Second,
		AgentFound:  3 * time.Second,
	}

	logger := zap.NewNop()
	router := NewRouter(RouterDeps{
		Catalog: NewCatalogHandler(repo),
		Funnel:  NewFunnelHandler(store, repo, waits, logger),
		Analysis: NewAnalysisHandler(store, func(ctx context.Context, cpf string) (map[string]any, error) {
			return env.lookup(ctx, cpf)
		}, waits, logger),
		Chat:           NewChatHandler(store, ChatWidget{WidgetID: "atendimento-bot", APIHost: "https://chat.example"}, logger),
		Payment:        NewPaymentHandler(store, gw, payment.NewAttributionClient(attributionSrv.URL, "tok", time.Second), 13990, logger),
		RequestTimeout: 5 * time.Second,
	})

	env.server = httptest.NewServer(router)
	t.Cleanup(env.server.Close)
	return env
}

// seedFunnel walks a session through selection and tax id capture, the
// minimum state the later screens require.
func (e *testEnv) seedFunnel(t *testing.T, sessionID string) {
	resp := e.do(t, http.MethodPut, "/api/v1/funnel/selection", sessionID, map[string]any{
		"productId": "iphone-17",
		"color":     "Preto",
		"storage":   "256GB",
		"quantity":  1,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodPut, "/api/v1/funnel/cpf", sessionID, map[string]any{
		"cpf": "529.982.247-25",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// do issues a request carrying the given session id and decodes the JSON reply.
func (e *testEnv) do(t *testing.T, method, path, sessionID string, body any, out any) *http.Response {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reqBody)
	require.NoError(t, err)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
