package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/client"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type testResponse struct {
	Success bool                `json:"success"`
	Data    jsoniter.RawMessage `json:"data"`
	Error   string              `json:"error"`
}

func setupServer(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	conn, err := database.NewConnection(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migration.Run(ctx, conn))

	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		AccountsReport: config.AccountsReport{
			CronSchedule: "0 7 * * *",
		},
	}

	accountRepo := repository.NewAccountRepository(conn)
	clientRepo := repository.NewClientRepository(conn)

	srv, err := New(
		cfg,
		conn,
		account.NewService(accountRepo),
		client.NewService(clientRepo),
		scheduler.NewAccountsReportService(accountRepo, cfg),
	)
	require.NoError(t, err)

	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, testResponse) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp testResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func TestServer_AccountsFlow(t *testing.T) {
	h := setupServer(t)

	status, resp := do(t, h, http.MethodPost, "/api/clients", `{"name":"Ótica Central"}`)
	require.Equal(t, http.StatusCreated, status)
	var c struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &c))

	t.Run("Criação de conta", func(t *testing.T) {
		body := `{"client_id":` + jsonInt(c.ID) + `,"platform":"meta","account_id":"act_123","account_name":"Main"}`
		status, resp := do(t, h, http.MethodPost, "/api/accounts", body)

		require.Equal(t, http.StatusCreated, status)
		assert.True(t, resp.Success)

		var created map[string]any
		require.NoError(t, json.Unmarshal(resp.Data, &created))
		assert.NotZero(t, created["id"])
		assert.Equal(t, "active", created["status"])
		assert.Equal(t, "meta", created["platform"])
	})

	t.Run("Cliente inexistente", func(t *testing.T) {
		status, resp := do(t, h, http.MethodPost, "/api/accounts", `{"client_id":999,"platform":"meta","account_id":"x","account_name":"y"}`)

		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, resp.Success)
		assert.Equal(t, "Cliente não encontrado", resp.Error)
		assert.Nil(t, resp.Data)
	})

	t.Run("Plataforma inválida", func(t *testing.T) {
		status, resp := do(t, h, http.MethodPost, "/api/accounts", `{"client_id":999,"platform":"tiktok","account_id":"x","account_name":"y"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})

	t.Run("Listagem com filtros", func(t *testing.T) {
		status, resp := do(t, h, http.MethodGet, "/api/accounts?platform=meta&clientId="+jsonInt(c.ID), "")
		require.Equal(t, http.StatusOK, status)

		var accounts []map[string]any
		require.NoError(t, json.Unmarshal(resp.Data, &accounts))
		assert.Len(t, accounts, 1)

		status, resp = do(t, h, http.MethodGet, "/api/accounts?platform=google", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(resp.Data))
	})

	t.Run("Remoção do cliente remove as contas", func(t *testing.T) {
		status, _ := do(t, h, http.MethodDelete, "/api/clients/"+jsonInt(c.ID), "")
		require.Equal(t, http.StatusOK, status)

		status, resp := do(t, h, http.MethodGet, "/api/accounts", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(resp.Data))

		status, _ = do(t, h, http.MethodGet, "/api/clients/"+jsonInt(c.ID), "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestServer_Healthcheck(t *testing.T) {
	h := setupServer(t)

	status, resp := do(t, h, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
