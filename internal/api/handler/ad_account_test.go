package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool                `json:"success"`
	Data    jsoniter.RawMessage `json:"data"`
	Error   string              `json:"error"`
	Code    string              `json:"code"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (envelope, map[string]any) {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	return env, raw
}

func serve(rt router.Router, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestAdAccountList(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	accounts := []*domain.AdAccount{
		{ID: 1, ClientID: 1, Platform: domain.PlatformMeta, AccountID: "act_1", AccountName: "Main", Status: domain.AdAccountStatusActive, CreatedAt: now, UpdatedAt: now},
	}

	tests := []struct {
		name         string
		target       string
		setup        func(mock *mocks.MockAccountService)
		expectedCode int
		validate     func(t *testing.T, env envelope, raw map[string]any)
	}{
		{
			name:   "Sem filtros",
			target: "/api/accounts",
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().ListAccounts(gomock.Any(), domain.AdAccountFilters{}).Return(accounts, nil)
			},
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, env envelope, raw map[string]any) {
				assert.True(t, env.Success)
				var got []*domain.AdAccount
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, accounts, got)
			},
		},
		{
			name:   "Filtros combinados",
			target: "/api/accounts?clientId=7&platform=google",
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().
					ListAccounts(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.AdAccountFilters) ([]*domain.AdAccount, error) {
						require.NotNil(t, filters.ClientID)
						require.NotNil(t, filters.Platform)
						assert.Equal(t, int64(7), *filters.ClientID)
						assert.Equal(t, domain.PlatformGoogle, *filters.Platform)
						return []*domain.AdAccount{}, nil
					})
			},
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, env envelope, raw map[string]any) {
				assert.True(t, env.Success)
				assert.JSONEq(t, `[]`, string(env.Data))
			},
		},
		{
			name:         "clientId não numérico",
			target:       "/api/accounts?clientId=abc",
			setup:        func(mock *mocks.MockAccountService) {},
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, env envelope, raw map[string]any) {
				assert.False(t, env.Success)
				assert.Equal(t, "clientId inválido", env.Error)
				assert.NotContains(t, raw, "data")
			},
		},
		{
			name:   "Falha de consulta",
			target: "/api/accounts",
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
					Return(nil, account.NewAccountError(account.ErrQueryAccounts, apiErrors.ErrDatabaseOperation, "Erro ao buscar contas"))
			},
			expectedCode: http.StatusInternalServerError,
			validate: func(t *testing.T, env envelope, raw map[string]any) {
				assert.False(t, env.Success)
				assert.Equal(t, "Erro ao buscar contas", env.Error)
				assert.NotContains(t, raw, "data")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockAccountService(ctrl)
			tt.setup(mockService)

			rt := router.New(router.WithRoutes(AdAccounts(mockService)...))
			rec := serve(rt, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			env, raw := decodeEnvelope(t, rec)
			tt.validate(t, env, raw)
		})
	}
}

func TestCreateAdAccount(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	validBody := `{"client_id":1,"platform":"meta","account_id":"act_123","account_name":"Main"}`

	tests := []struct {
		name          string
		body          string
		setup         func(mock *mocks.MockAccountService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Criação com sucesso",
			body: validBody,
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().
					CreateAccount(gomock.Any(), &domain.CreateAdAccountRequest{
						ClientID:    1,
						Platform:    domain.PlatformMeta,
						AccountID:   "act_123",
						AccountName: "Main",
					}).
					Return(&domain.AdAccount{
						ID: 10, ClientID: 1, Platform: domain.PlatformMeta, AccountID: "act_123",
						AccountName: "Main", Status: domain.AdAccountStatusActive, CreatedAt: now, UpdatedAt: now,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "JSON malformado",
			body:          `{"client_id":`,
			setup:         func(mock *mocks.MockAccountService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Corpo da requisição inválido",
		},
		{
			name: "Plataforma inválida",
			body: `{"client_id":1,"platform":"tiktok","account_id":"x","account_name":"y"}`,
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil, account.NewAccountError(account.ErrInvalidPlatform, apiErrors.ErrInvalidRequest, "Plataforma inválida. Use 'meta' ou 'google'"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Plataforma inválida. Use 'meta' ou 'google'",
		},
		{
			name: "Cliente inexistente",
			body: `{"client_id":999,"platform":"meta","account_id":"x","account_name":"y"}`,
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil, account.NewAccountError(account.ErrClientNotFound, apiErrors.ErrResourceNotFound, "Cliente não encontrado"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Cliente não encontrado",
		},
		{
			name: "Erro inesperado não vaza detalhes",
			body: validBody,
			setup: func(mock *mocks.MockAccountService) {
				mock.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("pq: connection refused to 10.0.0.1"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Erro interno no servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockAccountService(ctrl)
			tt.setup(mockService)

			rt := router.New(router.WithRoutes(AdAccounts(mockService)...))
			rec := serve(rt, http.MethodPost, "/api/accounts", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			env, raw := decodeEnvelope(t, rec)

			if tt.expectedError != "" {
				assert.False(t, env.Success)
				assert.Equal(t, tt.expectedError, env.Error)
				assert.NotContains(t, raw, "data")
				return
			}

			assert.True(t, env.Success)
			var created domain.AdAccount
			require.NoError(t, json.Unmarshal(env.Data, &created))
			assert.Equal(t, int64(10), created.ID)
			assert.Equal(t, domain.AdAccountStatusActive, created.Status)
		})
	}
}
