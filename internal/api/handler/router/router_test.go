package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/api/accounts",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
		Middlewares: []func(http.Handler) http.Handler{mark("primeiro"), mark("segundo")},
	}))

	tests := []struct {
		name         string
		method       string
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Rota registrada",
			method:       http.MethodGet,
			target:       "/api/accounts",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Rota inexistente",
			method:       http.MethodGet,
			target:       "/api/campaigns",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"error":"Rota não encontrada","code":"NF_002"}`,
		},
		{
			name:         "Método não permitido",
			method:       http.MethodPut,
			target:       "/api/accounts",
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: `{"success":false,"error":"Método não permitido","code":"VAL_004"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
				return
			}
			assert.Equal(t, []string{"primeiro", "segundo"}, order)
		})
	}
}
