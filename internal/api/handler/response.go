package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/client"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SuccessResponse é o envelope de sucesso da API
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(SuccessResponse{Success: true, Data: data})
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever resposta")
	}
}

// writeServiceError converte erros dos casos de uso no envelope de falha.
// Erros sem código conhecido viram 500 com mensagem genérica.
func writeServiceError(w http.ResponseWriter, err error) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Details)
		return
	}

	var clientErr *client.ClientError
	if errors.As(err, &clientErr) {
		apiErrors.WriteError(w, clientErr.Code, clientErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor")
}

// pathID lê o parâmetro :id da rota como inteiro positivo
func pathID(r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
