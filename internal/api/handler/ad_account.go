package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// AdAccountList lista as contas, aceitando os filtros opcionais clientId e platform
func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters, err := account.ParseListFilters(query.Get("clientId"), query.Get("platform"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		adAccounts, err := service.ListAccounts(r.Context(), filters)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, adAccounts)
	})
}

func CreateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateAdAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido")
			return
		}

		adAccount, err := service.CreateAccount(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, r, http.StatusCreated, adAccount)
	})
}
