package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/client"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

const msgInvalidClientID = "ID do cliente inválido"

func ClientList(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, clients)
	})
}

func GetClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, msgInvalidClientID)
			return
		}

		c, err := service.GetClient(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, c)
	})
}

func CreateClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido")
			return
		}

		c, err := service.CreateClient(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, r, http.StatusCreated, c)
	})
}

// DeleteClient remove o cliente e suas contas
func DeleteClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, msgInvalidClientID)
			return
		}

		if err := service.DeleteClient(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, domain.DeleteClientResponse{ID: id})
	})
}
