package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

const CronJobTypeAccountsReport = "accounts-report"

// CronJob é o contrato dos jobs que podem ser disparados manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	AccountsReportService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		var job CronJob
		switch cronType {
		case CronJobTypeAccountsReport:
			job = services.AccountsReportService
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: accounts-report")
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cron job não disponível")
			return
		}

		started := job.TriggerManualSync()
		log.ForContext(r.Context()).WithField("type", cronType).Infof("Execução manual solicitada, iniciada: %t", started)

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já em andamento"
		}

		writeSuccess(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AccountsReportService != nil {
			status[CronJobTypeAccountsReport] = services.AccountsReportService.GetStatus()
		}

		writeSuccess(w, r, http.StatusOK, status)
	})
}
