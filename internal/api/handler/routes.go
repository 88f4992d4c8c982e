package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/client"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/api/accounts",
			Method:  http.MethodPost,
			Handler: CreateAdAccount(service),
		},
	}
}

func Clients(service client.ClientService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/clients",
			Method:  http.MethodGet,
			Handler: ClientList(service),
		},
		{
			Path:    "/api/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:    "/api/clients/:id",
			Method:  http.MethodGet,
			Handler: GetClient(service),
		},
		{
			Path:    "/api/clients/:id",
			Method:  http.MethodDelete,
			Handler: DeleteClient(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
