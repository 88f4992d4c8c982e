package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/client"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if cfg.Database.Migrate {
		if err := migration.Run(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migração do schema")
		}
	}

	accountRepo := repository.NewAccountRepository(conn)
	clientRepo := repository.NewClientRepository(conn)

	accountService := account.NewService(accountRepo)
	clientService := client.NewService(clientRepo)

	accountsReportService := scheduler.NewAccountsReportService(accountRepo, cfg)
	if err := accountsReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de contas")
	}

	server, err := api.New(
		cfg,
		conn,
		accountService,
		clientService,
		accountsReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn cria uma conexão com o banco de dados
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Dialect()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
