package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	seed := flag.Bool("seed", false, "popula o banco com clientes e contas de demonstração")
	clients := flag.Int("clients", 3, "quantidade de clientes criados com -seed")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := migration.Run(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migração do schema")
	}

	if !*seed {
		return
	}

	result, err := Seed(ctx, repository.NewClientRepository(conn), repository.NewAccountRepository(conn), *clients)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular o banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"clients":  result.Clients,
		"accounts": result.Accounts,
	}).Info("Dados de demonstração criados")
}
