// Package migration cria e popula o schema usado pela API.
package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		platform TEXT NOT NULL CHECK (platform IN ('meta', 'google')),
		account_id TEXT NOT NULL,
		account_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_accounts_client_id ON ad_accounts(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_accounts_platform ON ad_accounts(platform)`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		platform TEXT NOT NULL CHECK (platform IN ('meta', 'google')),
		account_id TEXT NOT NULL,
		account_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_accounts_client_id ON ad_accounts(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_accounts_platform ON ad_accounts(platform)`,
}

// Statements retorna o DDL do dialeto informado
func Statements(dialect string) ([]string, error) {
	switch dialect {
	case config.DriverPostgres:
		return postgresStatements, nil
	case config.DriverSQLite:
		return sqliteStatements, nil
	default:
		return nil, fmt.Errorf("migration: dialeto não suportado: %q", dialect)
	}
}

// Run aplica o schema de forma idempotente
func Run(ctx context.Context, conn database.Conn) error {
	stmts, err := Statements(conn.Dialect())
	if err != nil {
		return err
	}

	startTime := time.Now()
	for i, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration: erro ao executar statement %d: %w", i+1, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"statements": len(stmts),
		"dialect":    conn.Dialect(),
		"duration":   time.Since(startTime).String(),
	}).Info("Migração do schema concluída")

	return nil
}
