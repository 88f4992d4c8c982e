package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	_ "modernc.org/sqlite"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Dialect() string
	Builder() squirrel.StatementBuilderType
}

type Connection struct {
	*sql.DB
	dialect string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver := strings.ToLower(cfg.Driver)

	switch driver {
	case config.DriverPostgres:
		return open(ctx, "postgres", cfg.DSN, driver)
	case config.DriverSQLite:
		return open(ctx, "sqlite", sqliteDSN(cfg.DSN), driver)
	default:
		return nil, fmt.Errorf("database: driver não suportado: %q", cfg.Driver)
	}
}

func open(ctx context.Context, driverName, dsn, dialect string) (*Connection, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if dialect == config.DriverSQLite {
		// O SQLite serializa escritas; uma única conexão também mantém bancos ":memory:" consistentes
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logrus.WithField("dialect", dialect).Debug("Conexão com o banco de dados aberta")

	return &Connection{DB: db, dialect: dialect}, nil
}

// sqliteDSN garante que as chaves estrangeiras estejam habilitadas em toda conexão
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_pragma=foreign_keys(1)"
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Dialect() string {
	return c.dialect
}

// Builder retorna um StatementBuilder com o formato de placeholder do dialeto
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.dialect == config.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}

	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("Erro ao desfazer transação")
		}
		return err
	}

	return tx.Commit()
}
