package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

const (
	accountsTable = "ad_accounts"
	clientsTable  = "clients"
)

var accountColumns = []string{
	"id",
	"client_id",
	"platform",
	"account_id",
	"account_name",
	"status",
	"created_at",
	"updated_at",
}

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, filters domain.AdAccountFilters) ([]*domain.AdAccount, error)
	CreateAccount(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error)
	SummarizeAccounts(ctx context.Context) ([]*domain.AccountsSummaryItem, error)
}

type accountRepository struct {
	conn database.Conn
}

func NewAccountRepository(conn database.Conn) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID int64) (*domain.AdAccount, error) {
	return a.getAccount(ctx, a.conn, squirrel.Eq{"id": accountID})
}

func (a *accountRepository) getAccount(ctx context.Context, q database.Queryer, whereClause squirrel.Eq) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := a.conn.Builder().
		Select(accountColumns...).
		From(accountsTable).
		Where(whereClause).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	acc, err := deserializeAccount(q.QueryRowContext(ctx, accountsSQL, accountsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to scan account")
	}

	return acc, nil
}

// accountFilterPredicates monta a lista de predicados (AND) apenas com os filtros presentes
func accountFilterPredicates(filters domain.AdAccountFilters) squirrel.Eq {
	predicates := squirrel.Eq{}

	if filters.ClientID != nil {
		predicates["client_id"] = *filters.ClientID
	}

	if filters.Platform != nil {
		predicates["platform"] = string(*filters.Platform)
	}

	return predicates
}

func (a *accountRepository) ListAccounts(ctx context.Context, filters domain.AdAccountFilters) ([]*domain.AdAccount, error) {
	queryBuilder := a.conn.Builder().
		Select(accountColumns...).
		From(accountsTable)

	if predicates := accountFilterPredicates(filters); len(predicates) > 0 {
		queryBuilder = queryBuilder.Where(predicates)
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)

	for rows.Next() {
		acc, err := deserializeAccount(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan account")
		}

		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate accounts")
	}

	return accounts, nil
}

// CreateAccount verifica a existência do cliente e insere a conta na mesma transação.
// Retorna ErrClientNotFound quando o cliente não existe ou foi removido concorrentemente.
func (a *accountRepository) CreateAccount(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error) {
	var created *domain.AdAccount

	err := a.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		exists, err := a.clientExists(ctx, tx, account.ClientID)
		if err != nil {
			return err
		}

		if !exists {
			return ErrClientNotFound
		}

		now := time.Now().UTC()
		if account.Status == "" {
			account.Status = domain.AdAccountStatusActive
		}

		insertSQL, insertArgs, err := a.conn.Builder().
			Insert(accountsTable).
			Columns("client_id", "platform", "account_id", "account_name", "status", "created_at", "updated_at").
			Values(
				account.ClientID,
				string(account.Platform),
				account.AccountID,
				account.AccountName,
				string(account.Status),
				now,
				now,
			).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return errors.Wrap(err, "failed to build query")
		}

		var id int64
		if err := tx.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&id); err != nil {
			if isForeignKeyViolation(err) {
				return ErrClientNotFound
			}
			return errors.Wrap(err, "failed to insert account")
		}

		created, err = a.getAccount(ctx, tx, squirrel.Eq{"id": id})
		if err != nil {
			return err
		}

		if created == nil {
			return errors.Errorf("account %d not found after insert", id)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// clientExists consulta o cliente; no Postgres a linha fica bloqueada para remoção até o fim da transação
func (a *accountRepository) clientExists(ctx context.Context, q database.Queryer, clientID int64) (bool, error) {
	queryBuilder := a.conn.Builder().
		Select("1").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID})

	if a.conn.Dialect() == config.DriverPostgres {
		queryBuilder = queryBuilder.Suffix("FOR SHARE")
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, errors.Wrap(err, "failed to build query")
	}

	var found int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to check client")
	}

	return true, nil
}

func (a *accountRepository) SummarizeAccounts(ctx context.Context) ([]*domain.AccountsSummaryItem, error) {
	query, args, err := a.conn.Builder().
		Select("platform", "status", "COUNT(*)").
		From(accountsTable).
		GroupBy("platform", "status").
		OrderBy("platform ASC", "status ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	summary := make([]*domain.AccountsSummaryItem, 0)
	for rows.Next() {
		item := &domain.AccountsSummaryItem{}
		if err := rows.Scan(&item.Platform, &item.Status, &item.Quantity); err != nil {
			return nil, errors.Wrap(err, "failed to scan summary")
		}
		summary = append(summary, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate summary")
	}

	return summary, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.ClientID,
		&acc.Platform,
		&acc.AccountID,
		&acc.AccountName,
		&acc.Status,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
