package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type ClientRepository interface {
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID int64) (bool, error)
}

type clientRepository struct {
	conn database.Conn
}

func NewClientRepository(conn database.Conn) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query, args, err := r.conn.Builder().
		Select("id", "name", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	client := &domain.Client{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to scan client")
	}

	return client, nil
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	query, args, err := r.conn.Builder().
		Select("id", "name", "created_at", "updated_at").
		From(clientsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(&client.ID, &client.Name, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan client")
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}

func (r *clientRepository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	now := time.Now().UTC()

	query, args, err := r.conn.Builder().
		Insert(clientsTable).
		Columns("name", "created_at", "updated_at").
		Values(client.Name, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&client.ID); err != nil {
		return nil, errors.Wrap(err, "failed to insert client")
	}

	client.CreatedAt = now
	client.UpdatedAt = now

	return client, nil
}

// DeleteClient remove o cliente; as contas vinculadas são removidas pelo ON DELETE CASCADE
func (r *clientRepository) DeleteClient(ctx context.Context, clientID int64) (bool, error) {
	query, args, err := r.conn.Builder().
		Delete(clientsTable).
		Where(squirrel.Eq{"id": clientID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "failed to execute query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "error getting rows affected")
	}

	return rowsAffected > 0, nil
}
