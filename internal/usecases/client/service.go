package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrNameRequired    = errors.New("client name is required")
	ErrClientNotFound  = errors.New("client not found")
	ErrDatabaseFailure = errors.New("database operation error")
)

// ClientError carrega o código da API e a mensagem exibida ao cliente
type ClientError struct {
	Err     error
	Code    string
	Details string
}

func (e *ClientError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func newClientError(err error, code, details string) *ClientError {
	return &ClientError{Err: err, Code: code, Details: details}
}

type ClientService interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, clientID int64) (*domain.Client, error)
	CreateClient(ctx context.Context, request *domain.CreateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

type Service struct {
	clientRepository repository.ClientRepository
}

func NewService(clientRepository repository.ClientRepository) ClientService {
	return &Service{
		clientRepository: clientRepository,
	}
}

func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clientRepository.ListClients(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar clientes")
		return nil, newClientError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, "Erro ao buscar clientes")
	}

	return clients, nil
}

func (s *Service) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepository.GetClientByID(ctx, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar cliente")
		return nil, newClientError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente")
	}

	if client == nil {
		return nil, newClientError(ErrClientNotFound, apiErrors.ErrResourceNotFound, "Cliente não encontrado")
	}

	return client, nil
}

func (s *Service) CreateClient(ctx context.Context, request *domain.CreateClientRequest) (*domain.Client, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, newClientError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório")
	}

	client, err := s.clientRepository.CreateClient(ctx, &domain.Client{Name: strings.TrimSpace(request.Name)})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar cliente")
		return nil, newClientError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente")
	}

	return client, nil
}

// DeleteClient remove o cliente e, por cascata no banco, todas as suas contas de anúncio
func (s *Service) DeleteClient(ctx context.Context, clientID int64) error {
	deleted, err := s.clientRepository.DeleteClient(ctx, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover cliente")
		return newClientError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, "Erro ao remover cliente")
	}

	if !deleted {
		return newClientError(ErrClientNotFound, apiErrors.ErrResourceNotFound, "Cliente não encontrado")
	}

	log.ForContext(ctx).Infof("Cliente %d removido", clientID)

	return nil
}
