package account

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	msgMissingFields   = "Campos obrigatórios: client_id, platform, account_id, account_name"
	msgInvalidPlatform = "Plataforma inválida. Use 'meta' ou 'google'"
	msgInvalidClientID = "clientId inválido"
	msgClientNotFound  = "Cliente não encontrado"
	msgQueryAccounts   = "Erro ao buscar contas"
	msgCreateAccount   = "Erro ao criar conta"
)

type AccountService interface {
	ListAccounts(ctx context.Context, filters domain.AdAccountFilters) ([]*domain.AdAccount, error)
	CreateAccount(ctx context.Context, request *domain.CreateAdAccountRequest) (*domain.AdAccount, error)
}

type Service struct {
	accountRepository repository.AccountRepository
}

func NewService(accountRepository repository.AccountRepository) AccountService {
	return &Service{
		accountRepository: accountRepository,
	}
}

// ParseListFilters converte os parâmetros de consulta em filtros; valores vazios são ignorados
func ParseListFilters(clientID, platform string) (domain.AdAccountFilters, error) {
	filters := domain.AdAccountFilters{}

	if clientID != "" {
		id, err := strconv.ParseInt(clientID, 10, 64)
		if err != nil {
			return filters, NewAccountError(ErrInvalidClientID, apiErrors.ErrInvalidFormat, msgInvalidClientID)
		}
		filters.ClientID = &id
	}

	if platform != "" {
		p := domain.Platform(platform)
		filters.Platform = &p
	}

	return filters, nil
}

func (s *Service) ListAccounts(ctx context.Context, filters domain.AdAccountFilters) ([]*domain.AdAccount, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar contas no banco de dados")
		return nil, NewAccountError(ErrQueryAccounts, apiErrors.ErrDatabaseOperation, msgQueryAccounts)
	}

	return accounts, nil
}

// validateCreateRequest aplica as validações de presença e de plataforma, nesta ordem
func validateCreateRequest(request *domain.CreateAdAccountRequest) error {
	if request == nil ||
		request.ClientID == 0 ||
		strings.TrimSpace(string(request.Platform)) == "" ||
		strings.TrimSpace(request.AccountID) == "" ||
		strings.TrimSpace(request.AccountName) == "" {
		return NewAccountError(ErrMissingFields, apiErrors.ErrMissingRequiredData, msgMissingFields)
	}

	if !request.Platform.IsValid() {
		return NewAccountError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, msgInvalidPlatform)
	}

	return nil
}

func (s *Service) CreateAccount(ctx context.Context, request *domain.CreateAdAccountRequest) (*domain.AdAccount, error) {
	if err := validateCreateRequest(request); err != nil {
		return nil, err
	}

	account := &domain.AdAccount{
		ClientID:    request.ClientID,
		Platform:    request.Platform,
		AccountID:   strings.TrimSpace(request.AccountID),
		AccountName: strings.TrimSpace(request.AccountName),
		Status:      domain.AdAccountStatusActive,
	}

	created, err := s.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			log.ForContext(ctx).Warnf("Cliente %d não encontrado ao criar conta", request.ClientID)
			return nil, NewAccountError(ErrClientNotFound, apiErrors.ErrResourceNotFound, msgClientNotFound)
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao criar conta no banco de dados")
		return nil, NewAccountError(ErrCreateAccount, apiErrors.ErrDatabaseOperation, msgCreateAccount)
	}

	log.ForContext(ctx).Infof("Conta %d criada para o cliente %d (%s)", created.ID, created.ClientID, created.Platform)

	return created, nil
}
