package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func assertClientError(t *testing.T, err error, target error, code string) {
	t.Helper()

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.ErrorIs(t, err, target)
	assert.Equal(t, code, clientErr.Code)
}

func TestService_CreateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockClientRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Nome em branco", func(t *testing.T) {
		_, err := service.CreateClient(context.Background(), &domain.CreateClientRequest{Name: "  "})
		assertClientError(t, err, ErrNameRequired, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Nome é normalizado antes de persistir", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateClient(gomock.Any(), &domain.Client{Name: "Loja A"}).
			Return(&domain.Client{ID: 3, Name: "Loja A"}, nil)

		created, err := service.CreateClient(context.Background(), &domain.CreateClientRequest{Name: " Loja A "})
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
	})

	t.Run("Erro do banco", func(t *testing.T) {
		mockRepo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := service.CreateClient(context.Background(), &domain.CreateClientRequest{Name: "Loja B"})
		assertClientError(t, err, ErrDatabaseFailure, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_GetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockClientRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetClientByID(gomock.Any(), int64(1)).Return(&domain.Client{ID: 1, Name: "Loja A"}, nil)
	mockRepo.EXPECT().GetClientByID(gomock.Any(), int64(2)).Return(nil, nil)

	client, err := service.GetClient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Loja A", client.Name)

	_, err = service.GetClient(context.Background(), 2)
	assertClientError(t, err, ErrClientNotFound, apiErrors.ErrResourceNotFound)
}

func TestService_DeleteClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockClientRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().DeleteClient(gomock.Any(), int64(1)).Return(true, nil)
	mockRepo.EXPECT().DeleteClient(gomock.Any(), int64(2)).Return(false, nil)
	mockRepo.EXPECT().DeleteClient(gomock.Any(), int64(3)).Return(false, errors.New("boom"))

	assert.NoError(t, service.DeleteClient(context.Background(), 1))
	assertClientError(t, service.DeleteClient(context.Background(), 2), ErrClientNotFound, apiErrors.ErrResourceNotFound)
	assertClientError(t, service.DeleteClient(context.Background(), 3), ErrDatabaseFailure, apiErrors.ErrDatabaseOperation)
}

func TestService_ListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockClientRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ListClients(gomock.Any()).Return([]*domain.Client{{ID: 1}}, nil)
	mockRepo.EXPECT().ListClients(gomock.Any()).Return(nil, errors.New("boom"))

	clients, err := service.ListClients(context.Background())
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	_, err = service.ListClients(context.Background())
	assertClientError(t, err, ErrDatabaseFailure, apiErrors.ErrDatabaseOperation)
}
