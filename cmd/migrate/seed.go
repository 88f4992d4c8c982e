package main

import (
	"context"
	"fmt"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type SeedResult struct {
	Clients  int
	Accounts int
}

// Seed cria n clientes, cada um com uma conta Meta e uma conta Google
func Seed(ctx context.Context, clientRepo repository.ClientRepository, accountRepo repository.AccountRepository, n int) (SeedResult, error) {
	var result SeedResult

	for i := 0; i < n; i++ {
		suffix, err := utils.GenerateID()
		if err != nil {
			return result, err
		}

		c, err := clientRepo.CreateClient(ctx, &domain.Client{Name: fmt.Sprintf("Cliente Demo %s", suffix)})
		if err != nil {
			return result, fmt.Errorf("erro ao criar cliente: %w", err)
		}
		result.Clients++

		metaID, err := utils.GenerateMetaAccountID()
		if err != nil {
			return result, err
		}
		googleID, err := utils.GenerateGoogleCustomerID()
		if err != nil {
			return result, err
		}

		accounts := []*domain.AdAccount{
			{ClientID: c.ID, Platform: domain.PlatformMeta, AccountID: metaID, AccountName: c.Name + " Meta", Status: domain.AdAccountStatusActive},
			{ClientID: c.ID, Platform: domain.PlatformGoogle, AccountID: googleID, AccountName: c.Name + " Google", Status: domain.AdAccountStatusActive},
		}

		for _, a := range accounts {
			if _, err := accountRepo.CreateAccount(ctx, a); err != nil {
				return result, fmt.Errorf("erro ao criar conta %s: %w", a.AccountID, err)
			}
			result.Accounts++
		}
	}

	return result, nil
}
