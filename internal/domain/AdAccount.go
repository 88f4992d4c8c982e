package domain

import (
	"time"
)

type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

// IsValid indica se a plataforma é uma das redes de anúncio suportadas
func (p Platform) IsValid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

type AdAccountStatus string

const (
	AdAccountStatusActive AdAccountStatus = "active"
)

type AdAccount struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	Platform    Platform        `json:"platform"`
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Status      AdAccountStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AdAccountFilters contém os filtros opcionais da listagem de contas.
// Campos nil não restringem a consulta.
type AdAccountFilters struct {
	ClientID *int64
	Platform *Platform
}

type CreateAdAccountRequest struct {
	ClientID    int64    `json:"client_id"`
	Platform    Platform `json:"platform"`
	AccountID   string   `json:"account_id"`
	AccountName string   `json:"account_name"`
}

// AccountsSummaryItem agrupa a quantidade de contas por plataforma e status
type AccountsSummaryItem struct {
	Platform Platform        `json:"platform"`
	Status   AdAccountStatus `json:"status"`
	Quantity int             `json:"quantity"`
}
