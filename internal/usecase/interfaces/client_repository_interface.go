package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByClientCode(ctx context.Context, clientCode string) (entities.Client, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error)
	SetAccessCode(ctx context.Context, id string, accessCode string) (entities.Client, error)
}
