package interfaces

import (
	"context"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for catalog products.
type IProductRepository interface {
	Save(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
