package interfaces

import (
	"context"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Saves are whole-record replaces (last writer wins); there is no partial
// patch and no optimistic concurrency. List results are scoped to one
// operator through the user_id index.
type IQuoteRepository interface {
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	DeleteByID(ctx context.Context, id string) error
}
