package interfaces

import (
	"context"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for operator accounts.
//
// Lookups return a zero-value Account (empty UID) when nothing matches;
// callers decide whether that is an error.
type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByUID(ctx context.Context, uid string) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
}
