package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

// ISuggestionUseCase produces the ranked shortlist shown while the operator
// types a new line item.

type ISuggestionUseCase interface {
	Suggest(ctx context.Context, user entities.User, query string) ([]entities.Product, error)
}

type SuggestionUseCase struct {
	products interfaces.IProductRepository
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

func NewSuggestionUseCase(products interfaces.IProductRepository) *SuggestionUseCase {
	return &SuggestionUseCase{products: products}
}

// Suggest matches the query against the operator's catalog snapshot.
// Queries shorter than two characters yield nothing.
func (u *SuggestionUseCase) Suggest(ctx context.Context, user entities.User, query string) ([]entities.Product, error) {
	if utf8.RuneCountInString(query) < minQueryLen {
		return nil, nil
	}
	catalog, err := u.products.ListByUserID(ctx, user.UID)
	if err != nil {
		return nil, err
	}
	descriptions := make([]string, len(catalog))
	for i, p := range catalog {
		descriptions[i] = p.Description
	}
	ranked := rankCatalog(query, descriptions)
	out := make([]entities.Product, len(ranked))
	for i, idx := range ranked {
		out[i] = catalog[idx]
	}
	return out, nil
}
