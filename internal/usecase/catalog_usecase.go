package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidDescription = errors.New("invalid product description")
	ErrInvalidPrice       = errors.New("invalid product price")
)

const productsCollection = "products"

// ICatalogUseCase exposes the catalog manager operations: list with a
// client-side substring filter, create, inline edit and delete. Every write
// stamps the owning operator and refreshes LastUsed.

type ICatalogUseCase interface {
	List(ctx context.Context, user entities.User, filter string) ([]entities.Product, error)
	Create(ctx context.Context, user entities.User, description string, price float64) (entities.Product, error)
	Update(ctx context.Context, user entities.User, id, description string, price float64) (entities.Product, error)
	Delete(ctx context.Context, user entities.User, id string) error
}

type CatalogUseCase struct {
	products interfaces.IProductRepository
	notifier interfaces.IChangeNotifier
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, notifier interfaces.IChangeNotifier) *CatalogUseCase {
	return &CatalogUseCase{products: products, notifier: notifier}
}

func (u *CatalogUseCase) List(ctx context.Context, user entities.User, filter string) ([]entities.Product, error) {
	all, err := u.products.ListByUserID(ctx, user.UID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(a, b int) bool {
		return all[a].Description < all[b].Description
	})
	if filter == "" {
		return all, nil
	}
	needle := strings.ToLower(filter)
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) Create(ctx context.Context, user entities.User, description string, price float64) (entities.Product, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Product{}, ErrInvalidDescription
	}
	if price < 0 {
		return entities.Product{}, ErrInvalidPrice
	}

	p := entities.Product{
		ID:          uuid.NewString(),
		Description: strings.ToUpper(description),
		Price:       price,
		LastUsed:    time.Now().UTC(),
		UserID:      user.UID,
	}
	saved, err := u.products.Save(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	u.publishChanged(ctx)
	return saved, nil
}

func (u *CatalogUseCase) Update(ctx context.Context, user entities.User, id, description string, price float64) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Product{}, ErrInvalidDescription
	}
	if price < 0 {
		return entities.Product{}, ErrInvalidPrice
	}

	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" || existing.UserID != user.UID {
		return entities.Product{}, ErrProductNotFound
	}

	existing.Description = strings.ToUpper(description)
	existing.Price = price
	existing.LastUsed = time.Now().UTC()
	existing.UserID = user.UID

	saved, err := u.products.Save(ctx, existing)
	if err != nil {
		return entities.Product{}, err
	}
	u.publishChanged(ctx)
	return saved, nil
}

func (u *CatalogUseCase) Delete(ctx context.Context, user entities.User, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" || existing.UserID != user.UID {
		return ErrProductNotFound
	}
	if err := u.products.DeleteByID(ctx, id); err != nil {
		return err
	}
	u.publishChanged(ctx)
	return nil
}

func (u *CatalogUseCase) publishChanged(ctx context.Context) {
	if err := u.notifier.Publish(ctx, productsCollection); err != nil {
		log.Printf("[catalog][usecase] change publish failed collection=%s err=%v", productsCollection, err)
	}
}
