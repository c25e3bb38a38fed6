package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

// QuoteList is the dashboard view: the filtered records plus a display
// rollup recomputed from the stored denormalized totals.
type QuoteList struct {
	Quotes []entities.Quote
	Count  int
	Sum    float64
}

// IDashboardUseCase serves the quote list view: operator-scoped listing
// sorted newest first, substring filtering across client name and author,
// open-for-edit lookup and delete.

type IDashboardUseCase interface {
	List(ctx context.Context, user entities.User, filter string) (QuoteList, error)
	Get(ctx context.Context, user entities.User, id string) (entities.Quote, error)
	Delete(ctx context.Context, user entities.User, id string) error
}

type DashboardUseCase struct {
	quotes   interfaces.IQuoteRepository
	notifier interfaces.IChangeNotifier
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(quotes interfaces.IQuoteRepository, notifier interfaces.IChangeNotifier) *DashboardUseCase {
	return &DashboardUseCase{quotes: quotes, notifier: notifier}
}

func (u *DashboardUseCase) List(ctx context.Context, user entities.User, filter string) (QuoteList, error) {
	all, err := u.quotes.ListByUserID(ctx, user.UID)
	if err != nil {
		return QuoteList{}, err
	}
	sort.SliceStable(all, func(a, b int) bool {
		return all[a].CreatedAt.After(all[b].CreatedAt)
	})

	filtered := all
	if filter != "" {
		needle := strings.ToLower(filter)
		filtered = make([]entities.Quote, 0, len(all))
		for _, q := range all {
			if strings.Contains(strings.ToLower(q.ClientName), needle) ||
				strings.Contains(strings.ToLower(q.Author), needle) {
				filtered = append(filtered, q)
			}
		}
	}

	// Sum uses the stored totals; the dashboard never recomputes from items.
	sum := 0.0
	for _, q := range filtered {
		sum += q.Total
	}
	return QuoteList{Quotes: filtered, Count: len(filtered), Sum: sum}, nil
}

func (u *DashboardUseCase) Get(ctx context.Context, user entities.User, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.UserID != user.UID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *DashboardUseCase) Delete(ctx context.Context, user entities.User, id string) error {
	if _, err := u.Get(ctx, user, id); err != nil {
		return err
	}
	if err := u.quotes.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := u.notifier.Publish(ctx, quotesCollection); err != nil {
		log.Printf("[dashboard][usecase] change publish failed collection=%s err=%v", quotesCollection, err)
	}
	return nil
}
