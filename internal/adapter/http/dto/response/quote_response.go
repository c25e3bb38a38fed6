package response

import (
	"time"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase"
)

type QuoteItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Comment     string  `json:"comment,omitempty"`
	IsVerified  bool    `json:"is_verified"`
	LineTotal   float64 `json:"line_total"`
}

type QuoteResponse struct {
	ID          string              `json:"id"`
	ClientName  string              `json:"client_name"`
	ClientPhone string              `json:"client_phone,omitempty"`
	Author      string              `json:"author"`
	Status      string              `json:"status"`
	Items       []QuoteItemResponse `json:"items"`
	Total       float64             `json:"total"`
	Health      int                 `json:"health"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// QuoteListResponse is the dashboard payload: records plus the rollup.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
	Sum    float64         `json:"sum"`
}

func fromQuoteItems(items []entities.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, len(items))
	for i, it := range items {
		out[i] = QuoteItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Comment:     it.Comment,
			IsVerified:  it.IsVerified,
			LineTotal:   it.LineTotal(),
		}
	}
	return out
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		ClientName:  q.ClientName,
		ClientPhone: q.ClientPhone,
		Author:      q.Author,
		Status:      string(q.Status),
		Items:       fromQuoteItems(q.Items),
		Total:       q.Total,
		Health:      entities.ItemsHealth(q.Items),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func FromQuoteList(l usecase.QuoteList) QuoteListResponse {
	quotes := make([]QuoteResponse, len(l.Quotes))
	for i, q := range l.Quotes {
		quotes[i] = FromQuote(q)
	}
	return QuoteListResponse{Quotes: quotes, Count: l.Count, Sum: l.Sum}
}
