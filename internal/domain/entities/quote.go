package entities

import (
	"math"
	"time"
)

// QuoteStatus is a flat label on the quote, not an enforced state machine.
// Any value may be set at any time; readers only use it for display.
type QuoteStatus string

const (
	QuoteStatusPendente   QuoteStatus = "Pendente"
	QuoteStatusFinalizado QuoteStatus = "Finalizado"
	QuoteStatusEnviado    QuoteStatus = "Enviado"
)

// QuoteItem is one line within a quote. Items are never persisted on their
// own; the id is draft-local (random, collision-negligible) and only needs to
// stay stable for the lifetime of the draft.
type QuoteItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Comment     string  `json:"comment,omitempty"`
	IsVerified  bool    `json:"is_verified"`
}

// LineTotal is always recomputed on read, never stored.
func (i QuoteItem) LineTotal() float64 {
	return i.Price * i.Quantity
}

// Quote is the aggregate root: a priced, itemized proposal for a named
// client, owned by one operator.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Total is a denormalized snapshot taken at save time; list views trust the
// stored value and never recompute it from items.
type Quote struct {
	ID          string      `json:"id"`
	ClientName  string      `json:"client_name"`
	ClientPhone string      `json:"client_phone,omitempty"`
	Author      string      `json:"author"`
	Status      QuoteStatus `json:"status"`
	Items       []QuoteItem `json:"items"`
	Total       float64     `json:"total"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	UserID      string      `json:"user_id"`
}

// ItemsTotal sums price*quantity over the given items.
func ItemsTotal(items []QuoteItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// ItemsHealth is the percentage of items marked verified, rounded to the
// nearest integer. An empty list scores 0.
func ItemsHealth(items []QuoteItem) int {
	if len(items) == 0 {
		return 0
	}
	verified := 0
	for _, it := range items {
		if it.IsVerified {
			verified++
		}
	}
	return int(math.Round(100 * float64(verified) / float64(len(items))))
}
