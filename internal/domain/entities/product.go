package entities

import "time"

// Product is a reusable catalog entry used to pre-fill quote line items.
// Descriptions are canonically upper-cased. LastUsed is refreshed on every
// write; it is informational only and plays no part in ranking or eviction.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Product struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	LastUsed    time.Time `json:"last_used"`
	UserID      string    `json:"user_id"`
}
