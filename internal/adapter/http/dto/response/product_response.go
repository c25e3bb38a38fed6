package response

import (
	"time"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	LastUsed    time.Time `json:"last_used"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Description: p.Description,
		Price:       p.Price,
		LastUsed:    p.LastUsed,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = FromProduct(p)
	}
	return out
}
