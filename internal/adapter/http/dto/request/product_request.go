package request

// ProductRequest creates or replaces one catalog entry. Price has no
// "required" binding so a free item (0.00) stays expressible.
type ProductRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
}
