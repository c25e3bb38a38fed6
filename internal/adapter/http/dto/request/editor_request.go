package request

// OpenEditorRequest starts a draft session. An empty quote id opens a blank
// draft in create mode.
type OpenEditorRequest struct {
	QuoteID string `json:"quote_id"`
}

// HeaderRequest patches the draft header. Absent fields are left untouched.
type HeaderRequest struct {
	ClientName  *string `json:"client_name"`
	ClientPhone *string `json:"client_phone"`
	Author      *string `json:"author"`
	Status      *string `json:"status"`
}

// AddItemRequest appends a typed line. A blank description is accepted and
// ignored, matching the entry form.
type AddItemRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// AddCatalogItemRequest appends a line pre-filled from the catalog.
type AddCatalogItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// ItemPatchRequest patches one line item. Absent fields are left untouched.
type ItemPatchRequest struct {
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	Comment     *string  `json:"comment"`
	IsVerified  *bool    `json:"is_verified"`
}

// MarkDeleteRequest names the item entering the delete-confirmation gate.
type MarkDeleteRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// MoveItemRequest reorders one line. Pointers keep position 0 bindable.
type MoveItemRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

// FilterRequest sets the in-list match filter; empty clears it.
type FilterRequest struct {
	Filter string `json:"filter"`
}

// SaveRequest persists the draft. Silent keeps the session open so a
// document can be generated right after.
type SaveRequest struct {
	Silent bool `json:"silent"`
}
