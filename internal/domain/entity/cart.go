package entity

// Cart is the server-owned shopping cart. The subtotal and per-item
// pricing are computed server-side; every cart mutation returns the
// whole recomputed cart and the client takes it verbatim.
type Cart struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	SessionID string     `json:"session_id"` // Guest cart correlation key.
	Subtotal  float64    `json:"subtotal"`
	Items     []CartItem `json:"items"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// CartItem is one product (optionally a specific variant) in a cart.
type CartItem struct {
	ID        int     `json:"id"`
	CartID    int     `json:"cart_id"`
	ProductID int     `json:"product_id"`
	VariantID int     `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
	InStock   bool    `json:"in_stock"`

	Product *Product        `json:"product"`
	Variant *ProductVariant `json:"variant"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
