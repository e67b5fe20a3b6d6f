package entity

// Product is a catalog item. Pricing and stock resolve through variants
// when present; otherwise the product-level fields apply.
type Product struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Benefits     string `json:"benefits"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	IsActive     bool   `json:"is_active"`
	IsFeatured   bool   `json:"is_featured"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	Weight     float64     `json:"weight"`
	Dimensions *Dimensions `json:"dimensions"`

	// Up to three named option axes; variants carry the values.
	Option1Name string `json:"option1_name"`
	Option2Name string `json:"option2_name"`
	Option3Name string `json:"option3_name"`

	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`

	// Server-derived aggregates; never recomputed client-side.
	AverageRating float64 `json:"average_rating"`
	TotalStock    float64 `json:"total_stock"`
	DisplayPrice  float64 `json:"display_price"`

	BasePrice float64 `json:"base_price"`
	SalePrice float64 `json:"sale_price"`
	Stock     float64 `json:"stock"`

	Variants []ProductVariant `json:"variants"`
	Images   []ProductImage   `json:"images"`
	Reviews  []Review         `json:"reviews"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// Dimensions are the physical measurements used for shipping quotes.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// ProductVariant is an independently priced and stocked option
// combination of a product.
type ProductVariant struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	SalePrice float64 `json:"sale_price"`
	Stock     int     `json:"stock"`

	// Effective price: sale price when set, base price otherwise.
	// Resolved by the server.
	Price float64 `json:"price"`

	Option1Value string `json:"option1_value"`
	Option2Value string `json:"option2_value"`
	Option3Value string `json:"option3_value"`

	Images []ProductImage `json:"images"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// ProductImage is a hosted image attached to a product or one of its
// variants.
type ProductImage struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	VariantID int    `json:"variant_id"`
	URL       string `json:"url"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
