package entity

// Category is a node in the catalog's category tree.
type Category struct {
	ID               int    `json:"id"`
	ParentCategoryID int    `json:"parent_category_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Slug             string `json:"slug"`

	Image *CategoryImage `json:"image"`

	// Direct products plus products of immediate subcategories.
	ProductCount int `json:"product_count"`

	// Populated only when the caller asks for the subtree.
	Subcategories []Category `json:"subcategories"`
}

// CategoryImage is the hosted image shown on category pages.
type CategoryImage struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	URL        string `json:"url"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
