package entity

// Review is a customer product review with moderation flags.
type Review struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Rating    int    `json:"rating"` // 1..5 stars.
	Title     string `json:"title"`
	Content   string `json:"content"`

	// Moderation: verified marks a confirmed purchase, approved makes
	// the review publicly visible. Both are set server-side.
	IsVerified bool `json:"is_verified"`
	IsApproved bool `json:"is_approved"`

	User *User `json:"user"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
