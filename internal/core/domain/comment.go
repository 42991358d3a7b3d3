package domain

import "time"

// Comment is a free-text note left on a product page. Comments are
// append-only: there is no edit or delete path.
type Comment struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	ProductID uint      `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
