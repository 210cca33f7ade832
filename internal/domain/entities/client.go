package entities

import "time"

// Client is a customer record. Budgets reference it through a soft link
// (ClientID plus a denormalized ClientName); deleting a client neither blocks
// nor cascades.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
