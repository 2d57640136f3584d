package models

import "time"

// Item is a catalog entry.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	PriceCents   int    `json:"price_cents"`
	MinOrderQty  int    `json:"min_order_qty"`
	AvailableQty int    `json:"available_qty"`
}

type OrderItem struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	PriceCents int    `json:"price_cents"`
}

type Order struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Items         []OrderItem `json:"items"`
	Address       string      `json:"address"`
	Phone         string      `json:"phone"`
	TotalCents    int         `json:"total_cents"`
	Paid          bool        `json:"paid"`
	TransactionID string      `json:"transaction_id"`
	Status        bool        `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Payment struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	Email         string    `json:"email"`
	AmountCents   int       `json:"amount_cents"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type Review struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	Email     string `json:"email"`
	Education string `json:"education"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	ImageURL  string `json:"image_url"`
}
