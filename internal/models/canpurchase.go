package models

import "time"

// CanPurchase is a bulk can-food purchase. Notes stays a pointer so a
// missing value is stored and rendered as null.
type CanPurchase struct {
	Id           int64     `json:"id" db:"id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	Notes        *string   `json:"notes" db:"notes"`
}

type NewCanPurchase struct {
	Quantity     int        `json:"quantity"`
	Notes        *string    `json:"notes"`
	PurchaseDate *time.Time `json:"purchase_date"`
}
