package dto

import "time"

// PurchaseRequestDTO accepts itemId as an alias of bookId.
type PurchaseRequestDTO struct {
	UserID string `json:"userId,omitempty"`
	BookID string `json:"bookId"`
	ItemID string `json:"itemId,omitempty"`
	Price  int64  `json:"price" example:"40"`
}

type PurchaseResponseDTO struct {
	BookID  string `json:"bookId"`
	Balance int64  `json:"balance" example:"60"`
}

type PurchaseHistoryResponseDTO struct {
	BookID      string    `json:"bookId"`
	Price       int64     `json:"price" example:"40"`
	PurchasedAt time.Time `json:"purchasedAt" example:"2024-05-01T10:00:00Z"`
}
