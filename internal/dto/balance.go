package dto

import "time"

type BalanceResponseDTO struct {
	Coins      int64    `json:"coins" example:"110"`
	OwnedBooks []string `json:"ownedBooks"`
}

// TopUpRequestDTO confirms a pending top-up. UserID is optional and must
// match the caller when present.
type TopUpRequestDTO struct {
	UserID           string `json:"userId,omitempty"`
	CoinsToCredit    int64  `json:"coinsToCredit" example:"50"`
	IdempotencyToken string `json:"idempotencyToken" example:"4d0b7c9e-1f7a-4a86-9b43-0c8d2f1e5a77"`
}

type TopUpResponseDTO struct {
	Balance   int64 `json:"balance" example:"110"`
	Duplicate bool  `json:"duplicate" example:"false"`
}

type TopUpHistoryResponseDTO struct {
	Token     string    `json:"token"`
	Coins     int64     `json:"coins" example:"50"`
	AppliedAt time.Time `json:"appliedAt" example:"2024-05-01T10:00:00Z"`
}
