package domain

import "time"

type User struct {
	ID           ID
	Email        string
	Name         string
	PasswordHash string
	Coins        int64
	CreatedAt    time.Time
}

// HasPassword is false for users created through federated login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

type Book struct {
	ID          ID
	Name        string
	Author      string
	Description string
	Subject     string
	Year        int
	CoverPage   string
	Content     string
	Price       int64
}

// Purchase is one entry of a user's owned-book set.
type Purchase struct {
	UserID      ID
	BookID      ID
	Price       int64
	PurchasedAt time.Time
}

// TopUp is an applied entry of the idempotency-token ledger.
type TopUp struct {
	Token     string
	UserID    ID
	Coins     int64
	AppliedAt time.Time
}

type Balance struct {
	Coins      int64
	OwnedBooks []ID
}

type PurchaseResult struct {
	BookID  ID
	Balance int64
}

// TopUpResult carries the committed balance. Duplicate is set when the
// token had already been applied and nothing was credited.
type TopUpResult struct {
	Balance   int64
	Duplicate bool
}

type PaymentItem struct {
	Name     string
	Price    int64
	Quantity int64
}

// PendingTopUp is handed to the client after a payment is initiated; its
// Reference is the idempotency token for the later top-up.
type PendingTopUp struct {
	UserID           ID
	Reference        string
	Coins            int64
	Amount           int64
	AuthorizationURL string
}
